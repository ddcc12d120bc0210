package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/hailam/chesscore/internal/analysis"
	"github.com/hailam/chesscore/internal/board"
)

func TestStorage(t *testing.T) {
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	defer s.Close()

	report, err := analysis.Analyze("4k3/8/8/8/4r3/8/4B3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	t.Run("Miss", func(t *testing.T) {
		r, ok, err := s.Get(report.Hash)
		if err != nil || ok || r != nil {
			t.Errorf("Get on empty cache = %v, %v, %v", r, ok, err)
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		if err := s.Put(report); err != nil {
			t.Fatalf("Put: %v", err)
		}
		got, ok, err := s.Get(report.Hash)
		if err != nil || !ok {
			t.Fatalf("Get = %v, %v", ok, err)
		}
		if got.FEN != report.FEN || got.MoveCount != report.MoveCount || got.White.Pinners[0] != "e4" {
			t.Errorf("stored report differs: %+v", got)
		}

		n, err := s.Count()
		if err != nil || n != 1 {
			t.Errorf("Count = %d, %v; want 1", n, err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := s.Delete(report.Hash); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, ok, _ := s.Get(report.Hash); ok {
			t.Error("report still present after Delete")
		}
	})
}

func TestStorageBacksRunner(t *testing.T) {
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	defer s.Close()

	runner := &analysis.Runner{Workers: 2, Cache: s}
	fens := []string{board.StartFEN, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"}

	if _, err := runner.Run(context.Background(), fens); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	results, err := runner.Run(context.Background(), fens)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	for _, res := range results {
		if !res.Cached {
			t.Errorf("result %d not served from cache", res.Index)
		}
	}
}

func TestStoragePersists(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	report, err := analysis.Analyze(board.StartFEN)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if err := s.Put(report); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	if _, ok, err := s.Get(report.Hash); !ok || err != nil {
		t.Errorf("report lost across reopen: %v, %v", ok, err)
	}
}

func TestDefaultDir(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("XDG_DATA_HOME does not apply on " + runtime.GOOS)
	}
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)

	dir, err := DefaultDir()
	if err != nil {
		t.Fatalf("DefaultDir: %v", err)
	}
	if want := filepath.Join(base, appName, "reports"); dir != want {
		t.Errorf("DefaultDir = %s, want %s", dir, want)
	}
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		t.Errorf("cache directory not created: %v", err)
	}
}

func TestDataHome(t *testing.T) {
	env := map[string]string{}
	getenv := func(k string) string { return env[k] }
	home := func() (string, error) { return "/home/u", nil }
	noHome := func() (string, error) { return "", errors.New("no home") }

	tests := []struct {
		name string
		goos string
		env  map[string]string
		want string
	}{
		{"linux default", "linux", nil, filepath.Join("/home/u", ".local", "share")},
		{"linux xdg", "linux", map[string]string{"XDG_DATA_HOME": "/data"}, "/data"},
		{"darwin ignores xdg", "darwin", map[string]string{"XDG_DATA_HOME": "/data"}, filepath.Join("/home/u", "Library", "Application Support")},
		{"windows appdata", "windows", map[string]string{"APPDATA": "/appdata"}, "/appdata"},
		{"windows fallback", "windows", nil, filepath.Join("/home/u", "AppData", "Roaming")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env = tc.env
			got, err := dataHome(tc.goos, getenv, home)
			if err != nil || got != tc.want {
				t.Errorf("dataHome = %q, %v; want %q", got, err, tc.want)
			}
		})
	}

	env = nil
	if _, err := dataHome("linux", getenv, noHome); err == nil {
		t.Error("missing home directory not reported")
	}
	env = map[string]string{"XDG_DATA_HOME": "/data"}
	if got, err := dataHome("linux", getenv, noHome); err != nil || got != "/data" {
		t.Errorf("XDG_DATA_HOME should not need a home directory: %q, %v", got, err)
	}
}
