// chesscore prints the attack, check and pin state of chess positions.
//
// Usage:
//
//	chesscore [flags] [FEN...]
//
// With no FEN arguments and no -fen-file the starting position is shown.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/pprof"
	"strings"

	"github.com/hailam/chesscore/internal/analysis"
	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/render"
	"github.com/hailam/chesscore/internal/storage"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	fenFile    = flag.String("fen-file", "", "read FENs from `file`, one per line (- for stdin)")
	workers    = flag.Int("workers", 0, "analysis workers (0 = GOMAXPROCS)")
	cacheDir   = flag.String("cache", "", "report cache `dir`; \"default\" uses the platform data dir (env CHESSCORE_CACHE)")
	svgOut     = flag.String("svg", "", "write an SVG diagram to `file`")
	pngOut     = flag.String("png", "", "write a PNG diagram to `file`")
	size       = flag.Int("size", render.DefaultSize, "diagram size in pixels")
	jsonOut    = flag.Bool("json", false, "print reports as JSON")
	moves      = flag.Bool("moves", false, "list legal moves")
	noColor    = flag.Bool("no-color", false, "disable ANSI colours")
	flip       = flag.Bool("flip", false, "draw boards from black's side")
	attacks    = flag.Bool("attacks", false, "shade squares attacked by the side not to move")
	moveCheck  = flag.String("move", "", "report whether `move` (e.g. e2e4, e7e8q) is legal in each position")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("chesscore: ")

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	if err := run(); err != nil {
		log.Print(err)
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}

func run() error {
	fens, err := collectFENs(flag.Args(), *fenFile)
	if err != nil {
		return err
	}

	runner := &analysis.Runner{
		Workers: *workers,
		Moves:   *moves,
		Logger:  log.Default(),
	}

	cache, err := openCache()
	if err != nil {
		return err
	}
	if cache != nil {
		defer cache.Close()
		runner.Cache = cache
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := runner.Run(ctx, fens)
	if err != nil {
		return err
	}

	opts := render.Options{Size: *size, Flip: *flip, Attacks: *attacks, NoColor: *noColor}
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			log.Printf("position %d: %v", res.Index+1, res.Err)
			failed++
			continue
		}
		if err := output(res, len(results) > 1, opts); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d positions failed", failed, len(results))
	}
	return nil
}

// collectFENs gathers positions from the arguments and the optional file.
func collectFENs(args []string, file string) ([]string, error) {
	fens := append([]string(nil), args...)

	if file != "" {
		var r io.Reader = os.Stdin
		if file != "-" {
			f, err := os.Open(file)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			r = f
		}

		sc := bufio.NewScanner(r)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			fens = append(fens, line)
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
	}

	if len(fens) == 0 {
		fens = append(fens, board.StartFEN)
	}
	return fens, nil
}

// openCache resolves -cache, falling back to CHESSCORE_CACHE. No setting
// means no cache.
func openCache() (*storage.Storage, error) {
	dir := *cacheDir
	if dir == "" {
		dir = os.Getenv("CHESSCORE_CACHE")
	}
	switch dir {
	case "":
		return nil, nil
	case "default":
		return storage.OpenDefault()
	default:
		return storage.Open(dir)
	}
}

func output(res analysis.Result, many bool, opts render.Options) error {
	report := res.Report

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	}

	b, err := board.ParseFEN(report.FEN)
	if err != nil {
		return err
	}

	if !*jsonOut {
		fmt.Println(report.FEN)
		if err := render.Terminal(os.Stdout, b, opts); err != nil {
			return err
		}
		status := ""
		switch {
		case report.Checkmate:
			status = " (checkmate)"
		case report.Stalemate:
			status = " (stalemate)"
		}
		fmt.Printf("%d legal moves%s, %s index\n", report.MoveCount, status, report.Index)
		if len(report.LegalMoves) > 0 {
			fmt.Println(strings.Join(report.LegalMoves, " "))
		}
		fmt.Println()
	}

	if *moveCheck != "" {
		fmt.Println(checkMove(b, *moveCheck))
	}

	if *svgOut != "" {
		if err := writeDiagram(numbered(*svgOut, res.Index, many), b, opts, render.SVG); err != nil {
			return err
		}
	}
	if *pngOut != "" {
		if err := writeDiagram(numbered(*pngOut, res.Index, many), b, opts, render.PNG); err != nil {
			return err
		}
	}
	return nil
}

// checkMove describes whether s is a legal move of b.
func checkMove(b *board.Board, s string) string {
	m, err := board.ParseMove(b, s)
	if err != nil {
		return err.Error()
	}
	switch {
	case m.IsCastling():
		return s + ": legal castling"
	case m.IsEnPassant():
		return s + ": legal en passant capture"
	case m.IsPromotion():
		return fmt.Sprintf("%s: legal promotion to %s", s, strings.ToLower(m.Promotion().String()))
	}
	return s + ": legal"
}

// numbered inserts a 1-based position number before the extension when
// several positions share one output name.
func numbered(path string, index int, many bool) string {
	if !many {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), index+1, ext)
}

func writeDiagram(path string, b *board.Board, opts render.Options, draw func(io.Writer, *board.Board, render.Options) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := draw(f, b, opts); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
