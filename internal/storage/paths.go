// Package storage provides a persistent cache of position reports.
package storage

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "chesscore"

// DefaultDir returns the directory OpenDefault keeps reports in, creating it
// if needed: chesscore/reports under the user's data home.
func DefaultDir() (string, error) {
	base, err := dataHome(runtime.GOOS, os.Getenv, os.UserHomeDir)
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, appName, "reports")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// dataHome picks the per-user data root for goos:
//   - darwin: ~/Library/Application Support
//   - windows: %APPDATA%, else ~/AppData/Roaming
//   - others: $XDG_DATA_HOME, else ~/.local/share
func dataHome(goos string, getenv func(string) string, home func() (string, error)) (string, error) {
	env, fallback := "XDG_DATA_HOME", []string{".local", "share"}
	switch goos {
	case "darwin":
		env, fallback = "", []string{"Library", "Application Support"}
	case "windows":
		env, fallback = "APPDATA", []string{"AppData", "Roaming"}
	}

	if env != "" {
		if dir := getenv(env); dir != "" {
			return dir, nil
		}
	}
	h, err := home()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{h}, fallback...)...), nil
}
