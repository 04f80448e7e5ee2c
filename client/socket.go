package client

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
)

// ErrSocketNotFound reports that no window manager socket path could be
// found or guessed.
var ErrSocketNotFound = errors.New("wm socket not found")

// socketGlob matches per-user sway sockets for sessions started outside
// the current environment, e.g. commands run from systemd units.
const socketGlob = "/run/user/*/sway-ipc.*.sock"

// SocketPath guesses the window manager socket path: $SWAYSOCK first,
// $I3SOCK second, then the most recently created socket file matching
// the per-user glob.
func SocketPath() (string, error) {
	if path := os.Getenv("SWAYSOCK"); path != "" {
		return path, nil
	}
	if path := os.Getenv("I3SOCK"); path != "" {
		return path, nil
	}
	return newestSocket(socketGlob)
}

func newestSocket(pattern string) (string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil || len(matches) == 0 {
		return "", ErrSocketNotFound
	}

	type candidate struct {
		path string
		mod  int64
	}
	candidates := make([]candidate, 0, len(matches))
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		candidates = append(candidates, candidate{path: path, mod: info.ModTime().UnixNano()})
	}
	if len(candidates) == 0 {
		return "", ErrSocketNotFound
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].mod > candidates[j].mod
	})
	return candidates[0].path, nil
}
