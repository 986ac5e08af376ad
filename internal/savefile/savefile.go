// Package savefile stores Klondike boards on disk.
//
// Saves are written to a temporary file in the destination directory and
// renamed into place, so a crash mid-write never leaves a truncated save
// where a good one used to be.
package savefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lox/soliterm/klondike"
)

// AutosavePath returns the autosave file inside dir, qualified by user
// when one is known: <dir>/tmp.soliterm[.<user>].save
func AutosavePath(dir, user string) string {
	name := "tmp.soliterm"
	if user != "" {
		name += "." + user
	}
	return filepath.Join(dir, name+".save")
}

// Save writes b to path
func Save(path string, b *klondike.Board) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to encode board: %w", err)
	}
	if err := writeAtomic(path, data, 0o600); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Load reads a board from path. With strict set the board must also hold
// each of the 52 cards exactly once.
func Load(path string, strict bool) (*klondike.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	parse := klondike.ParseBoard
	if strict {
		parse = klondike.ParseBoardStrict
	}
	b, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return b, nil
}

// Exists reports whether a regular file is present at path
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Remove deletes path. A missing file is not an error.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func writeAtomic(path string, data []byte, perm os.FileMode) error {
	// The temp file must live next to the target: rename is only atomic
	// within one filesystem.
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	committed = true
	return nil
}
