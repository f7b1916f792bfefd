// SPDX-License-Identifier: EPL-2.0

// Package fileutil writes output files so that a reader never observes a
// partially written one.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// WriteFunc fills a staged file. The file is positioned at offset zero and
// may be seeked.
type WriteFunc func(f *os.File) error

// WriteFile writes path through a temporary file in the same directory and
// renames it into place only when write succeeds. On failure no file is
// left at path.
func WriteFile(path string, write WriteFunc) error {
	var b Batch
	if err := b.Stage(path, write); err != nil {
		return err
	}
	return b.Commit()
}

// Batch stages several outputs and publishes them together: either every
// staged file appears at its destination or none does.
type Batch struct {
	staged []staged
}

type staged struct {
	tmp string
	dst string
}

// Stage writes a temporary sibling of path. Call Commit to publish it or
// Abort to discard it. A failed Stage discards everything staged so far.
func (b *Batch) Stage(path string, write WriteFunc) error {
	tmp, err := stageFile(path, write)
	if err != nil {
		b.Abort()
		return err
	}

	b.staged = append(b.staged, staged{tmp: tmp, dst: path})

	return nil
}

// Commit renames every staged file into place. If any rename fails the
// outputs already published by this call are removed again.
func (b *Batch) Commit() error {
	for i, s := range b.staged {
		if err := os.Rename(s.tmp, s.dst); err != nil {
			for _, done := range b.staged[:i] {
				_ = os.Remove(done.dst)
			}
			for _, pending := range b.staged[i:] {
				_ = os.Remove(pending.tmp)
			}
			b.staged = nil
			return fmt.Errorf("publish %s: %w", s.dst, err)
		}
	}

	b.staged = nil

	return nil
}

// Abort removes every staged temporary file.
func (b *Batch) Abort() {
	for _, s := range b.staged {
		_ = os.Remove(s.tmp)
	}
	b.staged = nil
}

// Len returns the number of staged files.
func (b *Batch) Len() int { return len(b.staged) }

func stageFile(path string, write WriteFunc) (string, error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return "", err
	}
	tmp := f.Name()

	werr := write(f)
	if werr == nil {
		werr = f.Chmod(0o644)
	}
	if werr == nil {
		werr = f.Sync()
	}
	cerr := f.Close()

	if err := errors.Join(werr, cerr); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}

	return tmp, nil
}
