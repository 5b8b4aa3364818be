package stepzen

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// relocation records files moved out of a workspace so they can be put
// back on every exit path. The deploy tool resolves the schema and
// index files relative to its own working directory rather than the
// workspace argument, so they are parked there for the duration of the
// deploy and restored afterward.
type relocation struct {
	moves []moveRecord
}

type moveRecord struct {
	src string // original location inside the workspace
	dst string // temporary location during the deploy
}

// relocate finds the first occurrence of each named file under root
// and moves it into dest. Missing files are skipped: an immaculate
// workspace layout is the deploy tool's problem to report, not ours.
func relocate(root, dest string, names ...string) (*relocation, error) {
	rel := &relocation{}
	for _, name := range names {
		src, err := findFile(root, name)
		if err != nil {
			rel.restore()
			return nil, err
		}
		if src == "" {
			continue
		}
		dst := filepath.Join(dest, name)
		if err := moveFile(src, dst); err != nil {
			rel.restore()
			return nil, fmt.Errorf("failed to relocate %s: %w", name, err)
		}
		rel.moves = append(rel.moves, moveRecord{src: src, dst: dst})
	}
	return rel, nil
}

// restore moves every relocated file back, attempting all moves even
// when one fails.
func (r *relocation) restore() error {
	var errs []error
	for i := len(r.moves) - 1; i >= 0; i-- {
		m := r.moves[i]
		if err := moveFile(m.dst, m.src); err != nil {
			errs = append(errs, fmt.Errorf("failed to restore %s: %w", filepath.Base(m.src), err))
		}
	}
	r.moves = nil
	return errors.Join(errs...)
}

// findFile walks root and returns the first path whose base matches
// name, or empty when absent.
func findFile(root, name string) (string, error) {
	var found string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == name {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to scan workspace: %w", err)
	}
	return found, nil
}

// moveFile renames src to dst, copying across filesystems when rename
// is not possible.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(src)
}
