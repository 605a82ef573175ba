// Package explorer implements the filesystem operations behind the shell.
//
// An Explorer owns the current path. Every relative argument is resolved
// against it before the filesystem is touched. Methods never write user
// output; they report outcomes through return values and errors from
// errcodes, so the shell decides how each outcome reads.
package explorer

import (
	"path/filepath"

	"fsexplorer/internal/errcodes"
	"fsexplorer/internal/pkg/fs"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Explorer struct {
	fs  fs.Filesystem
	cwd string
}

// New returns an Explorer rooted at start, which must be an existing
// directory. An empty start means the filesystem's working directory.
func New(filesystem fs.Filesystem, start string) (*Explorer, error) {
	if start == "" {
		wd, err := filesystem.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "cannot determine working directory")
		}
		start = wd
	}

	abs, err := filepath.Abs(start)
	if err != nil {
		return nil, errors.Wrap(err, "cannot make start directory absolute")
	}

	if !isDir(filesystem, abs) {
		return nil, errors.Wrap(errcodes.ErrInvalidStartDir, start)
	}

	return &Explorer{fs: filesystem, cwd: abs}, nil
}

// Cwd returns the current path.
func (e *Explorer) Cwd() string {
	return e.cwd
}

// Resolve joins p onto the current path and cleans the result. An absolute
// p replaces the current path instead of being appended to it. The target
// does not have to exist.
func (e *Explorer) Resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}

	return filepath.Join(e.cwd, p)
}

// Recover moves the current path to its nearest existing ancestor when the
// directory has disappeared. It reports whether the path changed.
func (e *Explorer) Recover() bool {
	dir := e.cwd
	for !isDir(e.fs, dir) {
		parent := filepath.Dir(dir)
		if parent == dir {
			return false
		}
		dir = parent
	}

	if dir == e.cwd {
		return false
	}

	log.Warn().
		Str("from", e.cwd).
		Str("to", dir).
		Msg("current directory no longer exists, moving to nearest ancestor")
	e.cwd = dir

	return true
}

func (e *Explorer) exists(path string) bool {
	_, err := e.fs.Stat(path)
	return err == nil
}

func isDir(filesystem fs.Filesystem, path string) bool {
	info, err := filesystem.Stat(path)
	return err == nil && info.IsDir()
}
