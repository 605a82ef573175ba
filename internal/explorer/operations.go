package explorer

import (
	"os"
	"path/filepath"

	"fsexplorer/internal/errcodes"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var errFound = errors.New("found")

// List returns the base names of the immediate children of p.
// Errors come straight from the filesystem.
func (e *Explorer) List(p string) ([]string, error) {
	path := e.Resolve(p)
	log.Debug().Str("path", path).Msg("listing directory")

	infos, err := e.fs.ReadDir(path)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}

	return names, nil
}

// ChangeDir makes p the current path when it is an existing directory.
func (e *Explorer) ChangeDir(p string) (string, error) {
	path := e.Resolve(p)
	if !isDir(e.fs, path) {
		return "", errcodes.ErrDirectoryNotFound
	}

	log.Debug().Str("from", e.cwd).Str("to", path).Msg("changing directory")
	e.cwd = path

	return path, nil
}

// Search walks the tree below the current path and returns the first entry
// whose base name equals name. Entries are visited in lexical order,
// symbolic links are not followed and unreadable directories are skipped.
func (e *Explorer) Search(name string) (string, error) {
	root := e.cwd
	found := ""

	err := e.fs.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Debug().Err(err).Str("path", path).Msg("skipping unreadable entry")
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if path == root {
			return nil
		}

		if filepath.Base(path) == name {
			found = path
			return errFound
		}

		return nil
	})
	if err != nil && err != errFound && err != filepath.SkipDir {
		return "", errors.Wrapf(err, "search for %s failed", name)
	}

	if found == "" {
		return "", errcodes.ErrFileNotFound
	}

	return found, nil
}

// Create makes p an empty regular file, truncating it if it already exists.
// The parent directory must exist.
func (e *Explorer) Create(p string) (string, error) {
	path := e.Resolve(p)

	if !isDir(e.fs, filepath.Dir(path)) {
		return "", errcodes.ErrParentNotFound
	}

	if isDir(e.fs, path) {
		return "", errcodes.ErrIsDirectory
	}

	f, err := e.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return "", errors.Wrapf(err, "cannot create %s", path)
	}

	if err := f.Close(); err != nil {
		return "", errors.Wrapf(err, "cannot close %s", path)
	}

	log.Debug().Str("path", path).Msg("file created")

	return path, nil
}

// Delete removes a single file or empty directory.
func (e *Explorer) Delete(p string) error {
	path := e.Resolve(p)
	if !e.exists(path) {
		return errcodes.ErrFileNotFound
	}

	if err := e.fs.Remove(path); err != nil {
		return errors.Wrapf(err, "cannot delete %s", path)
	}

	log.Debug().Str("path", path).Msg("entry deleted")

	return nil
}

// Rename moves oldName to newName. An existing destination may be replaced,
// depending on the filesystem.
func (e *Explorer) Rename(oldName, newName string) error {
	return e.relocate("rename", oldName, newName)
}

// Move relocates src to dst. It is the same operation as Rename.
func (e *Explorer) Move(src, dst string) error {
	return e.relocate("move", src, dst)
}

func (e *Explorer) relocate(op, from, to string) error {
	fromPath := e.Resolve(from)
	toPath := e.Resolve(to)

	if !e.exists(fromPath) {
		return errcodes.ErrFileNotFound
	}

	if err := e.fs.Rename(fromPath, toPath); err != nil {
		return errors.Wrapf(err, "cannot %s %s to %s", op, fromPath, toPath)
	}

	log.Debug().
		Str("op", op).
		Str("from", fromPath).
		Str("to", toPath).
		Msg("entry relocated")

	return nil
}

// Permissions returns the rwxrwxrwx rendering of the entry at p.
func (e *Explorer) Permissions(p string) (string, error) {
	info, err := e.fs.Stat(e.Resolve(p))
	if err != nil {
		return "", errcodes.ErrFileNotFound
	}

	return FormatPermissions(info.Mode()), nil
}
