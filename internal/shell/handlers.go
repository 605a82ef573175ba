package shell

import (
	"fmt"

	"fsexplorer/internal/errcodes"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

func (s *Shell) list(path string) {
	names, err := s.explorer.List(path)
	if err != nil {
		fmt.Fprintln(s.Err, err)
		return
	}

	for _, n := range names {
		fmt.Fprintln(s.Out, n)
	}
}

func (s *Shell) changeDir(path string) {
	abs, err := s.explorer.ChangeDir(path)
	if err != nil {
		fmt.Fprintf(s.Out, "Directory does not exist: %s\n", path)
		return
	}

	if err := s.history.AddVisited(abs); err != nil {
		log.Warn().Err(err).Str("path", abs).Msg("cannot record visited directory")
	}
}

func (s *Shell) search(name string) {
	path, err := s.explorer.Search(name)
	switch {
	case err == nil:
		fmt.Fprintf(s.Out, "Found: %s\n", path)
	case errors.Is(err, errcodes.ErrFileNotFound):
		fmt.Fprintf(s.Out, "File not found: %s\n", name)
	default:
		log.Debug().Err(err).Msg("search failed")
		fmt.Fprintf(s.Out, "Search failed: %s\n", name)
	}
}

func (s *Shell) create(name string) {
	if _, err := s.explorer.Create(name); err != nil {
		log.Debug().Err(err).Str("name", name).Msg("create failed")
		fmt.Fprintf(s.Out, "Failed to create file: %s\n", name)
		return
	}

	fmt.Fprintf(s.Out, "File created: %s\n", name)
}

func (s *Shell) delete(name string) {
	err := s.explorer.Delete(name)
	switch {
	case err == nil:
		fmt.Fprintf(s.Out, "File deleted: %s\n", name)
	case errors.Is(err, errcodes.ErrFileNotFound):
		fmt.Fprintf(s.Out, "File not found: %s\n", name)
	default:
		log.Debug().Err(err).Str("name", name).Msg("delete failed")
		fmt.Fprintf(s.Out, "Failed to delete file: %s\n", name)
	}
}

func (s *Shell) rename(oldName, newName string) {
	s.reportRelocation("renamed", "rename", oldName, newName, s.explorer.Rename(oldName, newName))
}

func (s *Shell) move(src, dst string) {
	s.reportRelocation("moved", "move", src, dst, s.explorer.Move(src, dst))
}

func (s *Shell) reportRelocation(done, verb, from, to string, err error) {
	switch {
	case err == nil:
		fmt.Fprintf(s.Out, "File %s from %s to %s\n", done, from, to)
	case errors.Is(err, errcodes.ErrFileNotFound):
		fmt.Fprintf(s.Out, "File not found: %s\n", from)
	default:
		log.Debug().Err(err).Str("from", from).Str("to", to).Msgf("%s failed", verb)
		fmt.Fprintf(s.Out, "Failed to %s file: %s\n", verb, from)
	}
}

func (s *Shell) permissions(name string) {
	perms, err := s.explorer.Permissions(name)
	if err != nil {
		fmt.Fprintf(s.Out, "File not found: %s\n", name)
		return
	}

	fmt.Fprintf(s.Out, "Permissions for %s:\n%s\n", name, perms)
}
