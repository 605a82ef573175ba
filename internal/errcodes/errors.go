package errcodes

import "errors"

var (
	ErrFileNotFound      = errors.New("file not found")
	ErrDirectoryNotFound = errors.New("directory does not exist")
	ErrNotADirectory     = errors.New("not a directory")
	ErrParentNotFound    = errors.New("parent directory does not exist")
	ErrIsDirectory       = errors.New("target is a directory")
	ErrInvalidStartDir   = errors.New("start directory must be an existing directory")
	ErrHomeDirNotFound   = errors.New("unable to determine the home directory")
)
