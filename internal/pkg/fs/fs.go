package fs

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

type Filesystem interface {
	Stat(string) (os.FileInfo, error)
	OpenFile(name string, flag int, perm os.FileMode) (afero.File, error)
	ReadDir(string) ([]os.FileInfo, error)
	Remove(string) error
	Rename(oldname, newname string) error
	Walk(root string, fn filepath.WalkFunc) error
	Getwd() (string, error)
}

// Afero adapts an afero.Fs to Filesystem. Directory listings come back sorted
// by name and walks never follow symbolic links.
type Afero struct {
	Fs    afero.Fs
	getwd func() (string, error)
}

func NewOS() *Afero {
	return &Afero{Fs: afero.NewOsFs(), getwd: os.Getwd}
}

// NewMemory returns an empty in-memory filesystem whose working directory is
// wd. The directory itself is created.
func NewMemory(wd string) *Afero {
	mfs := afero.NewMemMapFs()
	_ = mfs.MkdirAll(wd, 0755)

	return &Afero{
		Fs:    mfs,
		getwd: func() (string, error) { return wd, nil },
	}
}

func (a *Afero) Stat(name string) (os.FileInfo, error) { return a.Fs.Stat(name) }
func (a *Afero) Remove(name string) error              { return a.Fs.Remove(name) }
func (a *Afero) Rename(oldname, newname string) error  { return a.Fs.Rename(oldname, newname) }

func (a *Afero) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	return a.Fs.OpenFile(name, flag, perm)
}

func (a *Afero) ReadDir(name string) ([]os.FileInfo, error) {
	return afero.ReadDir(a.Fs, name)
}

func (a *Afero) Walk(root string, fn filepath.WalkFunc) error {
	return afero.Walk(a.Fs, root, fn)
}

func (a *Afero) Getwd() (string, error) {
	if a.getwd == nil {
		return os.Getwd()
	}

	return a.getwd()
}
