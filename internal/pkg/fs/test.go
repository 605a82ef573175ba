package fs

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

type MockFileInfo struct {
	NameValue  string
	IsDirValue bool
	ModeValue  os.FileMode
}

func (m MockFileInfo) IsDir() bool        { return m.IsDirValue }
func (m MockFileInfo) ModTime() time.Time { return time.Now() }
func (m MockFileInfo) Mode() os.FileMode  { return m.ModeValue }
func (m MockFileInfo) Name() string       { return m.NameValue }
func (m MockFileInfo) Size() int64        { return 1 }
func (m MockFileInfo) Sys() interface{}   { return nil }

// MockFS answers every call with Info and Err and counts the calls made.
type MockFS struct {
	Info    MockFileInfo
	Entries []os.FileInfo
	Err     error
	Wd      string
	Calls   int
}

func (fs *MockFS) Stat(name string) (os.FileInfo, error) {
	fs.Calls++
	return fs.Info, fs.Err
}

func (fs *MockFS) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	fs.Calls++
	return nil, fs.Err
}

func (fs *MockFS) ReadDir(name string) ([]os.FileInfo, error) {
	fs.Calls++
	return fs.Entries, fs.Err
}

func (fs *MockFS) Remove(name string) error {
	fs.Calls++
	return fs.Err
}

func (fs *MockFS) Rename(oldname, newname string) error {
	fs.Calls++
	return fs.Err
}

func (fs *MockFS) Walk(root string, fn filepath.WalkFunc) error {
	fs.Calls++
	return fs.Err
}

func (fs *MockFS) Getwd() (string, error) {
	fs.Calls++
	return fs.Wd, fs.Err
}
