package persistance

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/exp/slices"
)

const DefaultSize = 20

type VisitedDir struct {
	Path        string    `json:"path"`
	LastVisited time.Time `json:"lastVisited"`
}

type state struct {
	Visited []*VisitedDir `json:"visited,omitempty"`
}

type HistoryRepo interface {
	AddVisited(path string) error
	GetVisited() ([]*VisitedDir, error)
	Last() (string, error)
}

// FileHistoryRepo keeps visited directories, most recent first, in a JSON
// state file.
type FileHistoryRepo struct {
	path string
	size int
	s    *state
	now  func() time.Time
}

func NewFileHistoryRepo(path string, size int) *FileHistoryRepo {
	if size <= 0 {
		size = DefaultSize
	}

	return &FileHistoryRepo{
		path: path,
		size: size,
		s:    &state{},
		now:  time.Now,
	}
}

func (repo *FileHistoryRepo) createStateDirIfNotExist() error {
	dir := filepath.Dir(repo.path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0700)
	}

	return nil
}

func (repo *FileHistoryRepo) load() error {
	repo.s = &state{}

	data, err := os.ReadFile(repo.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	err = json.Unmarshal(data, repo.s)
	if err != nil {
		return fmt.Errorf("cannot load state file: %v", err)
	}

	return nil
}

func (repo *FileHistoryRepo) save() error {
	err := repo.createStateDirIfNotExist()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(repo.s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(repo.path, data, 0644)
}

func (repo *FileHistoryRepo) GetVisited() ([]*VisitedDir, error) {
	err := repo.load()
	if err != nil {
		return nil, err
	}

	return repo.s.Visited, nil
}

// Last returns the most recently visited directory, or "" when there is none.
func (repo *FileHistoryRepo) Last() (string, error) {
	visited, err := repo.GetVisited()
	if err != nil || len(visited) == 0 {
		return "", err
	}

	return visited[0].Path, nil
}

func (repo *FileHistoryRepo) AddVisited(path string) error {
	err := repo.load()
	if err != nil {
		return err
	}

	index := slices.IndexFunc(
		repo.s.Visited,
		func(v *VisitedDir) bool {
			return v.Path == path
		},
	)
	if index != -1 {
		repo.s.Visited = slices.Delete(repo.s.Visited, index, index+1)
	}

	repo.s.Visited = slices.Insert(repo.s.Visited, 0, &VisitedDir{
		Path:        path,
		LastVisited: repo.now(),
	})

	if len(repo.s.Visited) > repo.size {
		repo.s.Visited = repo.s.Visited[:repo.size]
	}

	return repo.save()
}

type NopHistoryRepo struct{}

func (NopHistoryRepo) AddVisited(string) error            { return nil }
func (NopHistoryRepo) GetVisited() ([]*VisitedDir, error) { return nil, nil }
func (NopHistoryRepo) Last() (string, error)              { return "", nil }
