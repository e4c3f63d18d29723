// Package pages provides the static legal pages served by the router.
// Files are read from a fixed directory on every request, so edits on disk
// show up on the next read.
package pages

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rohanthewiz/serr"
)

// Name identifies one of the known pages
type Name string

const (
	Home    Name = "home"
	Terms   Name = "terms"
	Privacy Name = "privacy"
)

// ErrNotFound is returned when a page is unknown or its file is absent
var ErrNotFound = errors.New("page not found")

var fileNames = map[Name]string{
	Home:    "index.html",
	Terms:   "terms.html",
	Privacy: "privacy.html",
}

// All lists the known pages in display order
func All() []Name {
	return []Name{Home, Terms, Privacy}
}

// FileName returns the file backing a page, or "" for an unknown page
func FileName(name Name) string {
	return fileNames[name]
}

// Store reads page files from a directory
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory the store reads from
func (s *Store) Dir() string {
	return s.dir
}

// Read returns the current contents of the page file
func (s *Store) Read(name Name) ([]byte, error) {
	fileName := FileName(name)
	if fileName == "" {
		return nil, ErrNotFound
	}

	content, err := os.ReadFile(filepath.Join(s.dir, fileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, serr.Wrap(err, "failed to read page file "+fileName)
	}
	return content, nil
}

// Missing reports the page files that are not present in the directory
func (s *Store) Missing() []string {
	var missing []string
	for _, name := range All() {
		fileName := FileName(name)
		info, err := os.Stat(filepath.Join(s.dir, fileName))
		if err != nil || info.IsDir() {
			missing = append(missing, fileName)
		}
	}
	return missing
}
