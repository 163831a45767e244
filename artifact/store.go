package artifact

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"github.com/teranos/bakein/config"
	"github.com/teranos/bakein/errors"
	"github.com/teranos/bakein/logger"
)

// Store reads and writes artifact files. Writes replace the whole file.
type Store struct {
	fs afero.Fs
}

// NewStore returns a store over fs
func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// NewOSStore returns a store over the real filesystem
func NewOSStore() *Store {
	return NewStore(afero.NewOsFs())
}

// Fs returns the underlying filesystem
func (s *Store) Fs() afero.Fs {
	return s.fs
}

// Write replaces the file at path with src, creating parent directories
func (s *Store) Write(path string, src []byte) error {
	if err := s.fs.MkdirAll(filepath.Dir(path), config.DefaultDirPermissions); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", path)
	}
	if err := afero.WriteFile(s.fs, path, src, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	logger.Debugw("wrote file", logger.FieldPath, path, logger.FieldBytes, len(src))
	return nil
}

// Read returns the artifact at path. A file that does not exist is reported
// as errors.ErrArtifactMissing naming symbol.
func (s *Store) Read(path, symbol string) ([]byte, error) {
	src, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WithDetailf(errors.WrapArtifactMissing(err, symbol), "path: %s", path)
		}
		return nil, errors.Wrapf(err, "failed to read artifact %s", path)
	}
	return src, nil
}

// Exists reports whether a file exists at path
func (s *Store) Exists(path string) bool {
	ok, err := afero.Exists(s.fs, path)
	return err == nil && ok
}

// Entry is one artifact found by List
type Entry struct {
	Path string
	Meta Meta
	// Err is set when the file's meta line could not be read
	Err error
}

// List returns every artifact below the unit directory of n, sorted by
// path. A unit that has no artifacts yet yields an empty list.
func (s *Store) List(n *Namer) ([]Entry, error) {
	root := n.UnitDir()
	if ok, err := afero.DirExists(s.fs, root); err != nil || !ok {
		return nil, nil
	}

	var entries []Entry
	err := afero.Walk(s.fs, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, Ext) {
			return nil
		}

		e := Entry{Path: path}
		src, err := afero.ReadFile(s.fs, path)
		if err != nil {
			e.Err = err
		} else {
			e.Meta, e.Err = ParseMeta(src)
		}
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list artifacts of %s", n.Unit)
	}

	slices.SortFunc(entries, func(a, b Entry) int { return strings.Compare(a.Path, b.Path) })
	return entries, nil
}
