package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/lshigami/lms/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Upload directories, relative to the storage root.
const (
	DirMaterials        = "materials"
	DirStudentDocuments = "studentDocuments"
	DirTests            = "tests"
)

// Storage keeps uploaded files and hands back the relative path that is
// recorded in the database.
type Storage interface {
	Save(ctx context.Context, dir, filename string, r io.Reader) (string, error)
	Open(relPath string) (afero.File, error)
	Remove(relPath string) error
}

type fileStorage struct {
	fs afero.Fs
}

// NewLocal stores files on local disk below cfg.Storage.Root.
func NewLocal(cfg *config.Config) (Storage, error) {
	root := cfg.Storage.Root
	if root == "" {
		root = "files"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root %s: %w", root, err)
	}
	log.Info().Str("root", root).Msg("Local file storage ready")
	return NewFromFs(afero.NewBasePathFs(afero.NewOsFs(), root)), nil
}

func NewFromFs(fs afero.Fs) Storage {
	return &fileStorage{fs: fs}
}

// Save writes r under dir with a uuid prefixed name so that uploads never
// overwrite each other.
func (s *fileStorage) Save(ctx context.Context, dir, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	rel := path.Join(dir, uuid.NewString()+"-"+sanitize(filename))

	f, err := s.fs.Create(rel)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", rel, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = s.fs.Remove(rel)
		return "", fmt.Errorf("failed to write %s: %w", rel, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", rel, err)
	}
	return rel, nil
}

func (s *fileStorage) Open(relPath string) (afero.File, error) {
	clean, err := cleanRel(relPath)
	if err != nil {
		return nil, err
	}
	return s.fs.Open(clean)
}

func (s *fileStorage) Remove(relPath string) error {
	clean, err := cleanRel(relPath)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(clean); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func cleanRel(p string) (string, error) {
	clean := path.Clean("/" + filepath.ToSlash(p))[1:]
	if clean == "" || strings.HasPrefix(clean, "..") {
		return "", fmt.Errorf("invalid file path %q", p)
	}
	return clean, nil
}

func sanitize(name string) string {
	base := path.Base(filepath.ToSlash(name))
	base = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, base)
	if base == "." || base == "/" || base == "" {
		return "file"
	}
	return base
}
