package upload

import (
	"errors"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"campus-market/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Storage persists uploaded files and hands back the relative URL the core
// records against users and products.
type Storage interface {
	Save(header *multipart.FileHeader) (string, error)
	Remove(url string) error
}

type diskStorage struct {
	dir    string
	prefix string
	log    *zap.Logger
}

func NewStorage(config utils.UploadConfig, log *zap.Logger) Storage {
	return &diskStorage{
		dir:    config.Dir,
		prefix: config.URLPrefix,
		log:    log,
	}
}

// Save writes the uploaded file under a generated unique name preserving
// the original extension and returns its serving URL.
func (s *diskStorage) Save(header *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", err
	}

	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.New().String() + filepath.Ext(header.Filename)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	url := s.prefix + name
	s.log.Debug("Stored uploaded file",
		zap.String("original", header.Filename),
		zap.String("url", url))

	return url, nil
}

// Remove deletes a previously stored file. URLs outside the managed prefix
// are ignored, and a file that is already gone is not an error.
func (s *diskStorage) Remove(url string) error {
	if !strings.HasPrefix(url, s.prefix) {
		return nil
	}

	name := strings.TrimPrefix(url, s.prefix)
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
