package storage

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxImageSize is the upload size limit for farm images.
const MaxImageSize = 5 << 20 // 5 MB

// PublicPrefix is the URL prefix under which stored images are served.
const PublicPrefix = "/uploads/"

var (
	// ErrImageTooLarge signals the 5 MB limit was exceeded.
	ErrImageTooLarge = errors.New("image exceeds the 5 MB size limit")

	// ErrUnsupportedImage signals a format other than jpeg/png/gif/webp.
	ErrUnsupportedImage = errors.New("unsupported image format, expected jpeg, png, gif or webp")
)

// extByMIME maps accepted sniffed content types to stored file extensions.
var extByMIME = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ImageStore persists uploaded farm images and removes them again.
type ImageStore interface {
	// Save validates size and format and stores the file under a fresh
	// name, returning its public path.
	Save(file multipart.File, header *multipart.FileHeader) (string, error)

	// Remove deletes the file behind a public path. A missing file is
	// not an error; cleanup is best-effort.
	Remove(path string) error
}

// DiskImageStore keeps images as files in a single directory.
type DiskImageStore struct {
	dir string
}

// NewDiskImageStore creates the directory if needed.
func NewDiskImageStore(dir string) (*DiskImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskImageStore{dir: dir}, nil
}

func (s *DiskImageStore) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	if header.Size > MaxImageSize {
		return "", ErrImageTooLarge
	}

	// Sniff the real content type instead of trusting the client header.
	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		return "", err
	}
	ext, ok := extByMIME[http.DetectContentType(head[:n])]
	if !ok {
		return "", ErrUnsupportedImage
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(file, MaxImageSize)); err != nil {
		_ = os.Remove(dst.Name())
		return "", err
	}
	return PublicPrefix + name, nil
}

func (s *DiskImageStore) Remove(path string) error {
	name, ok := strings.CutPrefix(path, PublicPrefix)
	if !ok || name == "" {
		return nil
	}
	// filepath.Base guards against traversal in stored paths.
	full := filepath.Join(s.dir, filepath.Base(name))
	if _, err := os.Stat(full); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(full)
}

// Dir exposes the storage directory for the static file route.
func (s *DiskImageStore) Dir() string {
	return s.dir
}
