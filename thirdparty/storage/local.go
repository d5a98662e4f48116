package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/muhammadheryan/car-market/constant"
)

// PublicUploadsPrefix is the URL path the local directory is served under.
const PublicUploadsPrefix = "/uploads/"

type Local struct {
	dir     string
	baseURL string
}

// NewLocal creates dir if needed. URLs are baseURL + /uploads/<key>; an empty
// baseURL yields host-relative URLs.
func NewLocal(dir, baseURL string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &Local{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (l *Local) Dir() string {
	return l.dir
}

func (l *Local) Driver() string {
	return constant.StorageDriverLocal
}

func (l *Local) Put(ctx context.Context, key string, body []byte, _ string) (string, error) {
	if err := validKey(key); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// O_EXCL keeps two uploads from silently overwriting each other.
	f, err := os.OpenFile(filepath.Join(l.dir, key), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}
	if _, err := f.Write(body); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return l.baseURL + PublicUploadsPrefix + key, nil
}

func (l *Local) Delete(_ context.Context, key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	err := os.Remove(filepath.Join(l.dir, key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
