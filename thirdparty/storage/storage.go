// Package storage persists resized listing images, either on local disk or in
// an S3-compatible bucket.
package storage

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/muhammadheryan/car-market/cmd/config"
	"github.com/muhammadheryan/car-market/constant"
)

// Storage writes objects under a key and returns the identifier clients use
// to fetch them.
type Storage interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
	// Delete succeeds when the key is already absent.
	Delete(ctx context.Context, key string) error
	Driver() string
}

// New builds the backend selected by cfg.Storage.Driver.
func New(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.Storage.Driver {
	case constant.StorageDriverLocal:
		return NewLocal(cfg.Storage.UploadDir, cfg.Storage.PublicBaseURL)
	case constant.StorageDriverS3:
		return NewS3(ctx, cfg.Storage)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeName reduces an uploaded filename to a flat, URL-safe object name.
func SanitizeName(name string) string {
	base := path.Base(strings.ReplaceAll(name, `\`, "/"))
	base = unsafeKeyChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	if base == "" {
		return "image"
	}
	return base
}

func validKey(key string) error {
	if key == "" || key != SanitizeName(key) {
		return fmt.Errorf("invalid object key %q", key)
	}
	return nil
}
