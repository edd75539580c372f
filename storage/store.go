// Package storage is the object storage backend for the media library.
// Files live under path keys like "media/<folder>/<name>"; the driver is
// selected by environment so local development runs against plain disk while
// production uses an S3-compatible bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// Entry describes one stored object.
type Entry struct {
	Path         string    `json:"path"`
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"content_type"`
	LastModified time.Time `json:"last_modified"`
}

// Store is the object storage surface the media library consumes.
type Store interface {
	// List returns the objects under pathPrefix.
	List(ctx context.Context, pathPrefix string) ([]Entry, error)
	// Upload writes one object, overwriting any existing object at path.
	Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string) error
	// Remove deletes the given objects. Missing paths are not an error.
	Remove(ctx context.Context, paths []string) error
	// PublicURL returns the URL the object is served from.
	PublicURL(path string) string
}

// Open selects a Store implementation from the environment.
//
//	STORAGE_DRIVER: fs|s3 (default fs)
//	STORAGE_FS_ROOT: directory root when driver=fs (default ./uploads)
//	STORAGE_PUBLIC_BASE_URL: base URL objects are served from
//	(S3 specific variables documented in s3.go)
func Open(ctx context.Context) (Store, error) {
	driver := os.Getenv("STORAGE_DRIVER")
	if driver == "" {
		driver = "fs"
	}
	switch driver {
	case "fs":
		root := os.Getenv("STORAGE_FS_ROOT")
		if root == "" {
			root = "./uploads"
		}
		return NewFilesystem(root, os.Getenv("STORAGE_PUBLIC_BASE_URL"))
	case "s3":
		return OpenS3FromEnv(ctx)
	default:
		return nil, fmt.Errorf("unknown storage driver %s", driver)
	}
}
