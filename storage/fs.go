package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Filesystem stores objects as plain files under a root directory. Keys map to
// relative paths; the public URL is base + "/" + key, matching how the API
// serves the uploads directory statically.
type Filesystem struct {
	root    string
	baseURL string
}

func NewFilesystem(root, baseURL string) (*Filesystem, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &Filesystem{root: root, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// resolve maps a key to a file path, rejecting escapes from the root.
func (f *Filesystem) resolve(key string) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" {
		return "", fmt.Errorf("empty storage path")
	}
	return filepath.Join(f.root, filepath.FromSlash(clean)), nil
}

func (f *Filesystem) List(ctx context.Context, pathPrefix string) ([]Entry, error) {
	dir, err := f.resolve(pathPrefix)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0)
	err = filepath.Walk(dir, func(p string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			if os.IsNotExist(walkErr) {
				return nil
			}
			return walkErr
		}
		if info.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(f.root, p)
		if relErr != nil {
			return relErr
		}
		key := filepath.ToSlash(rel)
		entries = append(entries, Entry{
			Path:         key,
			Name:         path.Base(key),
			Size:         info.Size(),
			ContentType:  mime.TypeByExtension(path.Ext(key)),
			LastModified: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].LastModified.After(entries[j].LastModified)
	})
	return entries, nil
}

func (f *Filesystem) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	target, err := f.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		os.Remove(target)
		return err
	}
	return out.Close()
}

func (f *Filesystem) Remove(ctx context.Context, keys []string) error {
	for _, key := range keys {
		target, err := f.resolve(key)
		if err != nil {
			return err
		}
		if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

func (f *Filesystem) PublicURL(key string) string {
	key = strings.TrimPrefix(path.Clean("/"+key), "/")
	if f.baseURL == "" {
		return "/" + key
	}
	return f.baseURL + "/" + key
}
