package imagestore

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// FSStore keeps blobs on the local filesystem under a root directory.
// References are paths relative to the root; the content type rides in
// the file extension.
type FSStore struct {
	root string
}

// NewFSStore creates the store, making the root directory if needed.
func NewFSStore(root string) (*FSStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image store root: %w", err)
	}
	return &FSStore{root: root}, nil
}

// Put writes a blob under key and returns its reference.
func (s *FSStore) Put(_ context.Context, key string, data []byte, contentType string) (string, error) {
	if strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid image key %q", key)
	}
	ref := key + extensionFor(contentType)
	path := filepath.Join(s.root, ref)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create image directory: %w", err)
	}

	// Write-then-rename so readers never see a partial blob.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("failed to finalize image: %w", err)
	}
	return ref, nil
}

// Get resolves a reference to the blob and its content type.
func (s *FSStore) Get(_ context.Context, ref string) ([]byte, string, error) {
	if strings.Contains(ref, "..") {
		return nil, "", fmt.Errorf("invalid image ref %q", ref)
	}
	data, err := os.ReadFile(filepath.Join(s.root, ref))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("failed to read image: %w", err)
	}
	contentType := mime.TypeByExtension(filepath.Ext(ref))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return data, contentType, nil
}

// Delete removes a blob. Missing blobs are not an error.
func (s *FSStore) Delete(_ context.Context, ref string) error {
	if strings.Contains(ref, "..") {
		return fmt.Errorf("invalid image ref %q", ref)
	}
	err := os.Remove(filepath.Join(s.root, ref))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}
