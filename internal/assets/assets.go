package assets

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

// Thumbnail bounding box, matching the footprint products have always been
// stored with.
const (
	thumbWidth  = 300
	thumbHeight = 200
)

var ErrInvalidImage = errors.New("source is not a readable image")

// Staged is a validated, decoded image that has not yet been committed under
// a product's final asset name.
type Staged struct {
	img image.Image
	ext string
}

// Manager owns the asset directory backing product image references.
// Cleanup of replaced or orphaned files is best-effort: a failed removal is
// logged and never aborts a successful product save.
type Manager struct {
	dir         string
	placeholder string
	logger      *zap.Logger
}

// NewManager creates the asset directory if needed and returns a Manager
// rooted at it.
func NewManager(dir, placeholder string, logger *zap.Logger) (*Manager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create asset directory: %w", err)
	}

	return &Manager{
		dir:         dir,
		placeholder: placeholder,
		logger:      logger,
	}, nil
}

// Stage decodes the source file and holds it in memory until a product id is
// known. Undecodable or unsupported sources fail with ErrInvalidImage.
func (m *Manager) Stage(sourcePath string) (*Staged, error) {
	ext := strings.ToLower(filepath.Ext(sourcePath))
	if _, err := imaging.FormatFromExtension(ext); err != nil {
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrInvalidImage, ext)
	}

	img, err := imaging.Open(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	return &Staged{img: img, ext: ext}, nil
}

// Commit resizes the staged image into the thumbnail bounding box and writes
// it under the product's deterministic asset name, returning the relative
// path to persist on the product row.
func (m *Manager) Commit(staged *Staged, productID int) (string, error) {
	name := fmt.Sprintf("product_%d%s", productID, staged.ext)

	thumb := imaging.Fit(staged.img, thumbWidth, thumbHeight, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(m.dir, name)); err != nil {
		return "", fmt.Errorf("failed to write asset %s: %w", name, err)
	}

	return name, nil
}

// Replace removes the asset that newPath superseded. Failures are swallowed;
// the row write already succeeded and an orphan file is non-fatal.
func (m *Manager) Replace(oldPath, newPath string) {
	if oldPath == "" || oldPath == newPath {
		return
	}
	m.Remove(oldPath)
}

// Remove deletes the asset file backing a product, best-effort.
func (m *Manager) Remove(path string) {
	if path == "" {
		return
	}

	full := filepath.Join(m.dir, path)
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		m.logger.Warn("Failed to remove asset file",
			zap.String("path", full),
			zap.Error(err),
		)
	}
}

// Placeholder returns the static fallback asset path.
func (m *Manager) Placeholder() string {
	return m.placeholder
}

// Resolve returns the absolute path for a product's image reference, falling
// back to the placeholder when the reference is empty or the file is missing
// or unreadable.
func (m *Manager) Resolve(path *string) string {
	if path == nil || *path == "" {
		return m.placeholder
	}

	full := filepath.Join(m.dir, *path)
	if _, err := imaging.Open(full); err != nil {
		return m.placeholder
	}

	return full
}
