package service

import (
	"image"
	"os"
	"path/filepath"
	"strings"

	// Register decoders for the formats the gallery ships.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/okinedo-site/internal/content"
)

const staticURLPrefix = "/static/"

// GalleryService resolves the registry's gallery entries against the files
// actually present under the static root.
type GalleryService struct {
	staticDir string
}

// NewGalleryService creates a GalleryService serving files from staticDir.
func NewGalleryService(staticDir string) *GalleryService {
	return &GalleryService{staticDir: staticDir}
}

// GalleryItem is a gallery entry with its effective orientation.
type GalleryItem struct {
	Src         string
	Alt         string
	Orientation string
	Width       int
	Height      int
}

// Resolve returns the gallery in authored order. When the referenced file is
// readable, the orientation declared in the registry is corrected from the
// actual pixel dimensions; otherwise the declaration stands.
func (s *GalleryService) Resolve(images []content.GalleryImage) []GalleryItem {
	items := make([]GalleryItem, 0, len(images))
	for _, img := range images {
		item := GalleryItem{
			Src:         img.Src,
			Alt:         img.Alt,
			Orientation: img.Orientation,
		}

		if width, height, ok := s.probe(img.Src); ok {
			item.Width = width
			item.Height = height
			if width >= height {
				item.Orientation = "horizontal"
			} else {
				item.Orientation = "vertical"
			}
		}

		items = append(items, item)
	}
	return items
}

// probe decodes only the image header to get dimensions.
func (s *GalleryService) probe(src string) (int, int, bool) {
	if s.staticDir == "" || !strings.HasPrefix(src, staticURLPrefix) {
		return 0, 0, false
	}

	path := filepath.Join(s.staticDir, filepath.FromSlash(strings.TrimPrefix(src, staticURLPrefix)))
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, false
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, false
	}

	return cfg.Width, cfg.Height, true
}
