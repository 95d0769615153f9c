package utils

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// DefaultCarImage is the placeholder served when a car has no photo of
// its own. It is shared between records and must never be unlinked.
const DefaultCarImage = "images/default-car.png"

// ImageCleaner removes the file behind a car's image reference when the
// reference is replaced or its car is deleted. Cleanup is best-effort:
// failures must never fail the owning operation.
type ImageCleaner interface {
	Clear(imagePath string)
}

type DiskImageCleaner struct{}

func NewDiskImageCleaner() ImageCleaner {
	return &DiskImageCleaner{}
}

func (d *DiskImageCleaner) Clear(imagePath string) {
	if imagePath == "" || imagePath == DefaultCarImage {
		return
	}

	// Upload paths are stored with a leading slash for the front end.
	p := filepath.Clean(strings.TrimPrefix(imagePath, "/"))

	if err := os.Remove(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return
		}
		log.Printf("Failed to remove image %s: %v", p, err)
	}
}
