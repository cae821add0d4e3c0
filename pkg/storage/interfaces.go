package storage

import (
	"errors"
	"mime/multipart"
)

// Only these image extensions are accepted for upload.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

var ErrUnsupportedType = errors.New("only jpg, jpeg, png and webp files are allowed")

// Storage persists uploaded images. Save returns the public path that gets
// stored on the record and later passed back to Delete.
type Storage interface {
	Save(file *multipart.FileHeader) (string, error)
	Delete(path string) error
}
