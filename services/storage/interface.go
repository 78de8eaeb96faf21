package storage

import "context"

// StorageService uploads listing images to the media host and returns a
// permanent secure URL.
type StorageService interface {
	UploadImage(ctx context.Context, localFilePath string) (string, error)
}
