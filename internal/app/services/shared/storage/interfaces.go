package storage

import "context"

type Storage interface {
	UploadBase64Image(ctx context.Context, imageData []byte, bucketName, fileName, fileExtension string) (string, error)
	GetPresignedURL(ctx context.Context, bucketName, fileName string, expiryInHours int) (string, error)
}
