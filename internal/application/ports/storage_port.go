package ports

import "context"

// BlobStorage es el servicio externo de archivos: sube bytes a un bucket y
// devuelve la URL pública. La implementación vive en infrastructure/storage.
type BlobStorage interface {
	Upload(ctx context.Context, bucket, path string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, bucket, path string) error
}
