package services

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"bazar_back_end/internal/database"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// UploadImage pousse une image (déjà compressée) dans MinIO sous un nom d'objet
// aléatoire et retourne son URL publique.
func UploadImage(ctx context.Context, data []byte, contentType string) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	bucket := os.Getenv("MINIO_BUCKET")
	objectName := "images/" + uuid.NewString() + ".jpg"

	_, err := database.MinIO.PutObject(ctx, bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}

	scheme := "http"
	if os.Getenv("MINIO_USE_SSL") == "true" {
		scheme = "https"
	}
	url := fmt.Sprintf("%s://%s/%s/%s", scheme, os.Getenv("MINIO_ENDPOINT"), bucket, objectName)
	return url, nil
}
