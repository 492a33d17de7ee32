package handlers

import (
	"context"
	"io"
	"net/http"

	"bazar_back_end/internal/services"
	"bazar_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	maxUploadBytes    = 10 << 20 // 10 MB avant compression
	maxImageDimension = 1200
)

//
// 🖼️ POST /api/admin/images (multipart, champ "image")
//
// L'image est recompressée côté serveur (plus grand côté ≤ 1200px, JPEG)
// avant d'être poussée dans MinIO.
func UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Champ 'image' manquant"})
		return
	}

	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Image trop volumineuse (max 10 MB)"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier illisible"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier illisible"})
		return
	}

	compressed, err := utils.CompressImage(data, maxImageDimension)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format d'image non supporté"})
		return
	}

	url, err := services.UploadImage(context.Background(), compressed, "image/jpeg")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur stockage image: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
