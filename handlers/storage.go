package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"homeland/services/storage"

	"github.com/gin-gonic/gin"
)

// StorageHandler serves listing image uploads.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// UploadImageHandler handles POST /api/storage/images. The file lands in
// a temp path first because the upload SDK wants a local file.
func (h *StorageHandler) UploadImageHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	imageURL, err := h.StorageSvc.UploadImage(c, tempFilePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "image uploaded successfully",
		"imageURL": imageURL,
	})
}
