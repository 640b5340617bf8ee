package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"physiocare/models"
	"physiocare/services/storage"
	"physiocare/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// StorageHandler handles medical record file endpoints.
type StorageHandler struct {
	StorageSvc storage.StorageService
	RecordKey  string
}

// NewStorageHandler creates a new StorageHandler instance. The record
// encryption key comes from the Cloudinary configuration.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{
		StorageSvc: svc,
		RecordKey:  viper.GetString("cloudinary.recordKey"),
	}
}

// UploadRecordHandler handles POST /api/records/:kind. The kind segment
// must be a known attachment kind; unknown kinds are rejected.
func (h *StorageHandler) UploadRecordHandler(c *gin.Context) {
	kind := models.AttachmentKind(c.Param("kind"))
	if !kind.Known() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record kind"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	private := c.Query("private") == "true"

	var publicID string
	if private && h.RecordKey != "" {
		publicID, err = h.StorageSvc.UploadPrivateRecord(c.Request.Context(), tempFilePath, kind, h.RecordKey)
	} else {
		publicID, err = h.StorageSvc.UploadRecord(c.Request.Context(), tempFilePath, kind)
	}
	if err != nil {
		utils.GetLogger().Error("Failed to upload record", zap.String("kind", string(kind)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Dosya yüklenemedi"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"publicId": publicID})
}

// GetRecordURLHandler handles GET /api/records/url?publicId=&resourceType=.
// Signed URLs expire after an hour.
func (h *StorageHandler) GetRecordURLHandler(c *gin.Context) {
	publicID := c.Query("publicId")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "publicId is required"})
		return
	}
	resourceType := c.Query("resourceType")
	if resourceType == "" {
		resourceType = "image"
	}

	var (
		url string
		err error
	)
	if c.Query("signed") == "true" {
		url, err = h.StorageSvc.GetSecureDownloadURL(c.Request.Context(), resourceType, publicID, time.Hour)
	} else {
		url, err = h.StorageSvc.GetDownloadURL(c.Request.Context(), resourceType, publicID, 0)
	}
	if err != nil {
		utils.GetLogger().Error("Failed to build download URL", zap.String("publicID", publicID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "İndirme bağlantısı oluşturulamadı"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"downloadURL": url})
}

// DeleteRecordHandler handles DELETE /api/records?publicId=.
func (h *StorageHandler) DeleteRecordHandler(c *gin.Context) {
	publicID := c.Query("publicId")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "publicId is required"})
		return
	}

	if err := h.StorageSvc.DeleteFile(c.Request.Context(), publicID); err != nil {
		utils.GetLogger().Error("Failed to delete record", zap.String("publicID", publicID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Dosya silinemedi"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": publicID})
}
