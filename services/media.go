package services

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/aroma-labs/aroma_api/dto"
	"github.com/aroma-labs/aroma_api/services/repositories"
	"github.com/aroma-labs/aroma_api/shared"
	log "github.com/sirupsen/logrus"
)

// MediaService handles scent imagery and rendered share cards. Files
// live in MinIO; scents keep a presigned URL on their record.
type MediaService struct {
	context.DefaultService
	sqlSvc   *SqliteService
	minioSvc *MinIOService
	baseURL  string

	scentRepo *repositories.ScentRepository
}

const MEDIA_SVC = "media_svc"

func (svc MediaService) Id() string {
	return MEDIA_SVC
}

func (svc *MediaService) Configure(ctx *context.Context) error {
	svc.baseURL = os.Getenv("BASE_URL")
	if svc.baseURL == "" {
		svc.baseURL = "http://localhost:8000"
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *MediaService) Start() error {
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	svc.minioSvc = svc.Service(MINIO_SVC).(*MinIOService)
	svc.scentRepo = repositories.NewScentRepository(svc.sqlSvc.Db())
	return nil
}

// UploadScentImage replaces the catalog image for a scent.
func (svc *MediaService) UploadScentImage(scentID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error) {
	if !svc.isValidImageFile(file.Filename) {
		return nil, shared.NewBadRequestError(nil, "Invalid image file format. Supported: JPG, PNG, WEBP")
	}

	if file.Size > 5*1024*1024 {
		return nil, shared.NewBadRequestError(nil, "Image file too large. Maximum size: 5MB")
	}

	scent, err := svc.scentRepo.GetScent(scentID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	ext := filepath.Ext(file.Filename)
	fileName := fmt.Sprintf("%s_%d%s", scentID, time.Now().Unix(), ext)
	objectName := fmt.Sprintf("scents/%s", fileName)

	src, err := file.Open()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to open uploaded file")
	}
	defer src.Close()

	uploadInfo, err := svc.minioSvc.UploadFile(objectName, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to upload file to storage")
	}

	fileURL := svc.fileURL(objectName)

	scent.ImageURL = fileURL
	if err := svc.scentRepo.UpdateScent(scent); err != nil {
		svc.minioSvc.DeleteFile(objectName)
		return nil, svc.sqlSvc.HandleError(err)
	}

	log.Printf("Successfully uploaded scent image %s to MinIO: %s", fileName, uploadInfo.Key)

	return &dto.MediaUploadResponse{
		ObjectName: objectName,
		URL:        fileURL,
		Size:       file.Size,
	}, nil
}

// UploadShareCard stores a rendered share image and returns its URL.
func (svc *MediaService) UploadShareCard(userID string, image []byte, contentType string) (string, error) {
	ext := ".png"
	if contentType == "image/jpeg" {
		ext = ".jpg"
	}

	objectName := fmt.Sprintf("shares/%s_%d%s", userID, time.Now().Unix(), ext)

	_, err := svc.minioSvc.UploadFile(objectName, bytes.NewReader(image), int64(len(image)), contentType)
	if err != nil {
		return "", shared.NewInternalError(err, "Failed to upload share card")
	}

	return svc.fileURL(objectName), nil
}

// fileURL prefers a presigned URL, falling back to the bucket path.
func (svc *MediaService) fileURL(objectName string) string {
	fileURL, err := svc.minioSvc.GetFileURL(objectName, 24*time.Hour)
	if err != nil {
		log.Printf("Failed to generate presigned URL: %v", err)
		return fmt.Sprintf("%s/%s/%s", svc.baseURL, svc.minioSvc.GetBucketName(), objectName)
	}
	return fileURL
}

func (svc *MediaService) isValidImageFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	validExts := []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}

	for _, validExt := range validExts {
		if ext == validExt {
			return true
		}
	}
	return false
}
