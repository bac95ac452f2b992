package utils

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

var cld *cloudinary.Cloudinary

// UploadKind describes one class of asset the admin panel can upload
type UploadKind struct {
	Folder       string
	Prefix       string
	ResourceType string
	MaxSize      int64
	ContentTypes []string
}

var (
	UploadKindResume = UploadKind{
		Folder:       "portfolio/resumes",
		Prefix:       "resume",
		ResourceType: "raw",
		MaxSize:      5 * 1024 * 1024,
		ContentTypes: []string{"application/pdf"},
	}
	UploadKindProfileImage = UploadKind{
		Folder:       "portfolio/profile",
		Prefix:       "profile",
		ResourceType: "image",
		MaxSize:      2 * 1024 * 1024,
		ContentTypes: []string{"image/"},
	}
	UploadKindProjectImage = UploadKind{
		Folder:       "portfolio/projects",
		Prefix:       "project",
		ResourceType: "image",
		MaxSize:      3 * 1024 * 1024,
		ContentTypes: []string{"image/"},
	}
	UploadKindTechLogo = UploadKind{
		Folder:       "portfolio/tech-logos",
		Prefix:       "tech-logo",
		ResourceType: "image",
		MaxSize:      1 * 1024 * 1024,
		ContentTypes: []string{"image/"},
	}
)

// InitCloudinary initializes the Cloudinary client from the environment
func InitCloudinary() error {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return fmt.Errorf("cloudinary environment variables are not set")
	}

	var err error
	cld, err = cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return fmt.Errorf("error initializing Cloudinary: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err = cld.Admin.Ping(ctx); err != nil {
		return fmt.Errorf("error verifying the Cloudinary connection: %v", err)
	}

	LogSuccess("Cloudinary initialized and connection verified")
	return nil
}

func boolPointer(b bool) *bool {
	return &b
}

// CheckUploadedFile validates size and content type before anything is sent
// to the media host.
func CheckUploadedFile(file *multipart.FileHeader, kind UploadKind) error {
	if file.Size > kind.MaxSize {
		return fmt.Errorf("file too large, maximum size is %dMB", kind.MaxSize/(1024*1024))
	}

	contentType := file.Header.Get("Content-Type")
	for _, allowed := range kind.ContentTypes {
		if strings.HasPrefix(contentType, allowed) {
			return nil
		}
	}
	return fmt.Errorf("unsupported file type %q", contentType)
}

// UploadFile sends a validated multipart file to Cloudinary and returns
// the remote URL and the asset's public ID.
func UploadFile(file *multipart.FileHeader, kind UploadKind) (string, string, error) {
	if err := CheckUploadedFile(file, kind); err != nil {
		return "", "", err
	}

	if cld == nil {
		if err := InitCloudinary(); err != nil {
			return "", "", err
		}
	}

	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("error opening the uploaded file: %v", err)
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	publicID := fmt.Sprintf("%s-%s", kind.Prefix, uuid.New().String())

	uploadResult, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder:         kind.Folder,
		PublicID:       publicID,
		ResourceType:   kind.ResourceType,
		UseFilename:    boolPointer(false),
		UniqueFilename: boolPointer(true),
		Overwrite:      boolPointer(true),
	})
	if err != nil {
		return "", "", fmt.Errorf("error uploading to Cloudinary: %v", err)
	}

	if uploadResult.SecureURL == "" {
		return "", "", fmt.Errorf("empty secure URL in the Cloudinary response")
	}

	LogSuccess("File uploaded to Cloudinary: " + uploadResult.PublicID)
	return uploadResult.SecureURL, uploadResult.PublicID, nil
}

// DeleteAsset removes a previously uploaded asset by its public ID.
// Callers treat failures as best-effort cleanup.
func DeleteAsset(publicID string, resourceType string) error {
	if publicID == "" {
		return nil
	}
	if resourceType == "" {
		resourceType = "image"
	}

	if cld == nil {
		if err := InitCloudinary(); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	if err != nil {
		return fmt.Errorf("error deleting %s from Cloudinary: %v", publicID, err)
	}
	return nil
}
