package services

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// Uploader mengunggah satu file dan mengembalikan URL publiknya.
// Interface ini yang di-inject ke controller supaya test bisa pakai stub.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, filename string) (string, error)
}

// CloudinaryStorage menyimpan file ke Cloudinary di bawah satu folder tetap.
type CloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// InitCloudinary membangun client dari credential triple di environment.
func InitCloudinary() (*cloudinary.Cloudinary, error) {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, errors.New("missing Cloudinary credentials (CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY, CLOUDINARY_API_SECRET)")
	}
	return cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
}

func NewCloudinaryStorage(cld *cloudinary.Cloudinary) *CloudinaryStorage {
	return &CloudinaryStorage{cld: cld, folder: "uploads"}
}

func (s *CloudinaryStorage) Upload(ctx context.Context, file io.Reader, filename string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   s.folder,
		PublicID: uuid.NewString(),
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}
