package services

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"servicehub-backend/internal/models"
	"servicehub-backend/internal/supabase"
)

// ImageUpload is one decoded multipart file.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// StatusService orchestrates status updates across storage and the
// database: images go to the bucket first, then the row is inserted with
// their public URLs; deletion reverses that order.
type StatusService struct {
	dbClient      *supabase.DatabaseClient
	storageClient *supabase.StorageClient
}

func NewStatusService(dbClient *supabase.DatabaseClient, storageClient *supabase.StorageClient) *StatusService {
	return &StatusService{
		dbClient:      dbClient,
		storageClient: storageClient,
	}
}

// Post uploads the images under a fresh batch id and inserts the status
// row referencing their public URLs.
func (s *StatusService) Post(providerID uuid.UUID, caption string, images []ImageUpload) (*models.StatusUpdate, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("at least one image is required")
	}

	batchID := uuid.New()
	urls := make([]string, 0, len(images))
	for _, image := range images {
		contentType := image.ContentType
		if contentType == "" {
			contentType = "image/jpeg"
		}
		url, err := s.storageClient.UploadFile(
			supabase.StatusImagePath(providerID, batchID, image.Filename), contentType, image.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to upload %s: %w", image.Filename, err)
		}
		urls = append(urls, url)
	}

	return s.dbClient.CreateStatusUpdate(providerID, caption, urls)
}

// Delete removes the referenced storage objects first and only then the
// row. A storage failure short-circuits: the row survives so the images it
// references are never orphaned silently.
func (s *StatusService) Delete(statusID, providerID uuid.UUID) error {
	status, err := s.dbClient.GetStatusUpdate(statusID)
	if err != nil {
		return err
	}
	if status.ProviderID != providerID {
		return models.ErrNotOwner
	}

	var urls []string
	if len(status.ImageURLs) > 0 {
		if err := json.Unmarshal(status.ImageURLs, &urls); err != nil {
			return fmt.Errorf("failed to decode image urls: %w", err)
		}
	}

	paths := make([]string, 0, len(urls))
	for _, url := range urls {
		if path, ok := s.storageClient.ObjectPath(url); ok {
			paths = append(paths, path)
		}
	}

	if err := s.storageClient.DeleteFiles(paths); err != nil {
		return fmt.Errorf("failed to delete status images: %w", err)
	}

	return s.dbClient.DeleteStatusUpdate(statusID, providerID)
}
