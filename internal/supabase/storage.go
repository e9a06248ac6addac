package supabase

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, serviceRoleKey, bucket string) (*StorageClient, error) {
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// StatusImagePath builds the object path for a status update image:
// providers/{provider_id}/statuses/{status_id}/{filename}
func StatusImagePath(providerID, statusID uuid.UUID, filename string) string {
	return fmt.Sprintf("providers/%s/statuses/%s/%s", providerID.String(), statusID.String(), filename)
}

// QuotationAttachmentPath builds the object path for a quotation attachment:
// providers/{provider_id}/bookings/{booking_id}/{filename}
func QuotationAttachmentPath(providerID, bookingID uuid.UUID, filename string) string {
	return fmt.Sprintf("providers/%s/bookings/%s/%s", providerID.String(), bookingID.String(), filename)
}

func (s *StorageClient) UploadFile(objectPath, contentType string, data []byte) (string, error) {
	upsert := true
	_, err := s.client.UploadFile(s.bucket, objectPath, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return s.PublicURL(objectPath), nil
}

func (s *StorageClient) PublicURL(objectPath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, objectPath)
}

// ObjectPath recovers the object path from a public URL previously produced
// by PublicURL. Returns false when the URL points outside this bucket.
func (s *StorageClient) ObjectPath(publicURL string) (string, bool) {
	prefix := fmt.Sprintf("%s/storage/v1/object/public/%s/", s.baseURL, s.bucket)
	if !strings.HasPrefix(publicURL, prefix) {
		return "", false
	}
	return strings.TrimPrefix(publicURL, prefix), true
}

func (s *StorageClient) DeleteFile(objectPath string) error {
	_, err := s.client.RemoveFile(s.bucket, []string{objectPath})
	return err
}

func (s *StorageClient) DeleteFiles(objectPaths []string) error {
	if len(objectPaths) == 0 {
		return nil
	}
	_, err := s.client.RemoveFile(s.bucket, objectPaths)
	if err != nil {
		return fmt.Errorf("failed to delete files: %w", err)
	}
	return nil
}
