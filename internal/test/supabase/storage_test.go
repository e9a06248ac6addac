package supabase_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"servicehub-backend/internal/supabase"
)

func TestStatusImagePath(t *testing.T) {
	providerID := uuid.New()
	statusID := uuid.New()

	path := supabase.StatusImagePath(providerID, statusID, "photo.jpg")

	assert.Equal(t, "providers/"+providerID.String()+"/statuses/"+statusID.String()+"/photo.jpg", path)
}

func TestQuotationAttachmentPath(t *testing.T) {
	providerID := uuid.New()
	bookingID := uuid.New()

	path := supabase.QuotationAttachmentPath(providerID, bookingID, "quote.pdf")

	assert.Equal(t, "providers/"+providerID.String()+"/bookings/"+bookingID.String()+"/quote.pdf", path)
}

func TestObjectPathRoundTrip(t *testing.T) {
	client, err := supabase.NewStorageClient("https://example.supabase.co", "service-key", "attachments")
	assert.NoError(t, err)

	objectPath := supabase.StatusImagePath(uuid.New(), uuid.New(), "photo.jpg")
	publicURL := client.PublicURL(objectPath)

	recovered, ok := client.ObjectPath(publicURL)
	assert.True(t, ok)
	assert.Equal(t, objectPath, recovered)
}

func TestObjectPathRejectsForeignURL(t *testing.T) {
	client, err := supabase.NewStorageClient("https://example.supabase.co", "service-key", "attachments")
	assert.NoError(t, err)

	_, ok := client.ObjectPath("https://other.supabase.co/storage/v1/object/public/attachments/x.jpg")
	assert.False(t, ok)

	// Same project, different bucket.
	_, ok = client.ObjectPath("https://example.supabase.co/storage/v1/object/public/avatars/x.jpg")
	assert.False(t, ok)
}
