package models_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"servicehub-backend/internal/models"
)

func openPost(ownerID uuid.UUID, now time.Time) *models.JobPost {
	return &models.JobPost{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Status:    models.JobPostStatusOpen,
		ExpiresAt: now.Add(24 * time.Hour),
	}
}

func TestCanSubmitProposal_Allowed(t *testing.T) {
	now := time.Now()
	post := openPost(uuid.New(), now)

	err := models.CanSubmitProposal(post, 3, false, 10, now)
	assert.NoError(t, err)
}

func TestCanSubmitProposal_ClosedPost(t *testing.T) {
	now := time.Now()
	post := openPost(uuid.New(), now)
	post.Status = models.JobPostStatusClosed

	err := models.CanSubmitProposal(post, 0, false, 10, now)
	assert.ErrorIs(t, err, models.ErrPostClosed)
}

func TestCanSubmitProposal_ExpiredPost(t *testing.T) {
	now := time.Now()
	post := openPost(uuid.New(), now)
	post.ExpiresAt = now.Add(-time.Minute)

	err := models.CanSubmitProposal(post, 0, false, 10, now)
	assert.ErrorIs(t, err, models.ErrPostExpired)
}

func TestCanSubmitProposal_Duplicate(t *testing.T) {
	now := time.Now()
	post := openPost(uuid.New(), now)

	err := models.CanSubmitProposal(post, 1, true, 10, now)
	assert.ErrorIs(t, err, models.ErrDuplicateProposal)
}

func TestCanSubmitProposal_AtCap(t *testing.T) {
	now := time.Now()
	post := openPost(uuid.New(), now)

	assert.NoError(t, models.CanSubmitProposal(post, 9, false, 10, now))
	assert.ErrorIs(t, models.CanSubmitProposal(post, 10, false, 10, now), models.ErrPostFull)
}

func TestCanSubmitProposal_ExpiryBeatsCap(t *testing.T) {
	// An expired post reports expiry even when it is also full.
	now := time.Now()
	post := openPost(uuid.New(), now)
	post.ExpiresAt = now.Add(-time.Minute)

	err := models.CanSubmitProposal(post, 10, false, 10, now)
	assert.ErrorIs(t, err, models.ErrPostExpired)
}

func TestCanDecideProposal(t *testing.T) {
	now := time.Now()
	ownerID := uuid.New()
	post := openPost(ownerID, now)
	proposal := &models.JobProposal{
		ID:     uuid.New(),
		PostID: post.ID,
		Status: models.ProposalStatusPending,
	}

	assert.NoError(t, models.CanDecideProposal(post, proposal, ownerID))
	assert.ErrorIs(t, models.CanDecideProposal(post, proposal, uuid.New()), models.ErrNotOwner)

	proposal.Status = models.ProposalStatusApproved
	assert.ErrorIs(t, models.CanDecideProposal(post, proposal, ownerID), models.ErrProposalDecided)

	proposal.Status = models.ProposalStatusPending
	post.Status = models.JobPostStatusClosed
	assert.ErrorIs(t, models.CanDecideProposal(post, proposal, ownerID), models.ErrPostClosed)
}

func TestCanProvideQuotation(t *testing.T) {
	providerID := uuid.New()
	booking := &models.Booking{
		ID:         uuid.New(),
		ClientID:   uuid.New(),
		ProviderID: providerID,
		Status:     models.BookingStatusConfirmed,
	}

	assert.NoError(t, models.CanProvideQuotation(booking, providerID, false))
	assert.ErrorIs(t, models.CanProvideQuotation(booking, uuid.New(), false), models.ErrNotOwner)
	assert.ErrorIs(t, models.CanProvideQuotation(booking, providerID, true), models.ErrQuotationExists)

	booking.Status = models.BookingStatusPending
	assert.ErrorIs(t, models.CanProvideQuotation(booking, providerID, false), models.ErrBookingState)
}

func TestCanComplete(t *testing.T) {
	booking := &models.Booking{
		ID:     uuid.New(),
		Status: models.BookingStatusQuoteProvided,
	}

	assert.NoError(t, models.CanComplete(booking, models.QuotationStatusApproved))
	assert.ErrorIs(t, models.CanComplete(booking, models.QuotationStatusPending), models.ErrQuotationRequired)

	booking.Status = models.BookingStatusConfirmed
	assert.ErrorIs(t, models.CanComplete(booking, models.QuotationStatusApproved), models.ErrBookingState)
}

func TestFanoutCount(t *testing.T) {
	assert.Equal(t, 5, models.FanoutCount(8, 5))
	assert.Equal(t, 3, models.FanoutCount(3, 5))
	assert.Equal(t, 0, models.FanoutCount(0, 5))
}

func TestJobPostExpired(t *testing.T) {
	now := time.Now()
	post := &models.JobPost{ExpiresAt: now.Add(time.Hour)}

	assert.False(t, post.Expired(now))
	assert.True(t, post.Expired(now.Add(2*time.Hour)))
}
