package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Workflow rule violations. The database layer returns these from inside its
// transactions; handlers map them to HTTP status codes.
var (
	ErrPostClosed        = errors.New("job post is closed")
	ErrPostExpired       = errors.New("job post has expired")
	ErrPostFull          = errors.New("job post has reached its proposal limit")
	ErrDuplicateProposal = errors.New("provider already submitted a proposal for this post")
	ErrProposalDecided   = errors.New("proposal has already been decided")
	ErrNotOwner          = errors.New("caller does not own this resource")
	ErrNotParticipant    = errors.New("caller is not a participant")
	ErrBookingState      = errors.New("booking is not in a state that allows this action")
	ErrQuotationExists   = errors.New("booking already has a quotation")
	ErrQuotationRequired = errors.New("booking has no approved quotation")
	ErrAlreadyReviewed   = errors.New("booking has already been reviewed")
)

// CanSubmitProposal is the proposal gate: the post must be open and not
// expired, the provider must not have a proposal on it yet, and the post
// must be under its proposal cap. All four are re-checked inside the
// submission transaction, not just at form-render time.
func CanSubmitProposal(post *JobPost, existing int, alreadySubmitted bool, max int, now time.Time) error {
	if post.Status != JobPostStatusOpen {
		return ErrPostClosed
	}
	if post.Expired(now) {
		return ErrPostExpired
	}
	if alreadySubmitted {
		return ErrDuplicateProposal
	}
	if existing >= max {
		return ErrPostFull
	}
	return nil
}

// CanDecideProposal checks an owner's approve/reject action.
func CanDecideProposal(post *JobPost, proposal *JobProposal, ownerID uuid.UUID) error {
	if post.OwnerID != ownerID {
		return ErrNotOwner
	}
	if post.Status != JobPostStatusOpen {
		return ErrPostClosed
	}
	if proposal.Status != ProposalStatusPending {
		return ErrProposalDecided
	}
	return nil
}

// CanProvideQuotation checks a provider's quotation submission: the booking
// must be confirmed and must not already carry a quotation.
func CanProvideQuotation(booking *Booking, providerID uuid.UUID, hasQuotation bool) error {
	if booking.ProviderID != providerID {
		return ErrNotOwner
	}
	if booking.Status != BookingStatusConfirmed {
		return ErrBookingState
	}
	if hasQuotation {
		return ErrQuotationExists
	}
	return nil
}

// CanComplete gates booking completion on an approved quotation.
func CanComplete(booking *Booking, quotationStatus string) error {
	if booking.Status != BookingStatusQuoteProvided {
		return ErrBookingState
	}
	if quotationStatus != QuotationStatusApproved {
		return ErrQuotationRequired
	}
	return nil
}

// FanoutCount returns how many bookings a quote-request approval creates:
// the configured fan-out size, capped by the providers actually available.
func FanoutCount(available, fanoutSize int) int {
	if available < fanoutSize {
		return available
	}
	return fanoutSize
}
