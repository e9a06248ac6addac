package models

type UpdateProfileRequest struct {
	FullName     string `json:"full_name,omitempty"`
	BusinessName string `json:"business_name,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Province     string `json:"province,omitempty"`
	City         string `json:"city,omitempty"`
}

type CreateJobPostRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Province    string   `json:"province" binding:"required"`
	City        string   `json:"city" binding:"required"`
	Budget      *float64 `json:"budget,omitempty"`
	// ExpiresAt is RFC3339. Defaults to 14 days out when omitted.
	ExpiresAt string `json:"expires_at,omitempty"`
}

type SubmitProposalRequest struct {
	QuoteAmount  float64    `json:"quote_amount" binding:"required,gt=0"`
	QuoteDetails string     `json:"quote_details" binding:"required"`
	LineItems    []LineItem `json:"line_items,omitempty"`
}

type CreateQuoteRequestRequest struct {
	Category    string `json:"category" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type CreateBookingRequest struct {
	ProviderID       string `json:"provider_id" binding:"required,uuid"`
	ServiceID        string `json:"service_id,omitempty"`
	ScheduledFor     string `json:"scheduled_for,omitempty"`
	QuoteDescription string `json:"quote_description,omitempty"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty"`
}

type CreateServiceRequest struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description" binding:"required"`
	Category    string            `json:"category" binding:"required"`
	PriceFrom   *float64          `json:"price_from,omitempty"`
	Locations   []ServiceLocation `json:"locations" binding:"required,min=1"`
}

type OpenConversationRequest struct {
	// ParticipantID is the other party; the caller's role decides which side
	// of the (client, provider) pair they occupy.
	ParticipantID string `json:"participant_id" binding:"required,uuid"`
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
	// ClientRef is an optional client-generated correlation id, echoed back
	// so an optimistic pending entry can be reconciled or discarded.
	ClientRef string `json:"client_ref,omitempty"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type RejectServiceRequest struct {
	Reason string `json:"reason,omitempty"`
}
