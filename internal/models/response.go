package models

import "time"

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ProfileResponse struct {
	ID           string    `json:"id"`
	Role         string    `json:"role"`
	FullName     string    `json:"full_name"`
	BusinessName string    `json:"business_name,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Province     string    `json:"province,omitempty"`
	City         string    `json:"city,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type JobPostResponse struct {
	ID                string     `json:"id"`
	OwnerID           string     `json:"owner_id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Province          string     `json:"province"`
	City              string     `json:"city"`
	Budget            *float64   `json:"budget,omitempty"`
	Status            string     `json:"status"`
	Expired           bool       `json:"expired"`
	ExpiresAt         time.Time  `json:"expires_at"`
	WinningProposalID string     `json:"winning_proposal_id,omitempty"`
	ProposalCount     int        `json:"proposal_count"`
	CreatedAt         time.Time  `json:"created_at"`
}

type JobPostListResponse struct {
	Posts []JobPostResponse `json:"posts"`
}

type ProposalResponse struct {
	ID           string     `json:"id"`
	PostID       string     `json:"post_id"`
	ProviderID   string     `json:"provider_id"`
	QuoteAmount  float64    `json:"quote_amount"`
	QuoteDetails string     `json:"quote_details"`
	LineItems    []LineItem `json:"line_items,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}

type ProposalListResponse struct {
	Proposals []ProposalResponse `json:"proposals"`
}

type QuoteRequestResponse struct {
	ID          string    `json:"id"`
	RequesterID string    `json:"requester_id"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type QuoteRequestListResponse struct {
	Requests []QuoteRequestResponse `json:"requests"`
}

type FanoutResponse struct {
	RequestID       string   `json:"request_id"`
	BookingIDs      []string `json:"booking_ids"`
	ProvidersPicked int      `json:"providers_picked"`
}

type BookingResponse struct {
	ID               string     `json:"id"`
	ClientID         string     `json:"client_id"`
	ProviderID       string     `json:"provider_id"`
	ServiceID        string     `json:"service_id,omitempty"`
	ScheduledFor     *time.Time `json:"scheduled_for,omitempty"`
	Status           string     `json:"status"`
	QuoteDescription string     `json:"quote_description,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

type QuotationResponse struct {
	ID            string    `json:"id"`
	BookingID     string    `json:"booking_id"`
	Amount        float64   `json:"amount"`
	AttachmentURL string    `json:"attachment_url,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type ServiceResponse struct {
	ID              string            `json:"id"`
	ProviderID      string            `json:"provider_id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Category        string            `json:"category"`
	PriceFrom       *float64          `json:"price_from,omitempty"`
	Status          string            `json:"status"`
	RejectionReason string            `json:"rejection_reason,omitempty"`
	Locations       []ServiceLocation `json:"locations,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

type ConversationResponse struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	ProviderID  string    `json:"provider_id"`
	UnreadCount int       `json:"unread_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type ConversationListResponse struct {
	Conversations []ConversationResponse `json:"conversations"`
}

type MessageResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	Content        string    `json:"content"`
	IsRead         bool      `json:"is_read"`
	ClientRef      string    `json:"client_ref,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
}

type MarkReadResponse struct {
	Updated int `json:"updated"`
}

type StatusUpdateResponse struct {
	ID         string    `json:"id"`
	ProviderID string    `json:"provider_id"`
	Caption    string    `json:"caption,omitempty"`
	ImageURLs  []string  `json:"image_urls"`
	LikeCount  int       `json:"like_count"`
	CreatedAt  time.Time `json:"created_at"`
}

type StatusFeedResponse struct {
	Statuses []StatusUpdateResponse `json:"statuses"`
}

type LikeResponse struct {
	StatusID string `json:"status_id"`
	Likes    int    `json:"likes"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Link      string    `json:"link,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

type ReviewResponse struct {
	ID         string    `json:"id"`
	BookingID  string    `json:"booking_id"`
	ClientID   string    `json:"client_id"`
	ProviderID string    `json:"provider_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}

type UserSummary struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

type UserListResponse struct {
	Users []UserSummary `json:"users"`
}
