package handlers

import (
	"encoding/json"
	"log"
	"time"

	"servicehub-backend/internal/models"
)

// decodeColumn fills dst from a jsonb column this API wrote itself. A decode
// failure means the row is corrupt; the response field stays empty and the
// corruption is logged rather than failing the whole request.
func decodeColumn(column string, raw json.RawMessage, dst any) {
	if len(raw) == 0 {
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Printf("Failed to decode %s column: %v", column, err)
	}
}

func jobPostResponse(post *models.JobPost, proposalCount int, now time.Time) models.JobPostResponse {
	resp := models.JobPostResponse{
		ID:            post.ID.String(),
		OwnerID:       post.OwnerID.String(),
		Title:         post.Title,
		Description:   post.Description,
		Province:      post.Province,
		City:          post.City,
		Status:        post.Status,
		Expired:       post.Expired(now),
		ExpiresAt:     post.ExpiresAt,
		ProposalCount: proposalCount,
		CreatedAt:     post.CreatedAt,
	}
	if post.Budget.Valid {
		resp.Budget = &post.Budget.Float64
	}
	if post.WinningProposalID.Valid {
		resp.WinningProposalID = post.WinningProposalID.UUID.String()
	}
	return resp
}

func proposalResponse(p *models.JobProposal) models.ProposalResponse {
	resp := models.ProposalResponse{
		ID:           p.ID.String(),
		PostID:       p.PostID.String(),
		ProviderID:   p.ProviderID.String(),
		QuoteAmount:  p.QuoteAmount,
		QuoteDetails: p.QuoteDetails,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt,
	}
	decodeColumn("line_items", p.LineItems, &resp.LineItems)
	return resp
}

func bookingResponse(b *models.Booking) models.BookingResponse {
	resp := models.BookingResponse{
		ID:         b.ID.String(),
		ClientID:   b.ClientID.String(),
		ProviderID: b.ProviderID.String(),
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
	}
	if b.ServiceID.Valid {
		resp.ServiceID = b.ServiceID.UUID.String()
	}
	if b.ScheduledFor.Valid {
		resp.ScheduledFor = &b.ScheduledFor.Time
	}
	if b.QuoteDescription.Valid {
		resp.QuoteDescription = b.QuoteDescription.String
	}
	return resp
}

func quoteRequestResponse(qr *models.QuoteRequest) models.QuoteRequestResponse {
	return models.QuoteRequestResponse{
		ID:          qr.ID.String(),
		RequesterID: qr.RequesterID.String(),
		Category:    qr.Category,
		Description: qr.Description,
		Status:      qr.Status,
		CreatedAt:   qr.CreatedAt,
	}
}

func quotationResponse(q *models.Quotation) models.QuotationResponse {
	resp := models.QuotationResponse{
		ID:        q.ID.String(),
		BookingID: q.BookingID.String(),
		Amount:    q.Amount,
		Status:    q.Status,
		CreatedAt: q.CreatedAt,
	}
	if q.AttachmentURL.Valid {
		resp.AttachmentURL = q.AttachmentURL.String
	}
	return resp
}

func serviceResponse(s *models.Service) models.ServiceResponse {
	resp := models.ServiceResponse{
		ID:          s.ID.String(),
		ProviderID:  s.ProviderID.String(),
		Title:       s.Title,
		Description: s.Description,
		Category:    s.Category,
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
	}
	if s.PriceFrom.Valid {
		resp.PriceFrom = &s.PriceFrom.Float64
	}
	if s.RejectionReason.Valid {
		resp.RejectionReason = s.RejectionReason.String
	}
	decodeColumn("locations", s.Locations, &resp.Locations)
	return resp
}

func conversationResponse(conv *models.Conversation, unread int) models.ConversationResponse {
	return models.ConversationResponse{
		ID:          conv.ID.String(),
		ClientID:    conv.ClientID.String(),
		ProviderID:  conv.ProviderID.String(),
		UnreadCount: unread,
		CreatedAt:   conv.CreatedAt,
	}
}

func messageResponse(m *models.Message, clientRef string) models.MessageResponse {
	return models.MessageResponse{
		ID:             m.ID.String(),
		ConversationID: m.ConversationID.String(),
		SenderID:       m.SenderID.String(),
		Content:        m.Content,
		IsRead:         m.IsRead,
		ClientRef:      clientRef,
		CreatedAt:      m.CreatedAt,
	}
}

func statusUpdateResponse(s *models.StatusUpdate) models.StatusUpdateResponse {
	resp := models.StatusUpdateResponse{
		ID:         s.ID.String(),
		ProviderID: s.ProviderID.String(),
		LikeCount:  s.LikeCount,
		CreatedAt:  s.CreatedAt,
	}
	if s.Caption.Valid {
		resp.Caption = s.Caption.String
	}
	decodeColumn("image_urls", s.ImageURLs, &resp.ImageURLs)
	return resp
}

func profileResponse(p *models.Profile) models.ProfileResponse {
	resp := models.ProfileResponse{
		ID:        p.ID.String(),
		Role:      string(p.Role),
		FullName:  p.FullName,
		CreatedAt: p.CreatedAt,
	}
	if p.BusinessName.Valid {
		resp.BusinessName = p.BusinessName.String
	}
	if p.Phone.Valid {
		resp.Phone = p.Phone.String
	}
	if p.Province.Valid {
		resp.Province = p.Province.String
	}
	if p.City.Valid {
		resp.City = p.City.String
	}
	return resp
}

func reviewResponse(r *models.Review) models.ReviewResponse {
	resp := models.ReviewResponse{
		ID:         r.ID.String(),
		BookingID:  r.BookingID.String(),
		ClientID:   r.ClientID.String(),
		ProviderID: r.ProviderID.String(),
		Rating:     r.Rating,
		CreatedAt:  r.CreatedAt,
	}
	if r.Comment.Valid {
		resp.Comment = r.Comment.String
	}
	return resp
}

func notificationResponse(n *models.Notification) models.NotificationResponse {
	resp := models.NotificationResponse{
		ID:        n.ID.String(),
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
	if n.Link.Valid {
		resp.Link = n.Link.String
	}
	return resp
}
