package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"servicehub-backend/internal/config"
	"servicehub-backend/internal/middleware"
	"servicehub-backend/internal/models"
	"servicehub-backend/internal/supabase"
)

const defaultPostLifetime = 14 * 24 * time.Hour

type JobPostsHandler struct {
	cfg            *config.Config
	dbClient       *supabase.DatabaseClient
	realtimeClient *supabase.RealtimeClient
}

func NewJobPostsHandler(cfg *config.Config, dbClient *supabase.DatabaseClient, realtimeClient *supabase.RealtimeClient) *JobPostsHandler {
	return &JobPostsHandler{
		cfg:            cfg,
		dbClient:       dbClient,
		realtimeClient: realtimeClient,
	}
}

// CreateJobPost godoc
// @Summary     Create a job post
// @Description Creates an open job post that providers can quote against.
// @Tags        job-posts
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.CreateJobPostRequest true "Job post"
// @Success     200 {object} models.JobPostResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /job-posts [post]
func (h *JobPostsHandler) CreateJobPost(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	var req models.CreateJobPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	expiresAt := time.Now().Add(defaultPostLifetime)
	if req.ExpiresAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.ExpiresAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid expires_at", Message: err.Error()})
			return
		}
		if parsed.Before(time.Now()) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "expires_at must be in the future"})
			return
		}
		expiresAt = parsed
	}

	post, err := h.dbClient.CreateJobPost(userID, req, expiresAt)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobPostResponse(post, 0, time.Now()))
}

// ListJobPosts godoc
// @Summary     List open job posts
// @Description Lists open, unexpired job posts, newest first, optionally filtered by location.
// @Tags        job-posts
// @Produce     json
// @Security    Bearer
// @Param       province query string false "Province filter"
// @Param       city query string false "City filter"
// @Success     200 {object} models.JobPostListResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /job-posts [get]
func (h *JobPostsHandler) ListJobPosts(c *gin.Context) {
	now := time.Now()
	posts, counts, err := h.dbClient.ListOpenJobPosts(c.Query("province"), c.Query("city"), now)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := models.JobPostListResponse{Posts: make([]models.JobPostResponse, len(posts))}
	for i := range posts {
		resp.Posts[i] = jobPostResponse(&posts[i], counts[posts[i].ID], now)
	}

	c.JSON(http.StatusOK, resp)
}

// GetJobPost godoc
// @Summary     Get a job post
// @Tags        job-posts
// @Produce     json
// @Security    Bearer
// @Param       post_id path string true "Job post ID (UUID)"
// @Success     200 {object} models.JobPostResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /job-posts/{post_id} [get]
func (h *JobPostsHandler) GetJobPost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("post_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid post id"})
		return
	}

	post, err := h.dbClient.GetJobPost(postID)
	if err != nil {
		writeError(c, err)
		return
	}

	count, err := h.dbClient.CountProposals(postID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobPostResponse(post, count, time.Now()))
}

// ListProposals godoc
// @Summary     List proposals on a job post
// @Description Owner-only view of all proposals submitted against the post.
// @Tags        proposals
// @Produce     json
// @Security    Bearer
// @Param       post_id path string true "Job post ID (UUID)"
// @Success     200 {object} models.ProposalListResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /job-posts/{post_id}/proposals [get]
func (h *JobPostsHandler) ListProposals(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	postID, err := uuid.Parse(c.Param("post_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid post id"})
		return
	}

	post, err := h.dbClient.GetJobPost(postID)
	if err != nil {
		writeError(c, err)
		return
	}
	if post.OwnerID != userID {
		c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "forbidden"})
		return
	}

	proposals, err := h.dbClient.ListProposals(postID)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := models.ProposalListResponse{Proposals: make([]models.ProposalResponse, len(proposals))}
	for i := range proposals {
		resp.Proposals[i] = proposalResponse(&proposals[i])
	}

	c.JSON(http.StatusOK, resp)
}

// SubmitProposal godoc
// @Summary     Submit a proposal
// @Description Provider submits a line-itemized quote against an open post. Refused when the post is closed, expired, already quoted by this provider, or at its proposal cap.
// @Tags        proposals
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       post_id path string true "Job post ID (UUID)"
// @Param       request body models.SubmitProposalRequest true "Proposal"
// @Success     200 {object} models.ProposalResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /job-posts/{post_id}/proposals [post]
func (h *JobPostsHandler) SubmitProposal(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	postID, err := uuid.Parse(c.Param("post_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid post id"})
		return
	}

	var req models.SubmitProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	proposal, err := h.dbClient.SubmitProposal(postID, userID, req, h.cfg.MaxProposalsPerPost, time.Now())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, proposalResponse(proposal))
}

// ApproveProposal godoc
// @Summary     Approve a proposal
// @Description Owner approves one proposal: it is marked approved, the post closes with its winning proposal set, and every other pending proposal is rejected, atomically.
// @Tags        proposals
// @Produce     json
// @Security    Bearer
// @Param       proposal_id path string true "Proposal ID (UUID)"
// @Success     200 {object} models.ProposalResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /proposals/{proposal_id}/approve [post]
func (h *JobPostsHandler) ApproveProposal(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	proposalID, err := uuid.Parse(c.Param("proposal_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid proposal id"})
		return
	}

	result, err := h.dbClient.ApproveProposal(proposalID, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	_ = h.realtimeClient.PublishUserEvent(result.Proposal.ProviderID, "proposal_decided",
		supabase.ProposalDecisionPayload(result.PostID, result.Proposal.ID, result.Proposal.Status))

	c.JSON(http.StatusOK, proposalResponse(result.Proposal))
}

// RejectProposal godoc
// @Summary     Reject a proposal
// @Tags        proposals
// @Produce     json
// @Security    Bearer
// @Param       proposal_id path string true "Proposal ID (UUID)"
// @Success     200 {object} models.ProposalResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /proposals/{proposal_id}/reject [post]
func (h *JobPostsHandler) RejectProposal(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	proposalID, err := uuid.Parse(c.Param("proposal_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid proposal id"})
		return
	}

	proposal, err := h.dbClient.RejectProposal(proposalID, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	_ = h.realtimeClient.PublishUserEvent(proposal.ProviderID, "proposal_decided",
		supabase.ProposalDecisionPayload(proposal.PostID, proposal.ID, proposal.Status))

	c.JSON(http.StatusOK, proposalResponse(proposal))
}
