package supabase

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"servicehub-backend/internal/models"
)

func (d *DatabaseClient) CreateJobPost(ownerID uuid.UUID, req models.CreateJobPostRequest, expiresAt time.Time) (*models.JobPost, error) {
	var post models.JobPost
	err := d.db.QueryRow(`
		INSERT INTO job_posts (owner_id, title, description, province, city, budget, status, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, owner_id, title, description, province, city, budget, status, expires_at, winning_proposal_id, created_at
	`, ownerID, req.Title, req.Description, req.Province, req.City, req.Budget,
		models.JobPostStatusOpen, expiresAt).Scan(
		&post.ID, &post.OwnerID, &post.Title, &post.Description, &post.Province,
		&post.City, &post.Budget, &post.Status, &post.ExpiresAt,
		&post.WinningProposalID, &post.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create job post: %w", err)
	}

	return &post, nil
}

func (d *DatabaseClient) GetJobPost(postID uuid.UUID) (*models.JobPost, error) {
	var post models.JobPost
	err := d.db.QueryRow(`
		SELECT id, owner_id, title, description, province, city, budget, status, expires_at, winning_proposal_id, created_at
		FROM job_posts
		WHERE id = $1
	`, postID).Scan(
		&post.ID, &post.OwnerID, &post.Title, &post.Description, &post.Province,
		&post.City, &post.Budget, &post.Status, &post.ExpiresAt,
		&post.WinningProposalID, &post.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job post: %w", err)
	}

	return &post, nil
}

// ListOpenJobPosts returns open, unexpired posts, newest first, with their
// proposal counts so clients can render the submission gate.
func (d *DatabaseClient) ListOpenJobPosts(province, city string, now time.Time) ([]models.JobPost, map[uuid.UUID]int, error) {
	query := d.sq.
		Select("p.id", "p.owner_id", "p.title", "p.description", "p.province", "p.city",
			"p.budget", "p.status", "p.expires_at", "p.winning_proposal_id", "p.created_at",
			"COUNT(jp.id) AS proposal_count").
		From("job_posts p").
		LeftJoin("job_proposals jp ON jp.post_id = p.id").
		Where("p.status = ?", models.JobPostStatusOpen).
		Where("p.expires_at > ?", now).
		GroupBy("p.id").
		OrderBy("p.created_at DESC")
	if province != "" {
		query = query.Where("p.province = ?", province)
	}
	if city != "" {
		query = query.Where("p.city = ?", city)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build job post query: %w", err)
	}

	rows, err := d.db.Query(sqlStr, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list job posts: %w", err)
	}
	defer rows.Close()

	var posts []models.JobPost
	counts := make(map[uuid.UUID]int)
	for rows.Next() {
		var post models.JobPost
		var count int
		err := rows.Scan(
			&post.ID, &post.OwnerID, &post.Title, &post.Description, &post.Province,
			&post.City, &post.Budget, &post.Status, &post.ExpiresAt,
			&post.WinningProposalID, &post.CreatedAt, &count,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan job post: %w", err)
		}
		posts = append(posts, post)
		counts[post.ID] = count
	}

	return posts, counts, rows.Err()
}

func (d *DatabaseClient) CountProposals(postID uuid.UUID) (int, error) {
	var count int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM job_proposals WHERE post_id = $1`, postID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count proposals: %w", err)
	}
	return count, nil
}

func (d *DatabaseClient) ListProposals(postID uuid.UUID) ([]models.JobProposal, error) {
	rows, err := d.db.Query(`
		SELECT id, post_id, provider_id, quote_amount, quote_details, line_items, status, created_at
		FROM job_proposals
		WHERE post_id = $1
		ORDER BY created_at ASC
	`, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	defer rows.Close()

	var proposals []models.JobProposal
	for rows.Next() {
		var p models.JobProposal
		err := rows.Scan(&p.ID, &p.PostID, &p.ProviderID, &p.QuoteAmount,
			&p.QuoteDetails, &p.LineItems, &p.Status, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan proposal: %w", err)
		}
		proposals = append(proposals, p)
	}

	return proposals, rows.Err()
}

func (d *DatabaseClient) GetProposal(proposalID uuid.UUID) (*models.JobProposal, error) {
	var p models.JobProposal
	err := d.db.QueryRow(`
		SELECT id, post_id, provider_id, quote_amount, quote_details, line_items, status, created_at
		FROM job_proposals
		WHERE id = $1
	`, proposalID).Scan(&p.ID, &p.PostID, &p.ProviderID, &p.QuoteAmount,
		&p.QuoteDetails, &p.LineItems, &p.Status, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}

	return &p, nil
}

// SubmitProposal inserts a proposal after re-checking every gate inside one
// transaction. The post row is locked so two providers racing the cap check
// cannot both pass it, and the (post_id, provider_id) unique constraint
// backstops the duplicate check.
func (d *DatabaseClient) SubmitProposal(postID, providerID uuid.UUID, req models.SubmitProposalRequest, maxPerPost int, now time.Time) (*models.JobProposal, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var post models.JobPost
	err = tx.QueryRow(`
		SELECT id, owner_id, title, description, province, city, budget, status, expires_at, winning_proposal_id, created_at
		FROM job_posts
		WHERE id = $1
		FOR UPDATE
	`, postID).Scan(
		&post.ID, &post.OwnerID, &post.Title, &post.Description, &post.Province,
		&post.City, &post.Budget, &post.Status, &post.ExpiresAt,
		&post.WinningProposalID, &post.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock job post: %w", err)
	}

	var existing int
	var alreadySubmitted bool
	err = tx.QueryRow(`
		SELECT COUNT(*), COUNT(*) FILTER (WHERE provider_id = $2) > 0
		FROM job_proposals
		WHERE post_id = $1
	`, postID, providerID).Scan(&existing, &alreadySubmitted)
	if err != nil {
		return nil, fmt.Errorf("failed to count proposals: %w", err)
	}

	if err := models.CanSubmitProposal(&post, existing, alreadySubmitted, maxPerPost, now); err != nil {
		return nil, err
	}

	lineItems, err := json.Marshal(req.LineItems)
	if err != nil {
		return nil, fmt.Errorf("failed to encode line items: %w", err)
	}

	var proposal models.JobProposal
	err = tx.QueryRow(`
		INSERT INTO job_proposals (post_id, provider_id, quote_amount, quote_details, line_items, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, post_id, provider_id, quote_amount, quote_details, line_items, status, created_at
	`, postID, providerID, req.QuoteAmount, req.QuoteDetails, lineItems,
		models.ProposalStatusPending).Scan(
		&proposal.ID, &proposal.PostID, &proposal.ProviderID, &proposal.QuoteAmount,
		&proposal.QuoteDetails, &proposal.LineItems, &proposal.Status, &proposal.CreatedAt,
	)
	if isUniqueViolation(err) {
		return nil, models.ErrDuplicateProposal
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert proposal: %w", err)
	}

	if err := notifyTx(tx, post.OwnerID,
		fmt.Sprintf("New proposal on %q", post.Title),
		fmt.Sprintf("/job-posts/%s", post.ID)); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit proposal: %w", err)
	}

	return &proposal, nil
}

// ApprovalResult reports what a proposal approval changed.
type ApprovalResult struct {
	Proposal *models.JobProposal
	PostID   uuid.UUID
	Rejected int
}

// ApproveProposal performs the whole approval in one transaction: the chosen
// proposal is approved, the post is closed with winning_proposal_id set, all
// other pending proposals are rejected, and the affected providers are
// notified. Either all of it commits or none of it does, so a closed post
// always owns its winning proposal and no pending rivals survive.
func (d *DatabaseClient) ApproveProposal(proposalID, ownerID uuid.UUID) (*ApprovalResult, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	post, proposal, err := lockProposalAndPost(tx, proposalID)
	if err != nil {
		return nil, err
	}

	if err := models.CanDecideProposal(post, proposal, ownerID); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(`
		UPDATE job_proposals SET status = $1 WHERE id = $2
	`, models.ProposalStatusApproved, proposal.ID); err != nil {
		return nil, fmt.Errorf("failed to approve proposal: %w", err)
	}

	if _, err := tx.Exec(`
		UPDATE job_posts SET status = $1, winning_proposal_id = $2 WHERE id = $3
	`, models.JobPostStatusClosed, proposal.ID, post.ID); err != nil {
		return nil, fmt.Errorf("failed to close job post: %w", err)
	}

	rejectedRows, err := tx.Query(`
		UPDATE job_proposals
		SET status = $1
		WHERE post_id = $2 AND id <> $3 AND status = $4
		RETURNING provider_id
	`, models.ProposalStatusRejected, post.ID, proposal.ID, models.ProposalStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to reject competing proposals: %w", err)
	}

	var rejectedProviders []uuid.UUID
	for rejectedRows.Next() {
		var providerID uuid.UUID
		if err := rejectedRows.Scan(&providerID); err != nil {
			rejectedRows.Close()
			return nil, fmt.Errorf("failed to scan rejected provider: %w", err)
		}
		rejectedProviders = append(rejectedProviders, providerID)
	}
	rejectedRows.Close()
	if err := rejectedRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to reject competing proposals: %w", err)
	}

	postLink := fmt.Sprintf("/job-posts/%s", post.ID)
	if err := notifyTx(tx, proposal.ProviderID,
		fmt.Sprintf("Your proposal on %q was approved", post.Title), postLink); err != nil {
		return nil, err
	}
	for _, providerID := range rejectedProviders {
		if err := notifyTx(tx, providerID,
			fmt.Sprintf("Your proposal on %q was not selected", post.Title), postLink); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit approval: %w", err)
	}

	proposal.Status = models.ProposalStatusApproved
	return &ApprovalResult{
		Proposal: proposal,
		PostID:   post.ID,
		Rejected: len(rejectedProviders),
	}, nil
}

func (d *DatabaseClient) RejectProposal(proposalID, ownerID uuid.UUID) (*models.JobProposal, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	post, proposal, err := lockProposalAndPost(tx, proposalID)
	if err != nil {
		return nil, err
	}

	if err := models.CanDecideProposal(post, proposal, ownerID); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(`
		UPDATE job_proposals SET status = $1 WHERE id = $2
	`, models.ProposalStatusRejected, proposal.ID); err != nil {
		return nil, fmt.Errorf("failed to reject proposal: %w", err)
	}

	if err := notifyTx(tx, proposal.ProviderID,
		fmt.Sprintf("Your proposal on %q was rejected", post.Title),
		fmt.Sprintf("/job-posts/%s", post.ID)); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit rejection: %w", err)
	}

	proposal.Status = models.ProposalStatusRejected
	return proposal, nil
}

func lockProposalAndPost(tx *sql.Tx, proposalID uuid.UUID) (*models.JobPost, *models.JobProposal, error) {
	var proposal models.JobProposal
	var post models.JobPost
	err := tx.QueryRow(`
		SELECT jp.id, jp.post_id, jp.provider_id, jp.quote_amount, jp.quote_details, jp.line_items, jp.status, jp.created_at,
		       p.id, p.owner_id, p.title, p.description, p.province, p.city, p.budget, p.status, p.expires_at, p.winning_proposal_id, p.created_at
		FROM job_proposals jp
		JOIN job_posts p ON p.id = jp.post_id
		WHERE jp.id = $1
		FOR UPDATE
	`, proposalID).Scan(
		&proposal.ID, &proposal.PostID, &proposal.ProviderID, &proposal.QuoteAmount,
		&proposal.QuoteDetails, &proposal.LineItems, &proposal.Status, &proposal.CreatedAt,
		&post.ID, &post.OwnerID, &post.Title, &post.Description, &post.Province,
		&post.City, &post.Budget, &post.Status, &post.ExpiresAt,
		&post.WinningProposalID, &post.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to lock proposal: %w", err)
	}

	return &post, &proposal, nil
}
