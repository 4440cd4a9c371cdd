package db

import (
	"context"
	"database/sql"
	"errors"

	"triagesense/pkg"
)

// Repository wraps database operations for submissions and messages.
// A single postgres database backs both relations.
type Repository struct {
	DB *sql.DB
}

// NewRepository constructs a new Repository from an existing sql.DB.
// The caller is responsible for managing the DB connection lifecycle.
func NewRepository(db *sql.DB) *Repository { return &Repository{DB: db} }

// CreateSubmission inserts a new submission and returns its id.
func (r *Repository) CreateSubmission(ctx context.Context, symptoms, reply string, level pkg.TriageLevel, reason string) (int64, error) {
	var id int64
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO submissions (symptoms, reply, triage_level, triage_reason)
         VALUES ($1, $2, $3, $4)
         RETURNING id`,
		symptoms, reply, string(level), reason,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// CreateMessage appends a message to the given submission's log.
func (r *Repository) CreateMessage(ctx context.Context, submissionID int64, role pkg.MessageRole, content string) (*pkg.Message, error) {
	var m pkg.Message
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO messages (submission_id, role, content)
         VALUES ($1, $2, $3)
         RETURNING id, submission_id, role, content, created_at`,
		submissionID, string(role), content,
	).Scan(&m.ID, &m.SubmissionID, &m.Role, &m.Content, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetSubmission retrieves a submission by id, or (nil, nil) when absent.
func (r *Repository) GetSubmission(ctx context.Context, id int64) (*pkg.Submission, error) {
	var s pkg.Submission
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, symptoms, reply, triage_level, triage_reason, created_at
         FROM submissions
         WHERE id = $1`, id,
	).Scan(&s.ID, &s.Symptoms, &s.Reply, &s.TriageLevel, &s.TriageReason, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// ListMessages returns a submission's messages ordered by ascending id,
// the only valid order for reconstructing model context.
func (r *Repository) ListMessages(ctx context.Context, submissionID int64) ([]pkg.Message, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, submission_id, role, content, created_at
         FROM messages
         WHERE submission_id = $1
         ORDER BY id ASC`, submissionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []pkg.Message
	for rows.Next() {
		var m pkg.Message
		if err := rows.Scan(&m.ID, &m.SubmissionID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// ListSubmissions returns up to limit submissions, most recent first.
func (r *Repository) ListSubmissions(ctx context.Context, limit int) ([]pkg.Submission, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, symptoms, reply, triage_level, triage_reason, created_at
         FROM submissions
         ORDER BY id DESC
         LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []pkg.Submission
	for rows.Next() {
		var s pkg.Submission
		if err := rows.Scan(&s.ID, &s.Symptoms, &s.Reply, &s.TriageLevel, &s.TriageReason, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
