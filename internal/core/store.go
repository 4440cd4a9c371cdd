package core

import (
	"context"

	"triagesense/pkg"
)

// Store is the conversation-store contract consumed by the orchestrators.
// All operations must be safe to call concurrently for different
// submissions; no cross-submission ordering is required. Implementations
// assign monotone ordinal ids and never mutate or delete rows.
type Store interface {
	// CreateSubmission persists a new submission and returns its id.
	CreateSubmission(ctx context.Context, symptoms, reply string, level pkg.TriageLevel, reason string) (int64, error)
	// CreateMessage appends a message to a submission's log.
	CreateMessage(ctx context.Context, submissionID int64, role pkg.MessageRole, content string) (*pkg.Message, error)
	// GetSubmission returns the submission or (nil, nil) when absent.
	GetSubmission(ctx context.Context, id int64) (*pkg.Submission, error)
	// ListMessages returns a submission's log ordered by ascending id.
	ListMessages(ctx context.Context, submissionID int64) ([]pkg.Message, error)
	// ListSubmissions returns up to limit submissions, newest first.
	ListSubmissions(ctx context.Context, limit int) ([]pkg.Submission, error)
}
