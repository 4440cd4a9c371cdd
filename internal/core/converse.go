package core

import (
	"context"
	"strings"

	"triagesense/internal/llm"
	"triagesense/internal/metrics"
	"triagesense/pkg"
)

// ConverseResult holds the assistant's reply for one follow-up turn and the
// full conversation log after the turn, ordered by ascending message id.
// The synthesized system entry sent to the model is never part of the log.
type ConverseResult struct {
	Reply        string
	Conversation []pkg.Message
}

// Converse handles one follow-up turn against an existing submission. The
// new user message is appended to the log, the full ordered history is
// replayed to the model behind the fixed system instruction, and the reply
// is appended in turn.
//
// Failure policy: the user-message append is fatal, since no model call
// should proceed on an inconsistent log. A model failure after that append
// is not rolled back; the user message stays persisted with no reply. The
// assistant-message append is non-fatal by default, so the returned reply
// can diverge from what is stored.
func (s *Service) Converse(ctx context.Context, submissionID int64, message string) (*ConverseResult, error) {
	sub, err := s.store.GetSubmission(ctx, submissionID)
	if err != nil {
		return nil, &StorageError{Op: "get submission", Err: err}
	}
	if sub == nil {
		return nil, ErrSubmissionNotFound
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, &ValidationError{Field: "message"}
	}

	// Serialize turns per submission: concurrent turns against one id must
	// not read the same history before either appends.
	l := s.turns.lock(submissionID)
	defer l.Unlock()

	if _, err := s.store.CreateMessage(ctx, submissionID, pkg.RoleUser, message); err != nil {
		return nil, &StorageError{Op: "create user message", Err: err}
	}

	stored, err := s.store.ListMessages(ctx, submissionID)
	if err != nil {
		return nil, &StorageError{Op: "list messages", Err: err}
	}
	history := make([]llm.Message, 0, len(stored)+1)
	history = append(history, llm.Message{Role: string(pkg.RoleSystem), Content: SystemInstruction})
	for _, m := range stored {
		history = append(history, llm.Message{Role: string(m.Role), Content: m.Content})
	}

	reply, err := s.llm.Chat(ctx, history, converseMaxTokens)
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues("converse").Inc()
		return nil, &UpstreamError{Err: err}
	}
	metrics.ConverseTurns.Inc()

	if _, err := s.store.CreateMessage(ctx, submissionID, pkg.RoleAssistant, reply); err != nil {
		if s.strict {
			return nil, &StorageError{Op: "create assistant message", Err: err}
		}
		metrics.DroppedWrites.WithLabelValues("assistant_message").Inc()
		s.log.Error().Err(err).Int64("submission_id", submissionID).Msg("failed to persist assistant message")
	}

	conversation, err := s.store.ListMessages(ctx, submissionID)
	if err != nil {
		return nil, &StorageError{Op: "list messages after append", Err: err}
	}
	return &ConverseResult{Reply: reply, Conversation: conversation}, nil
}

// Submissions returns up to limit submissions, most recent first.
func (s *Service) Submissions(ctx context.Context, limit int) ([]pkg.Submission, error) {
	subs, err := s.store.ListSubmissions(ctx, limit)
	if err != nil {
		return nil, &StorageError{Op: "list submissions", Err: err}
	}
	return subs, nil
}
