package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"triagesense/internal/llm"
	"triagesense/internal/metrics"
	"triagesense/pkg"
)

// Service orchestrates triage requests and follow-up turns. All
// conversation state lives in the Store; the Service itself holds no
// per-conversation state beyond the turn-serialization lock table.
type Service struct {
	store Store
	llm   llm.Client
	log   zerolog.Logger

	// strict turns the normally logged-and-ignored persistence failures
	// into request-fatal StorageErrors.
	strict bool

	turns *lockTable
}

// Options tune service policy.
type Options struct {
	// StrictPersistence makes every store write fatal to its request,
	// trading the default availability-over-durability policy for
	// stronger guarantees.
	StrictPersistence bool
}

// NewService constructs a Service with the given collaborators.
func NewService(store Store, client llm.Client, logger zerolog.Logger, opts Options) *Service {
	return &Service{
		store:  store,
		llm:    client,
		log:    logger,
		strict: opts.StrictPersistence,
		turns:  newLockTable(),
	}
}

// TriageResult is the outcome of an initial triage request. SubmissionID
// is 0 when the submission insert failed under the non-strict persistence
// policy; the reply and classification are still valid.
type TriageResult struct {
	SubmissionID int64
	Reply        string
	Level        pkg.TriageLevel
	Reason       string
}

// Triage handles an initial triage request: it prompts the model with the
// fixed persona instruction and the templated symptom statement, classifies
// urgency independently of the model, and seeds a new submission with its
// first assistant message.
func (s *Service) Triage(ctx context.Context, symptoms string) (*TriageResult, error) {
	symptoms = strings.TrimSpace(symptoms)
	if symptoms == "" {
		return nil, &ValidationError{Field: "symptoms"}
	}

	history := []llm.Message{
		{Role: string(pkg.RoleSystem), Content: SystemInstruction},
		{Role: string(pkg.RoleUser), Content: fmt.Sprintf(userTemplate, symptoms)},
	}
	reply, err := s.llm.Chat(ctx, history, triageMaxTokens)
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues("triage").Inc()
		return nil, &UpstreamError{Err: err}
	}

	level, reason := Classify(symptoms)
	metrics.TriageRequests.WithLabelValues(string(level)).Inc()

	id, err := s.store.CreateSubmission(ctx, symptoms, reply, level, reason)
	if err != nil {
		if s.strict {
			return nil, &StorageError{Op: "create submission", Err: err}
		}
		metrics.DroppedWrites.WithLabelValues("submission").Inc()
		s.log.Error().Err(err).Msg("failed to persist submission")
		return &TriageResult{SubmissionID: 0, Reply: reply, Level: level, Reason: reason}, nil
	}

	// Seed the message log so conversation history starts with the
	// assistant's triage note.
	if _, err := s.store.CreateMessage(ctx, id, pkg.RoleAssistant, reply); err != nil {
		if s.strict {
			return nil, &StorageError{Op: "create seed message", Err: err}
		}
		metrics.DroppedWrites.WithLabelValues("seed_message").Inc()
		s.log.Error().Err(err).Int64("submission_id", id).Msg("failed to persist seed message")
	}

	return &TriageResult{SubmissionID: id, Reply: reply, Level: level, Reason: reason}, nil
}
