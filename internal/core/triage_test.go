package core

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triagesense/pkg"
)

func newTestService(store Store, client *fakeLLM, opts Options) *Service {
	return NewService(store, client, zerolog.Nop(), opts)
}

func TestTriageBlankSymptoms(t *testing.T) {
	store := newMemStore()
	client := &fakeLLM{reply: "note"}
	svc := newTestService(store, client, Options{})

	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := svc.Triage(context.Background(), input)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr, "input: %q", input)
	}
	assert.Zero(t, client.calls(), "blank input must not reach the model")
	assert.Empty(t, store.submissions)
}

func TestTriageSuccess(t *testing.T) {
	store := newMemStore()
	client := &fakeLLM{reply: "### 1. Summary of Symptoms\n..."}
	svc := newTestService(store, client, Options{})

	res, err := svc.Triage(context.Background(), "  mild sore throat for 2 days  ")
	require.NoError(t, err)

	assert.Equal(t, int64(1), res.SubmissionID)
	assert.Equal(t, client.reply, res.Reply)
	assert.Equal(t, pkg.LevelSelfCare, res.Level)
	assert.NotEmpty(t, res.Reason)

	// Two-entry prompt: fixed system instruction, then templated symptoms.
	require.Equal(t, 1, client.calls())
	history := client.histories[0]
	require.Len(t, history, 2)
	assert.Equal(t, string(pkg.RoleSystem), history[0].Role)
	assert.Equal(t, SystemInstruction, history[0].Content)
	assert.Equal(t, string(pkg.RoleUser), history[1].Role)
	assert.Contains(t, history[1].Content, "mild sore throat for 2 days")
	assert.Equal(t, triageMaxTokens, client.maxTokens[0])

	// Submission stored with the classifier's verdict and trimmed symptoms.
	require.Len(t, store.submissions, 1)
	sub := store.submissions[0]
	assert.Equal(t, "mild sore throat for 2 days", sub.Symptoms)
	assert.Equal(t, client.reply, sub.Reply)
	assert.Equal(t, pkg.LevelSelfCare, sub.TriageLevel)

	// Seed assistant message starts the conversation log.
	require.Len(t, store.messages, 1)
	assert.Equal(t, pkg.RoleAssistant, store.messages[0].Role)
	assert.Equal(t, client.reply, store.messages[0].Content)
	assert.Equal(t, sub.ID, store.messages[0].SubmissionID)
}

func TestTriageUpstreamFailurePersistsNothing(t *testing.T) {
	store := newMemStore()
	client := &fakeLLM{err: errors.New("rate limited")}
	svc := newTestService(store, client, Options{})

	_, err := svc.Triage(context.Background(), "chest pain")
	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Empty(t, store.submissions)
	assert.Empty(t, store.messages)
}

func TestTriageSubmissionWriteFailureIsNotFatal(t *testing.T) {
	store := newMemStore()
	store.createSubErr = errors.New("disk full")
	client := &fakeLLM{reply: "note"}
	svc := newTestService(store, client, Options{})

	res, err := svc.Triage(context.Background(), "runny nose")
	require.NoError(t, err, "availability over durability: reply still returned")
	assert.Zero(t, res.SubmissionID)
	assert.Equal(t, "note", res.Reply)
	assert.Empty(t, store.messages, "no seed without a submission")
}

func TestTriageSubmissionWriteFailureFatalWhenStrict(t *testing.T) {
	store := newMemStore()
	store.createSubErr = errors.New("disk full")
	client := &fakeLLM{reply: "note"}
	svc := newTestService(store, client, Options{StrictPersistence: true})

	_, err := svc.Triage(context.Background(), "runny nose")
	var stErr *StorageError
	require.ErrorAs(t, err, &stErr)
}

func TestTriageSeedWriteFailureIsNotFatal(t *testing.T) {
	store := newMemStore()
	store.createMsgErr = errors.New("disk full")
	client := &fakeLLM{reply: "note"}
	svc := newTestService(store, client, Options{})

	res, err := svc.Triage(context.Background(), "runny nose")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.SubmissionID)
	require.Len(t, store.submissions, 1)
	assert.Empty(t, store.messages)
}

func TestTriageClassifierIndependentOfModelReply(t *testing.T) {
	store := newMemStore()
	client := &fakeLLM{reply: "everything looks fine, just rest"}
	svc := newTestService(store, client, Options{})

	res, err := svc.Triage(context.Background(), "sudden chest pain and sweating")
	require.NoError(t, err)
	assert.Equal(t, pkg.LevelEmergency, res.Level)
	assert.True(t, strings.Contains(res.Reason, "'chest pain'"))
}
