package core

import (
	"context"
	"sync"
	"time"

	"triagesense/internal/llm"
	"triagesense/pkg"
)

// memStore is an in-memory Store with monotone ordinal ids, used to
// exercise the orchestrators without a live database. Error fields inject
// failures per operation.
type memStore struct {
	mu          sync.Mutex
	submissions []pkg.Submission
	messages    []pkg.Message
	nextSubID   int64
	nextMsgID   int64

	createSubErr  error
	createMsgErr  error
	listAfterErr  error // returned by ListMessages once listCalls > listAfterAt
	listAfterAt   int
	listCalls     int
	failMsgAtRole pkg.MessageRole // fail CreateMessage only for this role
}

func newMemStore() *memStore {
	return &memStore{nextSubID: 1, nextMsgID: 1}
}

func (s *memStore) CreateSubmission(ctx context.Context, symptoms, reply string, level pkg.TriageLevel, reason string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createSubErr != nil {
		return 0, s.createSubErr
	}
	sub := pkg.Submission{
		ID:           s.nextSubID,
		Symptoms:     symptoms,
		Reply:        reply,
		TriageLevel:  level,
		TriageReason: reason,
		CreatedAt:    time.Now().UTC(),
	}
	s.nextSubID++
	s.submissions = append(s.submissions, sub)
	return sub.ID, nil
}

func (s *memStore) CreateMessage(ctx context.Context, submissionID int64, role pkg.MessageRole, content string) (*pkg.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createMsgErr != nil && (s.failMsgAtRole == "" || s.failMsgAtRole == role) {
		return nil, s.createMsgErr
	}
	m := pkg.Message{
		ID:           s.nextMsgID,
		SubmissionID: submissionID,
		Role:         role,
		Content:      content,
		CreatedAt:    time.Now().UTC(),
	}
	s.nextMsgID++
	s.messages = append(s.messages, m)
	return &m, nil
}

func (s *memStore) GetSubmission(ctx context.Context, id int64) (*pkg.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.submissions {
		if s.submissions[i].ID == id {
			sub := s.submissions[i]
			return &sub, nil
		}
	}
	return nil, nil
}

func (s *memStore) ListMessages(ctx context.Context, submissionID int64) ([]pkg.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls++
	if s.listAfterErr != nil && s.listCalls > s.listAfterAt {
		return nil, s.listAfterErr
	}
	var out []pkg.Message
	for _, m := range s.messages {
		if m.SubmissionID == submissionID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *memStore) ListSubmissions(ctx context.Context, limit int) ([]pkg.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []pkg.Submission
	for i := len(s.submissions) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.submissions[i])
	}
	return out, nil
}

// fakeLLM records the history of each call and returns canned replies.
type fakeLLM struct {
	mu        sync.Mutex
	reply     string
	err       error
	histories [][]llm.Message
	maxTokens []int
}

func (f *fakeLLM) Chat(ctx context.Context, messages []llm.Message, maxTokens int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	history := make([]llm.Message, len(messages))
	copy(history, messages)
	f.histories = append(f.histories, history)
	f.maxTokens = append(f.maxTokens, maxTokens)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeLLM) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.histories)
}
