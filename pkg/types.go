package pkg

import "time"

// TriageLevel is the urgency tier assigned to a submission. It is computed
// once from the original symptom text and stored immutably.
type TriageLevel string

const (
	LevelEmergency TriageLevel = "Emergency"
	LevelUrgent    TriageLevel = "Urgent"
	LevelSelfCare  TriageLevel = "Self-care"
	LevelNonUrgent TriageLevel = "Non-urgent"
)

// MessageRole describes who authored a message. The system role is
// synthesized at query time when replaying history to the model and is
// never persisted.
type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Submission is one initial triage request and its permanent record. Rows
// are created exactly once per triage request and never mutated.
type Submission struct {
	ID           int64       `json:"id"`
	Symptoms     string      `json:"symptoms"`
	Reply        string      `json:"reply"`
	TriageLevel  TriageLevel `json:"triage_level"`
	TriageReason string      `json:"triage_reason"`
	CreatedAt    time.Time   `json:"created_at"`
}

// Message is one turn in a submission's conversation log. Within a
// submission, messages are totally ordered by ascending ID; that order is
// the only valid order for reconstructing model context.
type Message struct {
	ID           int64       `json:"id"`
	SubmissionID int64       `json:"submission_id"`
	Role         MessageRole `json:"role"`
	Content      string      `json:"content"`
	CreatedAt    time.Time   `json:"created_at"`
}
