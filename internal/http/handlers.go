package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"triagesense/internal/core"
	"triagesense/pkg"
)

// defaultSubmissionsLimit caps GET /submissions when no limit is given.
const defaultSubmissionsLimit = 50

// Pinger is the health-check view of the database connection.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler contains shared dependencies for all HTTP handlers.
type Handler struct {
	svc *core.Service
	db  Pinger
	log zerolog.Logger
}

// NewHandler creates a new Handler around the triage service.
func NewHandler(svc *core.Service, db Pinger, logger zerolog.Logger) *Handler {
	return &Handler{svc: svc, db: db, log: logger}
}

// TriageRequest is the body of POST /triage.
type TriageRequest struct {
	Symptoms string `json:"symptoms"`
}

// TriageResponse is the reply to POST /triage.
type TriageResponse struct {
	SubmissionID int64           `json:"submission_id"`
	TriageReply  string          `json:"triage_reply"`
	TriageLevel  pkg.TriageLevel `json:"triage_level"`
	TriageReason string          `json:"triage_reason"`
}

// ConverseRequest is the body of POST /converse.
type ConverseRequest struct {
	SubmissionID int64  `json:"submission_id"`
	Message      string `json:"message"`
}

// conversationEntry is one message as returned to clients. The owning
// submission id is implied by the request and omitted.
type conversationEntry struct {
	ID        int64           `json:"id"`
	Role      pkg.MessageRole `json:"role"`
	Content   string          `json:"content"`
	CreatedAt time.Time       `json:"created_at"`
}

// ConverseResponse is the reply to POST /converse.
type ConverseResponse struct {
	AssistantReply string              `json:"assistant_reply"`
	Conversation   []conversationEntry `json:"conversation"`
}

// SubmissionsResponse is the reply to GET /submissions.
type SubmissionsResponse struct {
	Submissions []pkg.Submission `json:"submissions"`
}

// Triage handles POST /triage.
func (h *Handler) Triage(w http.ResponseWriter, r *http.Request) {
	var req TriageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := h.svc.Triage(r.Context(), req.Symptoms)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.JSON(w, http.StatusOK, TriageResponse{
		SubmissionID: res.SubmissionID,
		TriageReply:  res.Reply,
		TriageLevel:  res.Level,
		TriageReason: res.Reason,
	})
}

// Converse handles POST /converse.
func (h *Handler) Converse(w http.ResponseWriter, r *http.Request) {
	var req ConverseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := h.svc.Converse(r.Context(), req.SubmissionID, req.Message)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	conv := make([]conversationEntry, 0, len(res.Conversation))
	for _, m := range res.Conversation {
		conv = append(conv, conversationEntry{
			ID:        m.ID,
			Role:      m.Role,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	h.JSON(w, http.StatusOK, ConverseResponse{
		AssistantReply: res.Reply,
		Conversation:   conv,
	})
}

// ListSubmissions handles GET /submissions.
func (h *Handler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	limit := defaultSubmissionsLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			h.Error(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	subs, err := h.svc.Submissions(r.Context(), limit)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if subs == nil {
		subs = []pkg.Submission{}
	}
	h.JSON(w, http.StatusOK, SubmissionsResponse{Submissions: subs})
}

// Health handles GET /health with a database ping.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	status := "healthy"
	code := http.StatusOK
	if h.db != nil {
		if err := h.db.PingContext(ctx); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
	}
	h.JSON(w, code, map[string]string{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// writeServiceError maps the core error taxonomy to HTTP status codes.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	var vErr *core.ValidationError
	switch {
	case errors.As(err, &vErr):
		h.Error(w, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, core.ErrSubmissionNotFound):
		h.Error(w, http.StatusNotFound, "Submission not found")
	default:
		h.log.Error().Err(err).Msg("request failed")
		h.Error(w, http.StatusInternalServerError, err.Error())
	}
}

// JSON sends a JSON response with the given status code.
func (h *Handler) JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Error sends a JSON error response with the given status code.
func (h *Handler) Error(w http.ResponseWriter, status int, message string) {
	h.JSON(w, status, map[string]string{"error": message})
}
