package server

import (
	"encoding/json"
	"net/http"

	"github.com/khoj-travel/copilot/internal/agent"
	"github.com/khoj-travel/copilot/pkg/types"
)

// chatMessage is one prior conversation turn in a chat request.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the POST /api/chat request body.
type chatRequest struct {
	Messages          []chatMessage `json:"messages"`
	ClientName        string        `json:"clientName"`
	ClientPreferences string        `json:"clientPreferences"`
	TripID            string        `json:"tripId"`
	TripSummary       string        `json:"tripSummary"`
}

// handleChat runs one agent turn and streams its events as Server-Sent
// Events, one `data:` frame per event. The stream always ends with exactly
// one terminal frame (done or error). Closing the connection cancels the run
// via the request context.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Messages) == 0 {
		writeError(w, http.StatusBadRequest, "messages must not be empty")
		return
	}

	messages := make([]types.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case types.RoleUser, types.RoleAssistant:
		default:
			writeError(w, http.StatusBadRequest, "message role must be user or assistant, got "+m.Role)
			return
		}
		messages = append(messages, types.Message{Role: m.Role, Content: m.Content})
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	events := s.runner.Run(r.Context(), agent.RunOptions{
		Messages:          messages,
		ClientName:        req.ClientName,
		ClientPreferences: req.ClientPreferences,
		TripID:            req.TripID,
		TripSummary:       req.TripSummary,
	})

	for ev := range events {
		payload, err := json.Marshal(ev)
		if err != nil {
			// A frame that cannot be encoded must not silently vanish; the
			// client needs a terminal event to stop waiting.
			s.logger.Error("encode event", "err", err, "type", ev.Type)
			payload, _ = json.Marshal(agent.Event{
				Type:    agent.EventError,
				Content: "Stream error. Please try again.",
			})
		}
		if _, err := w.Write(append(append([]byte("data: "), payload...), '\n', '\n')); err != nil {
			// Client went away; the context cancellation unwinds the run.
			return
		}
		flusher.Flush()
	}
}
