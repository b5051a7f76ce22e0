package server

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/khoj-travel/copilot/pkg/provider/tts"
)

// maxAudioBytes caps the multipart upload size for transcription requests.
const maxAudioBytes = 25 << 20 // 25 MiB, the Groq audio API limit

// transcribeResponse is the POST /api/voice/transcribe response body.
type transcribeResponse struct {
	Text     string  `json:"text"`
	Language string  `json:"language,omitempty"`
	Duration float64 `json:"duration,omitempty"`
}

// handleTranscribe accepts a multipart form with an "audio" file part and
// returns its transcription.
func (s *Server) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	if s.stt == nil {
		writeError(w, http.StatusServiceUnavailable, "voice transcription is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAudioBytes)
	if err := r.ParseMultipartForm(maxAudioBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}
	file, header, err := r.FormFile("audio")
	if err != nil {
		writeError(w, http.StatusBadRequest, `missing "audio" file part`)
		return
	}
	defer file.Close()

	start := time.Now()
	tr, err := s.stt.Transcribe(r.Context(), file, header.Filename)
	if err != nil {
		s.metrics.RecordProviderError(r.Context(), "groq", "stt")
		s.logger.Error("transcription failed", "err", err, "filename", header.Filename)
		writeError(w, http.StatusBadGateway, "transcription failed: "+err.Error())
		return
	}
	s.metrics.STTDuration.Record(r.Context(), time.Since(start).Seconds())

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(transcribeResponse{
		Text:     tr.Text,
		Language: tr.Language,
		Duration: tr.Duration.Seconds(),
	})
}

// speakRequest is the POST /api/voice/speak request body.
type speakRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
}

// speakResponse carries the synthesised audio as ordered base64 WAV chunks.
// Long replies are synthesised in bounded chunks; clients play them back in
// order.
type speakResponse struct {
	ContentType string   `json:"contentType"`
	Chunks      []string `json:"chunks"`
}

// handleSpeak synthesises the given text and returns the audio chunks.
func (s *Server) handleSpeak(w http.ResponseWriter, r *http.Request) {
	if s.tts == nil {
		writeError(w, http.StatusServiceUnavailable, "voice synthesis is not configured")
		return
	}

	var req speakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text must not be empty")
		return
	}
	voice := req.Voice
	if voice == "" {
		voice = s.voice
	}

	start := time.Now()
	chunks, err := tts.Speak(r.Context(), s.tts, req.Text, voice)
	if err != nil {
		s.metrics.RecordProviderError(r.Context(), "groq", "tts")
		s.logger.Error("synthesis failed", "err", err, "voice", voice)
		writeError(w, http.StatusBadGateway, "synthesis failed: "+err.Error())
		return
	}
	s.metrics.TTSDuration.Record(r.Context(), time.Since(start).Seconds())

	resp := speakResponse{ContentType: "audio/wav", Chunks: make([]string, len(chunks))}
	for i, c := range chunks {
		resp.Chunks[i] = base64.StdEncoding.EncodeToString(c)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(resp)
}
