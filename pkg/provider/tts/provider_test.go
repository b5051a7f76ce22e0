package tts_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/khoj-travel/copilot/pkg/provider/tts"
	"github.com/khoj-travel/copilot/pkg/provider/tts/mock"
)

// TestSpeak_PreservesOrder checks that concurrent synthesis returns audio in
// chunk order.
func TestSpeak_PreservesOrder(t *testing.T) {
	p := &mock.Provider{}
	text := "First sentence padding out to some length here. " +
		strings.Repeat("Second sentence with plenty of extra words inside it. ", 3) +
		"Final sentence closes the reply."

	audio, err := tts.Speak(context.Background(), p, text, "tara")
	if err != nil {
		t.Fatalf("Speak: %v", err)
	}

	chunks := tts.SplitText(text)
	if len(audio) != len(chunks) {
		t.Fatalf("expected %d audio parts, got %d", len(chunks), len(audio))
	}
	for i, chunk := range chunks {
		if string(audio[i]) != chunk {
			t.Errorf("part %d out of order: got %q, want %q", i, audio[i], chunk)
		}
	}
}

// TestSpeak_PropagatesError checks that a synthesis failure fails the whole
// call.
func TestSpeak_PropagatesError(t *testing.T) {
	p := &mock.Provider{Err: errors.New("synthesis down")}
	if _, err := tts.Speak(context.Background(), p, "Hello.", ""); err == nil {
		t.Fatal("expected error, got nil")
	}
}

// TestSpeak_PassesVoice checks the voice is forwarded to every chunk request.
func TestSpeak_PassesVoice(t *testing.T) {
	p := &mock.Provider{}
	if _, err := tts.Speak(context.Background(), p, "Hello there.", "leo"); err != nil {
		t.Fatalf("Speak: %v", err)
	}
	if len(p.Calls) == 0 {
		t.Fatal("no synthesize calls recorded")
	}
	for _, call := range p.Calls {
		if call.Voice != "leo" {
			t.Errorf("unexpected voice: %q", call.Voice)
		}
	}
}
