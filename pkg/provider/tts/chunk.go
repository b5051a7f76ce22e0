package tts

import (
	"regexp"
	"strings"
)

// MaxChunkLength is the maximum length of a single synthesis chunk. The
// Orpheus endpoint rejects inputs over 200 characters; 195 leaves headroom.
const MaxChunkLength = 195

// sentencePattern matches one sentence including its terminator and any
// trailing whitespace.
var sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]+\s*`)

// SplitText splits text into chunks no longer than [MaxChunkLength],
// preferring sentence boundaries and falling back to word boundaries for
// sentences that are themselves over the limit. Text at or under the limit is
// returned as a single unsplit chunk.
func SplitText(text string) []string {
	if len(text) <= MaxChunkLength {
		return []string{text}
	}

	sentences := splitSentences(text)
	var chunks []string
	var current string

	for _, sentence := range sentences {
		if len(current)+len(sentence) > MaxChunkLength {
			if strings.TrimSpace(current) != "" {
				chunks = append(chunks, strings.TrimSpace(current))
			}
			if len(sentence) > MaxChunkLength {
				chunks, current = splitWords(chunks, sentence)
			} else {
				current = sentence
			}
		} else {
			current += sentence
		}
	}

	if strings.TrimSpace(current) != "" {
		chunks = append(chunks, strings.TrimSpace(current))
	}
	return chunks
}

// splitSentences returns text as sentence units, with any trailing
// unterminated fragment preserved as a final unit.
func splitSentences(text string) []string {
	locs := sentencePattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []string{text}
	}
	var out []string
	end := 0
	for _, loc := range locs {
		out = append(out, text[loc[0]:loc[1]])
		end = loc[1]
	}
	if end < len(text) {
		out = append(out, text[end:])
	}
	return out
}

// splitWords breaks an over-long sentence at word boundaries, appending full
// chunks to chunks and returning the still-accumulating remainder.
func splitWords(chunks []string, sentence string) ([]string, string) {
	var current string
	for _, word := range strings.Split(sentence, " ") {
		if len(current)+len(word)+1 > MaxChunkLength {
			if strings.TrimSpace(current) != "" {
				chunks = append(chunks, strings.TrimSpace(current))
			}
			current = word + " "
		} else {
			current += word + " "
		}
	}
	return chunks, current
}
