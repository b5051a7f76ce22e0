package agent

import (
	"strings"

	"github.com/khoj-travel/copilot/pkg/types"
)

// narrationPhrases is the fixed phrase table used when the model emits tool
// calls without any preceding text. The exact phrasing is part of the visible
// transcript, so it stays a hand-authored table rather than being derived
// from the tool descriptions.
var narrationPhrases = map[string]string{
	"search_hotels":             "Searching hotels...",
	"get_hotel_details":         "Loading hotel details...",
	"get_room_options":          "Checking room availability...",
	"check_cancellation_policy": "Checking cancellation policy...",
	"prebook_room":              "Securing your room...",
	"book_hotel":                "Completing booking...",
	"get_booking_status":        "Checking booking status...",
	"cancel_booking":            "Processing cancellation...",
	"get_client_preferences":    "Loading client preferences...",
	"add_to_itinerary":          "Adding to itinerary...",
	"generate_quote":            "Generating quote...",
	"suggest_activities":        "Finding activities...",
}

// narrationFallback covers a tool name outside the table. The registry is
// closed, so this only fires for hallucinated names — which still get a
// tool_start frame and therefore still need preceding text.
const narrationFallback = "Processing..."

// synthesizeNarrative builds a short deterministic description of the tool
// calls about to run, deduplicated and in call order.
func synthesizeNarrative(calls []types.ToolCall) string {
	var parts []string
	seen := make(map[string]bool, len(calls))
	for _, tc := range calls {
		if seen[tc.Name] {
			continue
		}
		seen[tc.Name] = true
		phrase, ok := narrationPhrases[tc.Name]
		if !ok {
			phrase = narrationFallback
		}
		parts = append(parts, phrase)
	}
	return strings.Join(parts, " ")
}
