package agent

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/khoj-travel/copilot/internal/agent/tools"
)

// digestLimit is how many entries of a high-volume result survive into the
// model-facing digest.
const digestLimit = 3

// alreadyDisplayed tells the model the full list is rendered natively by the
// client, so it must not repeat it. Without this the model regurgitates the
// table it was just fed.
const alreadyDisplayed = "The full list is already displayed to the user in the UI. " +
	"Do not repeat or tabulate it. Reference entries by name when recommending."

// summarize condenses a tool result into the tool-role message content fed
// back to the model. Failures and unstructured payloads pass through as raw
// JSON; the two high-volume result types (hotel lists, room lists) are cut to
// a top-3 digest plus the already-displayed instruction.
func summarize(toolName string, result tools.Result) string {
	if !result.Success || result.Data == nil {
		return encodeRaw(result)
	}

	switch toolName {
	case "search_hotels":
		data, ok := result.Data.(tools.SearchData)
		if !ok {
			return encodeRaw(result)
		}
		return summarizeHotels(data)
	case "get_room_options":
		data, ok := result.Data.(tools.RoomsData)
		if !ok {
			return encodeRaw(result)
		}
		return summarizeRooms(data)
	default:
		return encodeRaw(result)
	}
}

func summarizeHotels(data tools.SearchData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d hotels (%d shown). Top results:\n", data.TotalFound, data.Showing)

	top := data.Hotels
	if len(top) > digestLimit {
		top = top[:digestLimit]
	}
	for i, h := range top {
		fmt.Fprintf(&b, "%d. %s — %s %.2f/night, %d-star (bookingCode: %s)\n",
			i+1, h.Name, h.Price.Currency, h.Price.OfferedPrice, h.Stars, h.BookingCode)
	}
	b.WriteString(alreadyDisplayed)
	return b.String()
}

func summarizeRooms(data tools.RoomsData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d room options. Top results:\n", len(data.Rooms))

	top := data.Rooms
	if len(top) > digestLimit {
		top = top[:digestLimit]
	}
	for i, r := range top {
		refund := "non-refundable"
		if r.IsRefundable {
			refund = "refundable"
		}
		fmt.Fprintf(&b, "%d. %s — %s %.2f, %s (bookingCode: %s)\n",
			i+1, r.RoomType, r.Price.Currency, r.Price.OfferedPrice, refund, r.BookingCode)
	}
	b.WriteString(alreadyDisplayed)
	return b.String()
}

func encodeRaw(result tools.Result) string {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Sprintf(`{"success":false,"error":%q}`, err.Error())
	}
	return string(raw)
}
