package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/khoj-travel/copilot/internal/crm"
)

// Local tools operate on in-process demo data or emit action descriptors the
// client applies to its own state. They only fail on lookup misses.

func (r *Registry) clientPreferences(_ context.Context, args map[string]any) Result {
	client, err := crm.Lookup(stringArg(args, "client_name"))
	if err != nil {
		return Fail("%v", err)
	}
	return Ok(client)
}

func (r *Registry) addToItinerary(_ context.Context, args map[string]any) Result {
	status := stringArg(args, "status")
	if status == "" {
		status = "suggested"
	}
	return Ok(map[string]any{
		"action": "add_itinerary_item",
		"item": map[string]any{
			"id":      fmt.Sprintf("item-%d", r.now().UnixMilli()),
			"tripId":  stringArg(args, "trip_id"),
			"type":    stringArg(args, "product_type"),
			"name":    stringArg(args, "product_name"),
			"date":    stringArg(args, "date"),
			"endDate": stringArg(args, "end_date"),
			"price":   numberArg(args, "price"),
			"details": stringArg(args, "details"),
			"status":  status,
		},
	})
}

func (r *Registry) generateQuote(_ context.Context, args map[string]any) Result {
	markup := numberArg(args, "markup_percentage")
	if markup == 0 {
		markup = 15
	}
	return Ok(map[string]any{
		"action":           "generate_quote",
		"tripId":           stringArg(args, "trip_id"),
		"markupPercentage": markup,
		"generatedAt":      r.now().UTC().Format(time.RFC3339),
	})
}

func (r *Registry) suggestActivities(_ context.Context, args map[string]any) Result {
	return Ok(map[string]any{
		"action":      "suggest_activities",
		"destination": stringArg(args, "destination"),
		"dates":       stringArg(args, "dates"),
		"preferences": stringArg(args, "client_preferences"),
		"budget":      numberArg(args, "budget"),
		"note": "Use your knowledge to suggest relevant activities for this destination. " +
			"Include name, estimated price, duration, and why it matches the client.",
	})
}
