package agent

import "encoding/json"

// parseArgs decodes a tool call's argument string. Parse failure degrades to
// an empty argument object — per-tool validation then reports the missing
// fields — and null-valued fields are stripped, since the model emits null
// placeholders for parameters it chose to omit.
func parseArgs(raw string) map[string]any {
	args := make(map[string]any)
	if raw == "" {
		return args
	}
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return make(map[string]any)
	}
	for key, value := range args {
		if value == nil {
			delete(args, key)
		}
	}
	return args
}
