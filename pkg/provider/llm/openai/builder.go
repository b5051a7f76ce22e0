package openai

import "github.com/khoj-travel/copilot/pkg/types"

// toolCallBuilder assembles streamed tool-call fragments into complete calls.
//
// The provider delivers tool calls as partial fragments addressed by a numeric
// call index. The builder keeps one accumulating record per index in first-seen
// order: argument fragments are concatenated in arrival order (never reordered,
// never deduplicated) and a later fragment's non-empty id/name overwrites the
// placeholder. At flush time records are returned in ascending index order,
// which an unordered map would not guarantee.
type toolCallBuilder struct {
	entries []builderEntry
	byIndex map[int]int // call index → position in entries
}

type builderEntry struct {
	index int
	call  types.ToolCall
}

// add merges one streamed fragment into the record for the given call index.
func (b *toolCallBuilder) add(index int, id, name, args string) {
	if b.byIndex == nil {
		b.byIndex = make(map[int]int)
	}
	pos, ok := b.byIndex[index]
	if !ok {
		pos = len(b.entries)
		b.entries = append(b.entries, builderEntry{index: index})
		b.byIndex[index] = pos
	}
	e := &b.entries[pos]
	if id != "" {
		e.call.ID = id
	}
	if name != "" {
		e.call.Name = name
	}
	e.call.Arguments += args
}

// len returns the number of accumulated records.
func (b *toolCallBuilder) len() int {
	return len(b.entries)
}

// flush returns the accumulated calls in ascending index order. When
// completeOnly is true, records still missing an id or name are skipped — used
// for the "stop with pending records" path where a backend reported a normal
// stop even though calls exist, and half-assembled fragments must not leak.
func (b *toolCallBuilder) flush(completeOnly bool) []types.ToolCall {
	if len(b.entries) == 0 {
		return nil
	}
	sorted := make([]builderEntry, len(b.entries))
	copy(sorted, b.entries)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].index < sorted[j-1].index; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	out := make([]types.ToolCall, 0, len(sorted))
	for _, e := range sorted {
		if completeOnly && (e.call.ID == "" || e.call.Name == "") {
			continue
		}
		out = append(out, e.call)
	}
	return out
}
