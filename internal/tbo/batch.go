package tbo

// Search batching defaults. HotelSearch takes hotel codes, not a city, and
// caps the codes per request, so city-wide searches walk the code list in
// batches. Searches start past the head of the list because early codes in
// TBO's city lists frequently have no live availability.
const (
	BatchSize        = 300
	BatchStartOffset = 500
	MaxBatches       = 3
)

// BatchCodes slices codes into at most maxBatches batches of batchSize,
// starting at startOffset. An offset at or past the end of the list yields no
// batches; the final batch may be short.
func BatchCodes(codes []string, batchSize, startOffset, maxBatches int) [][]string {
	var batches [][]string
	offset := startOffset

	for i := 0; i < maxBatches && offset < len(codes); i++ {
		end := offset + batchSize
		if end > len(codes) {
			end = len(codes)
		}
		if end > offset {
			batches = append(batches, codes[offset:end])
		}
		offset += batchSize
	}
	return batches
}
