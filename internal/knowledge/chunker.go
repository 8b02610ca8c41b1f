package knowledge

import "strings"

// Chunking constants, carried from the original ingestion pipeline.
const (
	DefaultChunkSize    = 700
	DefaultChunkOverlap = 150
)

// Chunk splits text into rune-bounded chunks of at most size runes with
// the given overlap between consecutive chunks. Paragraph breaks are
// preferred split points when one falls inside the window.
func Chunk(text string, size, overlap int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}

	runes := []rune(text)
	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + size
		if end >= len(runes) {
			end = len(runes)
		} else if cut := lastBreak(runes[start:end]); cut > overlap {
			end = start + cut
		}

		chunk := strings.TrimSpace(string(runes[start:end]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		if end == len(runes) {
			break
		}
		start = end - overlap
	}
	return chunks
}

// lastBreak returns the index just past the last paragraph break in the
// window, or 0 when there is none.
func lastBreak(window []rune) int {
	s := string(window)
	if idx := strings.LastIndex(s, "\n\n"); idx > 0 {
		return len([]rune(s[:idx]))
	}
	if idx := strings.LastIndex(s, "\n"); idx > 0 {
		return len([]rune(s[:idx]))
	}
	return 0
}
