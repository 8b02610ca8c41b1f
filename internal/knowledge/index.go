// Package knowledge provides the FAQ passage index consumed by the
// knowledge-retrieval specialist.
package knowledge

import (
	"context"
	"fmt"
	"os"

	"github.com/blevesearch/bleve/v2"
	"go.uber.org/zap"
)

// passageDocument is the document structure indexed in bleve.
type passageDocument struct {
	Text string `json:"text"`
}

// Index is an in-memory full-text index over FAQ passages. Retrieval
// never raises: any failure collapses to an empty result list.
type Index struct {
	index  bleve.Index
	logger *zap.Logger
}

// NewIndex creates an empty in-memory passage index.
func NewIndex(logger *zap.Logger) (*Index, error) {
	mapping := bleve.NewIndexMapping()
	idx, err := bleve.NewMemOnly(mapping)
	if err != nil {
		return nil, fmt.Errorf("failed to create bleve index: %w", err)
	}
	return &Index{index: idx, logger: logger}, nil
}

// Add indexes one passage under the given id.
func (i *Index) Add(id, text string) error {
	if err := i.index.Index(id, passageDocument{Text: text}); err != nil {
		return fmt.Errorf("failed to index passage %s: %w", id, err)
	}
	return nil
}

// IngestFile chunks a plain-text FAQ file and indexes every chunk.
// A missing file is tolerated: the index stays empty and retrieval
// degrades to the specialist's fixed fallback.
func (i *Index) IngestFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			i.logger.Warn("faq file not found, index left empty", zap.String("path", path))
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read faq file: %w", err)
	}

	chunks := Chunk(string(data), DefaultChunkSize, DefaultChunkOverlap)
	for n, chunk := range chunks {
		if err := i.Add(fmt.Sprintf("faq-%d", n), chunk); err != nil {
			return n, err
		}
	}
	return len(chunks), nil
}

// Retrieve returns up to k passages most relevant to the query, best
// match first. Failures are logged and collapse to an empty slice.
func (i *Index) Retrieve(ctx context.Context, query string, k int) []string {
	if query == "" || k <= 0 {
		return nil
	}

	req := bleve.NewSearchRequest(bleve.NewMatchQuery(query))
	req.Size = k
	req.Fields = []string{"text"}

	res, err := i.index.SearchInContext(ctx, req)
	if err != nil {
		i.logger.Warn("faq retrieval failed", zap.Error(err))
		return nil
	}

	passages := make([]string, 0, len(res.Hits))
	for _, hit := range res.Hits {
		if text, ok := hit.Fields["text"].(string); ok && text != "" {
			passages = append(passages, text)
		}
	}
	return passages
}

// Close releases the underlying index.
func (i *Index) Close() error {
	return i.index.Close()
}
