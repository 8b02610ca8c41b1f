package knowledge

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := NewIndex(zap.NewNop())
	assert.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })
	return idx
}

func TestRetrieveRanksRelevantPassages(t *testing.T) {
	ctx := context.Background()
	idx := newTestIndex(t)

	assert.NoError(t, idx.Add("p1", "O aplicativo calcula sua pegada de carbono mensalmente."))
	assert.NoError(t, idx.Add("p2", "Para redefinir sua senha, acesse as configurações."))
	assert.NoError(t, idx.Add("p3", "A pegada de carbono considera transporte e energia."))

	passages := idx.Retrieve(ctx, "pegada de carbono", 2)
	assert.Len(t, passages, 2)
	for _, p := range passages {
		assert.Contains(t, p, "carbono")
	}
}

func TestRetrieveEmptyIndex(t *testing.T) {
	idx := newTestIndex(t)
	assert.Empty(t, idx.Retrieve(context.Background(), "qualquer coisa", 6))
}

func TestRetrieveNeverErrors(t *testing.T) {
	idx := newTestIndex(t)
	assert.Nil(t, idx.Retrieve(context.Background(), "", 6))
	assert.Nil(t, idx.Retrieve(context.Background(), "pergunta", 0))
}

func TestIngestFile(t *testing.T) {
	idx := newTestIndex(t)

	path := filepath.Join(t.TempDir(), "faq.txt")
	content := "Como funciona o formulário?\nResponda mensalmente.\n\nO que é CO2?\nUm gás de efeito estufa."
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	n, err := idx.IngestFile(path)
	assert.NoError(t, err)
	assert.Equal(t, 1, n) // short file fits a single chunk

	passages := idx.Retrieve(context.Background(), "formulário", 6)
	assert.NotEmpty(t, passages)
}

func TestIngestMissingFile(t *testing.T) {
	idx := newTestIndex(t)
	n, err := idx.IngestFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.NoError(t, err)
	assert.Zero(t, n)
}

func TestChunkOverlap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 40; i++ {
		b.WriteString("Linha sobre sustentabilidade e emissões de carbono numero tal.\n")
	}

	chunks := Chunk(b.String(), 700, 150)
	assert.Greater(t, len(chunks), 1)
	for _, c := range chunks {
		assert.LessOrEqual(t, len([]rune(c)), 700)
	}
}

func TestChunkEmpty(t *testing.T) {
	assert.Nil(t, Chunk("   \n ", 700, 150))
}
