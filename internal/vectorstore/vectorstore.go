// Package vectorstore holds the per-document in-memory vector index.
package vectorstore

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"github.com/philippgille/chromem-go"
	"github.com/rs/zerolog/log"

	"richbot/internal/models"
)

const collectionName = "profile_chunks"

// Index is a fully built nearest-neighbor index over one document version.
// It is immutable after BuildIndex returns; a new document means a new Index.
type Index struct {
	collection *chromem.Collection
	chunks     []string
}

// Result is one retrieved chunk with its similarity to the query.
type Result struct {
	Position   int
	Content    string
	Similarity float32
}

// BuildIndex embeds every chunk and indexes it in a fresh in-memory store.
// The caller swaps in the returned Index only on success, so a failed
// rebuild leaves any previous index usable.
func BuildIndex(ctx context.Context, chunks []string, embedFn chromem.EmbeddingFunc) (*Index, error) {
	if len(chunks) == 0 {
		return nil, models.ErrEmptyCorpus
	}

	db := chromem.NewDB()
	collection, err := db.CreateCollection(collectionName, nil, embedFn)
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	docs := make([]chromem.Document, len(chunks))
	for i, chunk := range chunks {
		docs[i] = chromem.Document{
			ID:       fmt.Sprintf("chunk-%d", i),
			Content:  chunk,
			Metadata: map[string]string{"position": fmt.Sprintf("%d", i)},
		}
	}
	if err := collection.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return nil, fmt.Errorf("index build: %w", err)
	}

	log.Info().Int("chunks", len(chunks)).Msg("vector index built")
	return &Index{collection: collection, chunks: chunks}, nil
}

// Search returns up to k chunks ordered by descending similarity to the
// query. Ties between equal scores keep the store's order, which is
// implementation-defined. k is clamped to the number of indexed chunks.
func (idx *Index) Search(ctx context.Context, query string, k int) ([]Result, error) {
	if k < 1 {
		k = 1
	}
	if k > len(idx.chunks) {
		k = len(idx.chunks)
	}

	results, err := idx.collection.Query(ctx, query, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrEmbedding, err)
	}

	out := make([]Result, 0, len(results))
	for _, r := range results {
		pos, _ := strconv.Atoi(r.Metadata["position"])
		out = append(out, Result{
			Position:   pos,
			Content:    r.Content,
			Similarity: r.Similarity,
		})
	}
	return out, nil
}

// Len reports the number of indexed chunks.
func (idx *Index) Len() int {
	return len(idx.chunks)
}
