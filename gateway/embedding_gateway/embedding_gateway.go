package embedding_gateway

import (
	"context"

	"stash/driver/embedding"
	"stash/utils/errors"
)

// EmbeddingGateway adapts the embedder driver and classifies its
// failures as external API errors so handlers map them to 502.
type EmbeddingGateway struct {
	embedder *embedding.OllamaEmbedder
}

func NewEmbeddingGateway(embedder *embedding.OllamaEmbedder) *EmbeddingGateway {
	return &EmbeddingGateway{embedder: embedder}
}

func (g *EmbeddingGateway) EmbedQuery(ctx context.Context, query string) ([]float32, error) {
	if g.embedder == nil {
		return nil, errors.ExternalAPIError("embedding service not available", nil, nil)
	}

	vec, err := g.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, errors.ExternalAPIError("error embedding search query", err, map[string]interface{}{
			"model": g.embedder.Version(),
		})
	}

	return vec, nil
}
