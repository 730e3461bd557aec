package embedding_port

import "context"

type EmbeddingPort interface {
	EmbedQuery(ctx context.Context, query string) ([]float32, error)
}
