package open_count_port

import (
	"context"

	"github.com/google/uuid"
)

type OpenCountPort interface {
	CountOpens(ctx context.Context, userID uuid.UUID, bookmarkIDs []string) (map[string]int64, error)
}
