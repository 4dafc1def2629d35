package contract

import (
	"context"
	"time"
)

type ActivityLogRepository interface {
	Append(ctx context.Context, eventType string, payload []byte, occurredAt time.Time) error
}
