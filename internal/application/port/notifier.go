package port

import (
	"context"

	"github.com/bnema/meikai/internal/domain/entity"
)

// Notifier publishes fire-and-forget notifications to UI surfaces.
// Delivery failures are handled by the implementation and never reported.
type Notifier interface {
	Notify(ctx context.Context, n entity.Notification)
}
