package bridge

import (
	"context"

	"github.com/bnema/meikai/internal/application/port"
	"github.com/bnema/meikai/internal/domain/entity"
	"github.com/bnema/meikai/internal/logging"
)

// Broadcaster publishes notifications to every UI surface.
type Broadcaster struct {
	sink ScriptSink
}

var _ port.Notifier = (*Broadcaster)(nil)

// NewBroadcaster creates a notifier delivering through sink.
func NewBroadcaster(sink ScriptSink) *Broadcaster {
	return &Broadcaster{sink: sink}
}

// Notify dispatches n as a CustomEvent in each UI surface. Surfaces that
// fail to evaluate the script are skipped.
func (b *Broadcaster) Notify(ctx context.Context, n entity.Notification) {
	log := logging.FromContext(ctx)

	script, err := eventScript(n.Name(), n)
	if err != nil {
		log.Warn().Err(err).Str("event", n.Name()).Msg("failed to encode notification")
		return
	}

	delivered := 0
	for _, label := range b.sink.UISurfaces() {
		if err := b.sink.EvaluateScript(label, script); err != nil {
			log.Debug().Err(err).Str("label", label).Str("event", n.Name()).Msg("notification not delivered")
			continue
		}
		delivered++
	}

	log.Trace().Str("event", n.Name()).Int("surfaces", delivered).Msg("notification published")
}
