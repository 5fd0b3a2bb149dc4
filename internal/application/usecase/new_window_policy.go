package usecase

import (
	"context"

	"github.com/bnema/meikai/internal/application/port"
	"github.com/bnema/meikai/internal/domain/entity"
	"github.com/bnema/meikai/internal/domain/url"
	"github.com/bnema/meikai/internal/logging"
)

// PopupRequest is an outgoing new-window request from a content surface.
type PopupRequest struct {
	TargetURL   string
	ParentLabel string
	// Depth is the nesting level the new window would have.
	Depth int
}

// NewWindowPolicy decides outgoing new-window requests.
// Identity-provider targets keep their native pop-up so the opener
// relationship survives; everything else opens as a new window group.
type NewWindowPolicy struct {
	notifier port.Notifier
	settings SettingsFunc
}

// NewNewWindowPolicy creates a new-window policy.
func NewNewWindowPolicy(notifier port.Notifier, settings SettingsFunc) *NewWindowPolicy {
	return &NewWindowPolicy{
		notifier: notifier,
		settings: settings,
	}
}

// Decide classifies req and, when intercepting, creates the window through
// creator. Creation failures and depth overflow deny the native pop-up
// and are only logged.
func (p *NewWindowPolicy) Decide(ctx context.Context, creator WindowCreator, req PopupRequest) port.NewWindowResponse {
	log := logging.FromContext(ctx).With().
		Str("parent_label", req.ParentLabel).
		Str("target", req.TargetURL).
		Int("depth", req.Depth).
		Logger()

	if url.ClassifyPopup(req.TargetURL) == url.PopupPassThrough {
		log.Debug().
			Int("policy_version", url.IdentityProviderPolicyVersion).
			Msg("identity provider pop-up passed through")
		return port.NewWindowAllow
	}

	if limit := p.settings.get().MaxPopupDepth; limit > 0 && req.Depth > limit {
		log.Warn().Int("max_depth", limit).Msg("pop-up denied: nesting too deep")
		return port.NewWindowDeny
	}

	out, err := creator.Execute(ctx, CreateWindowInput{
		URL:         req.TargetURL,
		ParentLabel: req.ParentLabel,
		Depth:       req.Depth,
	})
	if err != nil {
		log.Warn().Err(err).Msg("pop-up denied: window creation failed")
		return port.NewWindowDeny
	}

	p.notifier.Notify(ctx, entity.NewWindowCreated{
		WindowLabel: out.ContentLabel,
		URL:         out.URL,
	})
	return port.NewWindowDeny
}
