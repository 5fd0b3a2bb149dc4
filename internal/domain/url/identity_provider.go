package url

import "strings"

// IdentityProviderPolicyVersion identifies the pattern table below.
// Bump it whenever identityProviderPatterns changes.
const IdentityProviderPolicyVersion = 1

// identityProviderPatterns are substrings marking a sign-in flow.
// The list is deliberately broad: a false positive only opens an ordinary
// link as a native pop-up.
var identityProviderPatterns = []string{
	// Known providers
	"accounts.google.com",
	"login.microsoftonline.com",
	"appleid.apple.com",
	"github.com/login/oauth",
	"facebook.com/login",
	"facebook.com/v",
	"twitter.com/oauth",
	"api.twitter.com",
	// Generic flow fragments
	"oauth",
	"authorize",
	"signin",
	"auth/",
}

// IdentityProviderPatterns returns a copy of the active pattern table.
func IdentityProviderPatterns() []string {
	out := make([]string, len(identityProviderPatterns))
	copy(out, identityProviderPatterns)
	return out
}

// IsIdentityProviderURL reports whether target looks like a third-party
// sign-in URL. Matching is case-insensitive.
func IsIdentityProviderURL(target string) bool {
	if target == "" {
		return false
	}
	lower := strings.ToLower(target)
	for _, p := range identityProviderPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// PopupDisposition is the decision for an outgoing new-window request.
type PopupDisposition int

const (
	// PopupIntercept opens the target as a new window group.
	PopupIntercept PopupDisposition = iota
	// PopupPassThrough lets the native surface open its own pop-up so the
	// opener relationship survives.
	PopupPassThrough
)

// String returns a human-readable representation of the disposition.
func (d PopupDisposition) String() string {
	switch d {
	case PopupPassThrough:
		return "pass-through"
	default:
		return "intercept"
	}
}

// ClassifyPopup is the pure classification step of the new-window policy.
func ClassifyPopup(target string) PopupDisposition {
	if IsIdentityProviderURL(target) {
		return PopupPassThrough
	}
	return PopupIntercept
}
