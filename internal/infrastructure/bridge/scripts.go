package bridge

import (
	"encoding/json"
	"fmt"
)

//go:generate mockgen -source=scripts.go -destination=mocks/mock_script_sink.go -package=mocks

// ScriptSink evaluates JavaScript in UI surfaces.
type ScriptSink interface {
	// UISurfaces returns the labels of surfaces hosting built-in pages.
	UISurfaces() []string
	// EvaluateScript runs script in the surface labelled label.
	EvaluateScript(label, script string) error
}

// EventPrefix namespaces notification events in the page.
const EventPrefix = "meikai:"

// resolveScript builds the call delivering resp to the page.
func resolveScript(requestID string, resp Response) (string, error) {
	id, err := json.Marshal(requestID)
	if err != nil {
		return "", fmt.Errorf("marshal request id: %w", err)
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("marshal response: %w", err)
	}
	return fmt.Sprintf(
		`(function(){try{if(window.%[1]s){window.%[1]s(%[2]s,%[3]s);}`+
			`else{console.warn("meikai callback missing: %[1]s");}}`+
			`catch(e){console.error("meikai callback %[1]s failed", e);}})();`,
		ResolveCallback, id, data,
	), nil
}

// eventScript builds a CustomEvent dispatch for a notification.
func eventScript(name string, detail any) (string, error) {
	event, err := json.Marshal(EventPrefix + name)
	if err != nil {
		return "", fmt.Errorf("marshal event name: %w", err)
	}
	data, err := json.Marshal(detail)
	if err != nil {
		return "", fmt.Errorf("marshal event detail: %w", err)
	}
	return fmt.Sprintf(`window.dispatchEvent(new CustomEvent(%s,{detail:%s}));`, event, data), nil
}
