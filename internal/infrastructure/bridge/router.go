// Package bridge connects the built-in UI pages to the shell core.
//
// Pages post JSON requests through the "meikai" script-message handler and
// receive responses through window.__meikaiResolve. Notifications travel
// the other way as DOM CustomEvents.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/meikai/internal/logging"
)

const (
	// MessageHandlerName is the script-message handler pages post to.
	MessageHandlerName = "meikai"
	// ResolveCallback is the page function receiving responses.
	ResolveCallback = "__meikaiResolve"
)

// ErrUnknownCommand is returned for a request type with no handler.
var ErrUnknownCommand = errors.New("unknown command")

// Request is a page -> core message envelope.
type Request struct {
	Type      string          `json:"type"`
	RequestID string          `json:"requestId"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// Response is delivered to the page that sent the request.
type Response struct {
	OK     bool   `json:"ok"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Handler handles a decoded request payload.
type Handler interface {
	Handle(ctx context.Context, sender string, payload json.RawMessage) (any, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, sender string, payload json.RawMessage) (any, error)

// Handle calls f(ctx, sender, payload).
func (f HandlerFunc) Handle(ctx context.Context, sender string, payload json.RawMessage) (any, error) {
	return f(ctx, sender, payload)
}

// Router dispatches page requests to registered handlers and sends the
// response back to the sending surface.
type Router struct {
	sink    ScriptSink
	baseCtx context.Context

	mu       sync.RWMutex
	handlers map[string]Handler

	wg sync.WaitGroup
}

// NewRouter creates a router answering through sink.
func NewRouter(ctx context.Context, sink ScriptSink) *Router {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Router{
		sink:     sink,
		baseCtx:  logging.WithComponent(ctx, "bridge"),
		handlers: make(map[string]Handler),
	}
}

// RegisterHandler registers a handler for a request type.
func (r *Router) RegisterHandler(msgType string, handler Handler) error {
	if msgType == "" {
		return errors.New("message type cannot be empty")
	}
	if handler == nil {
		return errors.New("message handler cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[msgType] = handler
	return nil
}

// Types returns the registered request types.
func (r *Router) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.handlers))
	for t := range r.handlers {
		types = append(types, t)
	}
	return types
}

// HandleMessage decodes a raw message posted by sender and handles it on
// a separate goroutine. It returns immediately so the toolkit event loop
// is never blocked by a handler.
func (r *Router) HandleMessage(sender string, raw []byte) {
	log := logging.FromContext(r.baseCtx)

	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		log.Warn().Err(err).Str("sender", sender).Msg("failed to unmarshal script message")
		return
	}
	if req.Type == "" {
		log.Warn().Str("sender", sender).Msg("script message missing type")
		return
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		resp := r.Dispatch(r.baseCtx, sender, req)
		if req.RequestID == "" {
			return
		}
		if err := r.respond(sender, req.RequestID, resp); err != nil {
			log.Warn().Err(err).
				Str("sender", sender).
				Str("type", req.Type).
				Msg("failed to dispatch response")
		}
	}()
}

// Wait blocks until every in-flight request has been answered.
func (r *Router) Wait() {
	r.wg.Wait()
}

// Dispatch runs the handler for req and builds its response.
func (r *Router) Dispatch(ctx context.Context, sender string, req Request) Response {
	log := logging.FromContext(ctx)

	r.mu.RLock()
	handler, ok := r.handlers[req.Type]
	r.mu.RUnlock()
	if !ok {
		log.Warn().Str("type", req.Type).Msg("no handler registered for message type")
		return Response{Error: fmt.Sprintf("%s: %s", ErrUnknownCommand, req.Type)}
	}

	log.Debug().
		Str("type", req.Type).
		Str("sender", sender).
		Int("payload_len", len(req.Payload)).
		Msg("received script message")

	result, err := handler.Handle(ctx, sender, req.Payload)
	if err != nil {
		log.Error().Err(err).Str("type", req.Type).Msg("message handler returned error")
		return Response{Error: err.Error()}
	}
	return Response{OK: true, Result: result}
}

func (r *Router) respond(sender, requestID string, resp Response) error {
	if r.sink == nil {
		return errors.New("no script sink configured")
	}
	script, err := resolveScript(requestID, resp)
	if err != nil {
		return err
	}
	return r.sink.EvaluateScript(sender, script)
}
