// Package event provides synchronous observer dispatch for chat activity.
//
// A Dispatcher holds three typed observer lists: streaming text tokens,
// tool invocations, and completed chat rounds. Handlers run synchronously
// on the emitting goroutine in subscription order, so an emit returns
// only after every handler has returned. Handlers must not re-enter the
// agent that is emitting.
package event

import (
	"sync"

	ai "github.com/y-lan/tinyagent"
)

// TokenHandler receives streaming text deltas as they arrive.
type TokenHandler func(token string)

// ToolCallHandler receives a tool invocation before it executes.
type ToolCallHandler func(call ai.ToolCall)

// FinishHandler receives the completed response for a chat round.
type FinishHandler func(resp *ai.Response)

// Dispatcher maintains typed observer lists and invokes them synchronously.
// It is safe for concurrent use.
type Dispatcher struct {
	mu       sync.RWMutex
	tokens   []TokenHandler
	calls    []ToolCallHandler
	finishes []FinishHandler
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// OnNewChatToken subscribes a handler for streaming text tokens.
func (d *Dispatcher) OnNewChatToken(h TokenHandler) {
	if h == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tokens = append(d.tokens, h)
}

// OnToolCall subscribes a handler for tool invocations.
func (d *Dispatcher) OnToolCall(h ToolCallHandler) {
	if h == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, h)
}

// OnFinishChat subscribes a handler for completed chat rounds.
func (d *Dispatcher) OnFinishChat(h FinishHandler) {
	if h == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.finishes = append(d.finishes, h)
}

// EmitToken invokes all token handlers in subscription order.
func (d *Dispatcher) EmitToken(token string) {
	d.mu.RLock()
	handlers := make([]TokenHandler, len(d.tokens))
	copy(handlers, d.tokens)
	d.mu.RUnlock()

	for _, h := range handlers {
		h(token)
	}
}

// EmitToolCall invokes all tool call handlers in subscription order.
func (d *Dispatcher) EmitToolCall(call ai.ToolCall) {
	d.mu.RLock()
	handlers := make([]ToolCallHandler, len(d.calls))
	copy(handlers, d.calls)
	d.mu.RUnlock()

	for _, h := range handlers {
		h(call)
	}
}

// EmitFinishChat invokes all finish handlers in subscription order.
func (d *Dispatcher) EmitFinishChat(resp *ai.Response) {
	d.mu.RLock()
	handlers := make([]FinishHandler, len(d.finishes))
	copy(handlers, d.finishes)
	d.mu.RUnlock()

	for _, h := range handlers {
		h(resp)
	}
}

// TokenHandlerCount returns the number of subscribed token handlers.
func (d *Dispatcher) TokenHandlerCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.tokens)
}

// ToolCallHandlerCount returns the number of subscribed tool call handlers.
func (d *Dispatcher) ToolCallHandlerCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.calls)
}

// FinishHandlerCount returns the number of subscribed finish handlers.
func (d *Dispatcher) FinishHandlerCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.finishes)
}
