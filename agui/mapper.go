package agui

import (
	"github.com/ag-ui-protocol/ag-ui/sdks/community/go/pkg/core/events"

	ai "github.com/y-lan/tinyagent"
	"github.com/y-lan/tinyagent/event"
)

// Mapper converts observer callbacks into AG-UI protocol events.
//
// The dispatcher surface has no explicit run boundaries, so the mapper
// tracks them: RUN_STARTED is emitted with the first activity of a chat
// call, and the finish callback closes the run with RUN_FINISHED and
// rotates the run ID for the next call. Streaming tokens are framed as
// an AG-UI Start-Content-End text message sequence.
//
// Not safe for concurrent use. Attach one mapper to one agent and run
// chats sequentially.
type Mapper struct {
	threadID string
	runID    string

	started   bool
	messageID string
}

// NewMapper creates a Mapper for a conversation thread. Empty IDs are
// generated.
func NewMapper(threadID, runID string) *Mapper {
	if threadID == "" {
		threadID = events.GenerateThreadID()
	}
	if runID == "" {
		runID = events.GenerateRunID()
	}
	return &Mapper{
		threadID: threadID,
		runID:    runID,
	}
}

// ThreadID returns the thread ID for this mapper.
func (m *Mapper) ThreadID() string {
	return m.threadID
}

// RunID returns the ID of the current run. A fresh ID is generated after
// each finished run.
func (m *Mapper) RunID() string {
	return m.runID
}

// Attach subscribes the mapper to a dispatcher, forwarding every mapped
// AG-UI event to sink in order.
func (m *Mapper) Attach(d *event.Dispatcher, sink func(events.Event)) {
	d.OnNewChatToken(func(token string) {
		emitAll(sink, m.MapToken(token))
	})
	d.OnToolCall(func(call ai.ToolCall) {
		emitAll(sink, m.MapToolCall(call))
	})
	d.OnFinishChat(func(resp *ai.Response) {
		emitAll(sink, m.MapFinish(resp))
	})
}

func emitAll(sink func(events.Event), evs []events.Event) {
	for _, ev := range evs {
		sink(ev)
	}
}

// RunStarted returns a RUN_STARTED event for the current run.
func (m *Mapper) RunStarted() events.Event {
	return events.NewRunStartedEvent(m.threadID, m.runID)
}

// RunFinished returns a RUN_FINISHED event for the current run.
func (m *Mapper) RunFinished() events.Event {
	return events.NewRunFinishedEvent(m.threadID, m.runID)
}

// RunError returns a RUN_ERROR event. Chat errors surface on the caller,
// not the dispatcher, so emit this from the call site:
//
//	if _, err := a.Chat(ctx, input); err != nil {
//	    sink(m.RunError(err))
//	}
func (m *Mapper) RunError(err error) events.Event {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return events.NewRunErrorEvent(msg)
}

// MapToken maps a streaming token. The first token of a run opens the
// run and a text message; every token carries content.
func (m *Mapper) MapToken(token string) []events.Event {
	var out []events.Event
	out = m.ensureStarted(out)

	if m.messageID == "" {
		m.messageID = events.GenerateMessageID()
		out = append(out, events.NewTextMessageStartEvent(
			m.messageID,
			events.WithRole(RoleAssistant),
		))
	}
	return append(out, events.NewTextMessageContentEvent(m.messageID, token))
}

// MapToolCall maps a tool invocation as a TOOL_CALL_START, TOOL_CALL_ARGS,
// TOOL_CALL_END sequence, closing any open text message first.
func (m *Mapper) MapToolCall(call ai.ToolCall) []events.Event {
	var out []events.Event
	out = m.ensureStarted(out)
	out = m.closeMessage(out)

	out = append(out, events.NewToolCallStartEvent(call.ID, call.Name))
	if call.Arguments != "" {
		out = append(out, events.NewToolCallArgsEvent(call.ID, call.Arguments))
	}
	return append(out, events.NewToolCallEndEvent(call.ID))
}

// ToolCallResult returns a TOOL_CALL_RESULT event. Execution results are
// not observable on the dispatcher, so this is for callers that run
// tools themselves.
func (m *Mapper) ToolCallResult(result ai.ToolResult) events.Event {
	return events.NewToolCallResultEvent(events.GenerateMessageID(), result.ToolCallID, result.Content)
}

// MapFinish maps a completed chat call: any open text message is closed,
// a non-streaming run gets its reply synthesized as a full text message
// sequence, and the run closes with RUN_FINISHED. The mapper then
// rotates its run ID so the next chat call maps to a fresh run.
func (m *Mapper) MapFinish(resp *ai.Response) []events.Event {
	var out []events.Event
	out = m.ensureStarted(out)

	if m.messageID != "" {
		out = m.closeMessage(out)
	} else if resp != nil && resp.Content != "" {
		id := events.GenerateMessageID()
		out = append(out,
			events.NewTextMessageStartEvent(id, events.WithRole(RoleAssistant)),
			events.NewTextMessageContentEvent(id, resp.Content),
			events.NewTextMessageEndEvent(id),
		)
	}

	out = append(out, events.NewRunFinishedEvent(m.threadID, m.runID))

	m.started = false
	m.runID = events.GenerateRunID()
	return out
}

func (m *Mapper) ensureStarted(out []events.Event) []events.Event {
	if m.started {
		return out
	}
	m.started = true
	return append(out, events.NewRunStartedEvent(m.threadID, m.runID))
}

func (m *Mapper) closeMessage(out []events.Event) []events.Event {
	if m.messageID == "" {
		return out
	}
	out = append(out, events.NewTextMessageEndEvent(m.messageID))
	m.messageID = ""
	return out
}
