// Package agui streams agent activity as AG-UI protocol events.
//
// AG-UI (Agent-User Interface) is an open, event-based protocol that
// standardizes how agents connect to user-facing applications. This
// package maps the observer callbacks (tokens, tool calls, chat
// completion) onto AG-UI's event vocabulary so any AG-UI-compatible
// frontend can render a conversation live.
//
// The package does not provide HTTP handlers or transports. Serve the
// mapped events with the AG-UI SDK's SSE writer or a transport of your
// choosing.
//
// # Usage
//
// Attach a Mapper to an agent's dispatcher and forward the mapped events
// to your transport:
//
//	m := agui.NewMapper(threadID, "")
//	m.Attach(a.Dispatcher(), func(ev events.Event) {
//	    writer.WriteEvent(ctx, w, ev)
//	})
//
//	if _, err := a.Chat(ctx, input); err != nil {
//	    writer.WriteEvent(ctx, w, m.RunError(err))
//	}
//
// Each Chat call becomes one AG-UI run: RUN_STARTED fires with the first
// observed activity, streaming tokens become a TEXT_MESSAGE_START /
// TEXT_MESSAGE_CONTENT / TEXT_MESSAGE_END sequence, tool invocations
// become TOOL_CALL_* sequences, and the finish callback closes the run
// with RUN_FINISHED. Non-streaming runs still produce a complete text
// message sequence, synthesized from the final response.
//
// # Message Conversion
//
// [FromAGUIMessages] converts AG-UI conversation state into canonical
// messages for agent input; [ToAGUIMessages] converts history back, for
// example into a MESSAGES_SNAPSHOT event:
//
//	snapshot := events.NewMessagesSnapshotEvent(agui.ToAGUIMessages(history))
//
// # Thread Safety
//
// The Mapper is not safe for concurrent use. Attach one mapper to one
// agent and run chats sequentially; conversion functions are stateless
// and safe for concurrent use.
package agui
