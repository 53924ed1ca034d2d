// Package events provides typed façades over the structured trace log so
// call sites stay one-liners.
package events

import "github.com/xXJSONDeruloXx/Allium/internal/logging"

type AppTracer struct{}

type UITracer struct{}

type InputTracer struct{}

type HandoffTracer struct{}

type RetroArchTracer struct{}

type HistoryTracer struct{}

var (
	App       = AppTracer{}
	UI        = UITracer{}
	Input     = InputTracer{}
	Handoff   = HandoffTracer{}
	RetroArch = RetroArchTracer{}
	History   = HistoryTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(reason string) {
	logging.Trace("app.exit", map[string]interface{}{"reason": reason})
}

func (UITracer) TabChange(from, to int) {
	logging.Trace("ui.tab-change", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) SearchOpen() {
	logging.Trace("ui.search-open", nil)
}

func (UITracer) SearchSubmit(query string) {
	logging.Trace("ui.search-submit", map[string]interface{}{"query": query})
}

func (UITracer) SearchClose() {
	logging.Trace("ui.search-close", nil)
}

func (UITracer) SwitcherOpen(games int) {
	logging.Trace("ui.switcher-open", map[string]interface{}{"games": games})
}

func (UITracer) Toast(text string) {
	logging.Trace("ui.toast", map[string]interface{}{"text": text})
}

func (InputTracer) Key(key string, kind string, consumed bool) {
	logging.Trace("input.key", map[string]interface{}{
		"key":      key,
		"kind":     kind,
		"consumed": consumed,
	})
}

func (HandoffTracer) Transition(from, to string) {
	logging.Trace("handoff.transition", map[string]interface{}{"from": from, "to": to})
}

func (HandoffTracer) Timeout(state, command string) {
	logging.Trace("handoff.timeout", map[string]interface{}{"state": state, "command": command})
}

func (HandoffTracer) Launch(name, command string) {
	logging.Trace("handoff.launch", map[string]interface{}{"name": name, "command": command})
}

func (RetroArchTracer) Send(command string) {
	logging.Trace("retroarch.send", map[string]interface{}{"command": command})
}

func (RetroArchTracer) Recv(command, reply string) {
	logging.Trace("retroarch.recv", map[string]interface{}{"command": command, "reply": reply})
}

func (RetroArchTracer) NoReply(command string) {
	logging.Trace("retroarch.no-reply", map[string]interface{}{"command": command})
}

func (HistoryTracer) Touch(path string) {
	logging.Trace("history.touch", map[string]interface{}{"path": path})
}

func (HistoryTracer) Evict(removed int) {
	logging.Trace("history.evict", map[string]interface{}{"removed": removed})
}
