package events

import "github.com/atomicstack/minitwitter/internal/logging"

type UITracer struct{}

type FeedTracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Feed    = FeedTracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) Focus(target string) {
	logging.Trace("ui.focus", map[string]interface{}{"target": target})
}

func (UITracer) Cursor(cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"cursor": cursor})
}

func (UITracer) Confirm(prompt string, accepted bool) {
	logging.Trace("ui.confirm", map[string]interface{}{"prompt": prompt, "accepted": accepted})
}

func (UITracer) DeleteBlocked(id int64, owner string) {
	logging.Trace("ui.delete-blocked", map[string]interface{}{"id": id, "owner": owner})
}

func (FeedTracer) Render(filter string, rows, total, own int) {
	logging.Trace("feed.render", map[string]interface{}{
		"filter": filter,
		"rows":   rows,
		"total":  total,
		"own":    own,
	})
}

func (FeedTracer) Invalid(fields map[string]string) {
	logging.Trace("feed.invalid", map[string]interface{}{"fields": fields})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (FilterTracer) Cleared(reason string) {
	logging.Trace("filter.clear", map[string]interface{}{"reason": reason})
}

func (FilterTracer) WordBackspace(filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) CursorWord(pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) Append(filter string) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Backspace(filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, outcome string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "outcome": outcome})
}
