package events

import "github.com/atomicstack/minitwitter/internal/logging"

type IdentityTracer struct{}

type identityReason string

const (
	IdentityReasonEscape  identityReason = "escape"
	IdentityReasonOutside identityReason = "outside-click"
)

var Identity = IdentityTracer{}

func (IdentityTracer) Prompt(current string) {
	logging.Trace("identity.prompt", map[string]interface{}{"current": current})
}

func (IdentityTracer) Submit(name string) {
	logging.Trace("identity.submit", map[string]interface{}{"name": name})
}

func (IdentityTracer) Change(from, to string) {
	logging.Trace("identity.change", map[string]interface{}{"from": from, "to": to})
}

func (IdentityTracer) Cancel(reason identityReason) {
	logging.Trace("identity.cancel", map[string]interface{}{"reason": string(reason)})
}
