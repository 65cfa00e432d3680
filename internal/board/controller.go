package board

import (
	"errors"
	"strings"

	"github.com/atomicstack/minitwitter/internal/logging/events"
)

// Controller turns user intents into Store calls on behalf of one Session.
// Front-ends call Render after every intent to redraw from scratch.
type Controller struct {
	store   *Store
	session *Session
}

func NewController(store *Store, session *Session) *Controller {
	if session == nil {
		session = NewSession(DefaultUser)
	}
	return &Controller{store: store, session: session}
}

func (c *Controller) Session() *Session { return c.session }

// Render loads the board and applies filter for the current session.
func (c *Controller) Render(filter string) (Feed, error) {
	messages, err := c.store.ListMessages()
	if err != nil {
		return Feed{Filter: filter, User: c.session.User()}, err
	}
	feed := BuildFeed(messages, filter, c.session.User())
	events.Feed.Render(filter, len(feed.Rows), feed.Total, feed.Own)
	return feed, nil
}

// Submit validates and posts a message owned by the current session. A
// *ValidationError means nothing was written.
func (c *Controller) Submit(author, text string) (Message, error) {
	author = strings.TrimSpace(author)
	text = strings.TrimSpace(text)
	if err := ValidateSubmission(author, text); err != nil {
		noteInvalid(err)
		return Message{}, err
	}
	return c.store.AppendMessage(author, text, c.session.User())
}

// Delete removes one message. The UI only offers this for own rows.
func (c *Controller) Delete(id int64) error {
	return c.store.DeleteMessage(id)
}

// ClearOwn removes every message owned by the current session. Callers ask
// the user for confirmation first.
func (c *Controller) ClearOwn() (int, error) {
	return c.store.DeleteAllByOwner(c.session.User())
}

// ChangeIdentity switches the session to name. Existing messages keep their
// owner; only the comparison against them changes.
func (c *Controller) ChangeIdentity(name string) error {
	name = strings.TrimSpace(name)
	if err := ValidateIdentity(name); err != nil {
		noteInvalid(err)
		return err
	}
	if err := c.store.SetCurrentUser(name); err != nil {
		return err
	}
	previous := c.session.User()
	c.session.set(name)
	events.Identity.Change(previous, name)
	return nil
}

func noteInvalid(err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		events.Feed.Invalid(verr.Fields)
	}
}
