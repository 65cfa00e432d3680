package board

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/atomicstack/minitwitter/internal/kv"
	"github.com/atomicstack/minitwitter/internal/logging"
	"github.com/atomicstack/minitwitter/internal/logging/events"
)

const (
	MessagesKey = "minitwitter_messages"
	IdentityKey = "minitwitter_current_user"

	DefaultUser = "Guest"

	// DefaultTimestampLayout renders CreatedAt as day.month.year, time.
	DefaultTimestampLayout = "02.01.2006, 15:04:05"
)

// Store owns the persisted message sequence and the identity value. Every
// mutation rewrites the full sequence.
type Store struct {
	kv      kv.Store
	now     func() time.Time
	layout  string
	corrupt func(error)

	mu     sync.Mutex
	lastID int64
}

type Option func(*Store)

// WithClock replaces time.Now for IDs and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithTimestampLayout sets the time layout used for CreatedAt.
func WithTimestampLayout(layout string) Option {
	return func(s *Store) {
		if layout != "" {
			s.layout = layout
		}
	}
}

// WithCorruptionHook is called whenever the persisted message payload cannot
// be decoded. The payload is still treated as an empty board.
func WithCorruptionHook(hook func(error)) Option {
	return func(s *Store) {
		s.corrupt = hook
	}
}

func NewStore(backing kv.Store, opts ...Option) *Store {
	s := &Store{
		kv:      backing,
		now:     time.Now,
		layout:  DefaultTimestampLayout,
		corrupt: reportCorruption,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ErrCorrupt wraps decode failures handed to the corruption hook.
var ErrCorrupt = errors.New("corrupt message payload")

func reportCorruption(err error) {
	logging.Error(err)
}

// ListMessages returns the persisted sequence, newest first.
func (s *Store) ListMessages() ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// AppendMessage records a new message at the head of the sequence. Callers
// validate author and text beforehand.
func (s *Store) AppendMessage(author, text, owner string) (Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages, err := s.load()
	if err != nil {
		return Message{}, err
	}
	now := s.now()
	msg := Message{
		ID:        s.nextID(now, messages),
		Author:    author,
		Text:      text,
		CreatedAt: now.Format(s.layout),
		Owner:     owner,
	}
	updated := make([]Message, 0, len(messages)+1)
	updated = append(updated, msg)
	updated = append(updated, messages...)
	if err := s.save(updated); err != nil {
		return Message{}, err
	}
	events.Store.Append(msg.ID, owner)
	return msg, nil
}

// DeleteMessage removes the message with id. Unknown ids are ignored.
func (s *Store) DeleteMessage(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages, err := s.load()
	if err != nil {
		return err
	}
	kept := lo.Reject(messages, func(m Message, _ int) bool { return m.ID == id })
	found := len(kept) != len(messages)
	events.Store.Delete(id, found)
	if !found {
		return nil
	}
	return s.save(kept)
}

// DeleteAllByOwner removes every message created under owner and reports how
// many were removed.
func (s *Store) DeleteAllByOwner(owner string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages, err := s.load()
	if err != nil {
		return 0, err
	}
	kept := lo.Reject(messages, func(m Message, _ int) bool { return m.OwnedBy(owner) })
	removed := len(messages) - len(kept)
	events.Store.DeleteOwner(owner, removed)
	if removed == 0 {
		return 0, nil
	}
	if err := s.save(kept); err != nil {
		return 0, err
	}
	return removed, nil
}

// CurrentUser returns the persisted identity, or DefaultUser when none is set.
func (s *Store) CurrentUser() (string, error) {
	raw, err := s.kv.Get(IdentityKey)
	if errors.Is(err, kv.ErrNotFound) {
		return DefaultUser, nil
	}
	if err != nil {
		return "", fmt.Errorf("read identity: %w", err)
	}
	if len(raw) == 0 {
		return DefaultUser, nil
	}
	return string(raw), nil
}

// SetCurrentUser persists the identity immediately.
func (s *Store) SetCurrentUser(name string) error {
	if err := s.kv.Set(IdentityKey, []byte(name)); err != nil {
		return fmt.Errorf("write identity: %w", err)
	}
	events.Store.SetUser(name)
	return nil
}

// LoadSession builds a Session from the persisted identity.
func (s *Store) LoadSession() (*Session, error) {
	user, err := s.CurrentUser()
	if err != nil {
		return nil, err
	}
	return NewSession(user), nil
}

func (s *Store) load() ([]Message, error) {
	raw, err := s.kv.Get(MessagesKey)
	if errors.Is(err, kv.ErrNotFound) {
		return []Message{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read messages: %w", err)
	}
	if len(raw) == 0 {
		return []Message{}, nil
	}
	var messages []Message
	if err := json.Unmarshal(raw, &messages); err != nil {
		events.Store.Corrupt(MessagesKey, len(raw), err)
		if s.corrupt != nil {
			s.corrupt(fmt.Errorf("%w under %s: %v", ErrCorrupt, MessagesKey, err))
		}
		return []Message{}, nil
	}
	return cloneMessages(messages), nil
}

func (s *Store) save(messages []Message) error {
	payload, err := json.Marshal(cloneMessages(messages))
	if err != nil {
		return fmt.Errorf("encode messages: %w", err)
	}
	if err := s.kv.Set(MessagesKey, payload); err != nil {
		return fmt.Errorf("write messages: %w", err)
	}
	return nil
}

// nextID uses the clock in milliseconds but never returns an id at or below
// one already persisted or issued, so ids stay unique and increasing when
// several messages land in the same millisecond.
func (s *Store) nextID(now time.Time, existing []Message) int64 {
	floor := s.lastID
	if len(existing) > 0 {
		highest := lo.MaxBy(existing, func(a, b Message) bool { return a.ID > b.ID })
		if highest.ID > floor {
			floor = highest.ID
		}
	}
	id := now.UnixMilli()
	if id <= floor {
		id = floor + 1
	}
	s.lastID = id
	return id
}
