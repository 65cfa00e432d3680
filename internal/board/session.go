package board

import "strings"

// Session is the identity of the local user. Ownership of new messages and
// delete permission are both decided against User().
type Session struct {
	user string
}

// NewSession returns a session for user, falling back to DefaultUser when the
// name is blank.
func NewSession(user string) *Session {
	s := &Session{}
	s.set(user)
	return s
}

func (s *Session) User() string {
	if s == nil || s.user == "" {
		return DefaultUser
	}
	return s.user
}

func (s *Session) set(user string) {
	user = strings.TrimSpace(user)
	if user == "" {
		user = DefaultUser
	}
	s.user = user
}
