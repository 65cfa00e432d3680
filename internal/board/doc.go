// Package board holds the message board domain: the persisted message
// sequence and session identity (Store, Session), the render model every
// front-end draws from (Feed), and the Controller that validates user input
// before touching the Store.
//
// Persisted layout uses two keys in the backing kv.Store. MessagesKey holds a
// JSON array of Message values, newest first. IdentityKey holds the raw
// identity string. A missing, empty or undecodable messages value reads as an
// empty board.
package board
