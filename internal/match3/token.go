// Package match3 implements the resolution engine of a tile-matching puzzle:
// the token grid, match detection, the swap/collapse/refill cascade and
// deadlock detection. It has no rendering or input code; a presentation layer
// drives it through a Mover and listens to its events.
package match3

import "fmt"

// TokenType indexes the palette a Pool draws from.
type TokenType int

// NoType marks an empty cell in type snapshots.
const NoType TokenType = -1

// Token is one matchable piece.
// Tokens are owned by the Pool while inactive and by a grid cell while placed.
type Token struct {
	id     int
	typ    TokenType
	pos    Coord
	idle   bool
	active bool
}

func newToken(id int) *Token {
	return &Token{
		id:   id,
		typ:  NoType,
		idle: true,
	}
}

// ID returns the token's pool-unique identifier.
func (t *Token) ID() int {
	return t.id
}

// Type returns the token's palette type.
func (t *Token) Type() TokenType {
	return t.typ
}

// Pos returns the grid coordinate the token was last placed at.
func (t *Token) Pos() Coord {
	return t.pos
}

// Idle reports whether the token is not in transit.
// Only idle tokens take part in match and move evaluation.
func (t *Token) Idle() bool {
	return t.idle
}

// Active reports whether the token is handed out by its pool.
func (t *Token) Active() bool {
	return t.active
}

// String returns a short description for logs.
func (t *Token) String() string {
	return fmt.Sprintf("token#%d[type=%d at %v]", t.id, t.typ, t.pos)
}
