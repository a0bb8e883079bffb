package match3

import (
	"fmt"
	"strings"
)

// Orientation records how a match was assembled.
type Orientation uint8

const (
	OrientationNone Orientation = iota
	Horizontal
	Vertical
	Both
)

// String returns the string representation of an orientation.
func (o Orientation) String() string {
	switch o {
	case OrientationNone:
		return "none"
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Both:
		return "both"
	default:
		return "unknown"
	}
}

// merge combines the orientation of a tree with that of a merged branch.
func (o Orientation) merge(other Orientation) Orientation {
	switch {
	case o == OrientationNone:
		return other
	case other == OrientationNone || o == other:
		return o
	default:
		return Both
	}
}

// perpendicular returns the other axis. Only meaningful for
// Horizontal and Vertical.
func (o Orientation) perpendicular() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

// steps returns the backward and forward unit offsets along the axis.
func (o Orientation) steps() (back, fwd Coord) {
	if o == Horizontal {
		return C(-1, 0), C(1, 0)
	}
	return C(0, -1), C(0, 1)
}

// Match is a cluster of tokens resolved together.
//
// Members lists every physical token once. A token met again while
// extending a perpendicular branch is counted in Unlisted instead of being
// listed a second time, so Count may exceed len(Members).
//
// Resolved tokens go back to the pool and are reused, so a match records
// its type and positions when it is resolved. Type and Positions keep
// returning those values afterwards; Members then points at recycled tokens.
type Match struct {
	members     []*Token
	unlisted    int
	orientation Orientation

	frozen    bool
	typ       TokenType
	positions []Coord
}

func newMatch(seed *Token) *Match {
	m := &Match{members: make([]*Token, 0, 5)}
	if seed != nil {
		m.members = append(m.members, seed)
	}
	return m
}

// Members returns the listed tokens. The slice must not be modified.
func (m *Match) Members() []*Token {
	return m.members
}

// Count returns listed members plus shared, unlisted ones.
func (m *Match) Count() int {
	return len(m.members) + m.unlisted
}

// Unlisted returns the number of shared tokens counted but not listed.
func (m *Match) Unlisted() int {
	return m.unlisted
}

// Orientation returns how the match was assembled.
func (m *Match) Orientation() Orientation {
	return m.orientation
}

// Type returns the type of the first member, or NoType for an empty match.
// Board-wide matches mix types.
func (m *Match) Type() TokenType {
	if m.frozen {
		return m.typ
	}
	if len(m.members) == 0 {
		return NoType
	}
	return m.members[0].typ
}

// Contains reports whether t is a listed member.
func (m *Match) Contains(t *Token) bool {
	for _, member := range m.members {
		if member == t {
			return true
		}
	}
	return false
}

// Positions returns the coordinates of the listed members.
func (m *Match) Positions() []Coord {
	if m.frozen {
		return append([]Coord(nil), m.positions...)
	}
	positions := make([]Coord, len(m.members))
	for i, t := range m.members {
		positions[i] = t.pos
	}
	return positions
}

// freeze records the current type and positions of the members.
func (m *Match) freeze() {
	if m.frozen {
		return
	}
	m.typ = m.Type()
	m.positions = m.Positions()
	m.frozen = true
}

func (m *Match) add(t *Token) {
	m.members = append(m.members, t)
}

func (m *Match) addUnlisted() {
	m.unlisted++
}

// merge folds a branch into the tree.
func (m *Match) merge(branch *Match) {
	m.members = append(m.members, branch.members...)
	m.unlisted += branch.unlisted
	m.orientation = m.orientation.merge(branch.orientation)
}

// overlaps reports whether the two matches list a common token.
func (m *Match) overlaps(other *Match) bool {
	for _, t := range other.members {
		if m.Contains(t) {
			return true
		}
	}
	return false
}

// String returns a description of the match for logs.
func (m *Match) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s match of type %d x%d:", m.orientation, m.Type(), m.Count())
	for _, pos := range m.Positions() {
		sb.WriteString(" ")
		sb.WriteString(pos.String())
	}
	return sb.String()
}
