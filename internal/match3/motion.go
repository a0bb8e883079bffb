package match3

import (
	"context"
	"sync"
)

// Motion is the completion handle of one animated token relocation.
// The token is not idle from StartMotion until Finish.
type Motion struct {
	token *Token
	done  chan struct{}
	once  sync.Once
}

// StartMotion marks t as in transit and returns its completion handle.
// Mover implementations call it when they begin animating a token.
func StartMotion(t *Token) *Motion {
	t.idle = false
	return &Motion{
		token: t,
		done:  make(chan struct{}),
	}
}

// Token returns the token being moved.
func (m *Motion) Token() *Token {
	return m.token
}

// Finish marks the motion complete and the token idle again.
// Calling it more than once is harmless.
func (m *Motion) Finish() {
	m.once.Do(func() {
		m.token.idle = true
		close(m.done)
	})
}

// Done returns a channel closed when the motion finishes.
func (m *Motion) Done() <-chan struct{} {
	return m.done
}

// Settled reports whether the motion has finished.
func (m *Motion) Settled() bool {
	select {
	case <-m.done:
		return true
	default:
		return false
	}
}

// Mover is the presentation collaborator that animates tokens between
// grid positions. Each call starts a motion and returns its handle; the
// engine does not look at a moved token again until the handle settles.
type Mover interface {
	// Move animates t from where it is drawn to the cell at to.
	Move(t *Token, to Coord) *Motion
	// Spawn brings a freshly placed token onto the board at to.
	Spawn(t *Token, to Coord) *Motion
	// Exit animates a resolved token off the board.
	Exit(t *Token) *Motion
}

// InstantMover completes every motion immediately. Used headless and in tests.
type InstantMover struct{}

// Move implements Mover.
func (InstantMover) Move(t *Token, _ Coord) *Motion {
	return finished(t)
}

// Spawn implements Mover.
func (InstantMover) Spawn(t *Token, _ Coord) *Motion {
	return finished(t)
}

// Exit implements Mover.
func (InstantMover) Exit(t *Token) *Motion {
	return finished(t)
}

func finished(t *Token) *Motion {
	m := StartMotion(t)
	m.Finish()
	return m
}

// motionGroup is the barrier a cascade phase waits on.
type motionGroup []*Motion

func (g *motionGroup) add(m *Motion) {
	if m != nil {
		*g = append(*g, m)
	}
}

func (g motionGroup) settled() bool {
	for _, m := range g {
		if !m.Settled() {
			return false
		}
	}
	return true
}

func (g *motionGroup) reset() {
	*g = nil
}

// wait blocks until every motion in the group has finished.
func (g motionGroup) wait(ctx context.Context) error {
	for _, m := range g {
		select {
		case <-m.Done():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
