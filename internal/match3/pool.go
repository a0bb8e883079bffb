package match3

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// Pool owns every token instance for the lifetime of a session and hands out
// inactive ones with a type drawn from a fixed, ordered palette.
type Pool struct {
	palette int
	tokens  []*Token
	free    []*Token
	rng     *rand.Rand
	logger  *log.Logger
}

// NewPool creates a pool of capacity tokens over a palette of paletteSize
// types. A nil logger discards output.
func NewPool(paletteSize, capacity int, rng *rand.Rand, logger *log.Logger) (*Pool, error) {
	if paletteSize <= 0 {
		return nil, errors.New("match3: palette must have at least one type")
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("match3: invalid pool capacity %d", capacity)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	p := &Pool{
		palette: paletteSize,
		tokens:  make([]*Token, 0, capacity),
		free:    make([]*Token, 0, capacity),
		rng:     rng,
		logger:  logger,
	}
	for i := 0; i < capacity; i++ {
		t := newToken(i)
		p.tokens = append(p.tokens, t)
		p.free = append(p.free, t)
	}
	return p, nil
}

// PaletteSize returns the number of token types.
func (p *Pool) PaletteSize() int {
	return p.palette
}

// Size returns the total number of tokens owned by the pool.
func (p *Pool) Size() int {
	return len(p.tokens)
}

// Available returns the number of inactive tokens.
func (p *Pool) Available() int {
	return len(p.free)
}

// Get withdraws an inactive token, gives it a uniformly random type and
// returns it activated. The pool grows when every token is in use.
func (p *Pool) Get() *Token {
	var t *Token
	if n := len(p.free); n > 0 {
		t = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		t = newToken(len(p.tokens))
		p.tokens = append(p.tokens, t)
		p.logger.Warn("token pool exhausted, growing", "size", len(p.tokens))
	}

	t.typ = TokenType(p.rng.Intn(p.palette))
	t.active = true
	t.idle = true
	return t
}

// NextType advances t to the next palette type, wrapping around, and
// returns the new type.
func (p *Pool) NextType(t *Token) TokenType {
	t.typ = TokenType((int(t.typ) + 1) % p.palette)
	return t.typ
}

// Change sets t to a specific palette type.
func (p *Pool) Change(t *Token, typ TokenType) error {
	if typ < 0 || int(typ) >= p.palette {
		return fmt.Errorf("match3: change to %d: %w", typ, ErrUnknownType)
	}
	t.typ = typ
	return nil
}

// Return deactivates t and makes it available again.
// Returning an inactive token is a no-op.
func (p *Pool) Return(t *Token) {
	if t == nil || !t.active {
		return
	}
	t.active = false
	t.idle = true
	p.free = append(p.free, t)
}
