package grapheme

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/uaxnav"
)

// A cursor carries the state of a single navigation call: the text, the
// current position and the boundary oracle to consult. Cursors never outlive
// the call they have been borrowed for.
type cursor struct {
	text   string
	pos    int
	oracle uaxnav.BoundaryOracle
}

// Cursors are short-lived objects. To avoid multiple allocation of
// small objects we will pool them.
type cursorPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalCursorPool *cursorPool

func init() {
	globalCursorPool = &cursorPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &cursor{}, nil
		})
	globalCursorPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalCursorPool.opool = pool.NewObjectPool(globalCursorPool.ctx, factory, config)
}

// borrowCursor returns a cursor positioned at pos within text.
// Clients must call release() when done.
func borrowCursor(text string, pos int, oracle uaxnav.BoundaryOracle) *cursor {
	o, err := globalCursorPool.opool.BorrowObject(globalCursorPool.ctx)
	if err != nil {
		T().Errorf("grapheme: cannot borrow cursor: %v", err)
		o = &cursor{}
	}
	c := o.(*cursor)
	c.text, c.pos, c.oracle = text, pos, oracle
	return c
}

// Clears the cursor and puts it back into the pool.
func (c *cursor) release() {
	c.text, c.pos, c.oracle = "", 0, nil
	_ = globalCursorPool.opool.ReturnObject(globalCursorPool.ctx, c)
}

// clusterStart moves the cursor to the start of the cluster containing its
// position. 0 and len(text) are always cluster starts. It asks the oracle
// at most twice.
func (c *cursor) clusterStart() int {
	if c.pos <= 0 {
		c.pos = 0
		return 0
	}
	if c.pos >= len(c.text) {
		c.pos = len(c.text)
		return c.pos
	}
	c.pos = resyncBackward(c.text, c.pos)
	if c.pos == 0 || c.oracle.IsBoundary(c.text, c.pos) {
		return c.pos
	}
	prev, ok := c.oracle.PrevBoundary(c.text, c.pos)
	if !ok {
		prev = 0
	}
	c.pos = prev
	return c.pos
}

// nextClusterStart moves the cursor to the start of the cluster following
// the one containing its position, or to len(text).
func (c *cursor) nextClusterStart() int {
	if c.pos >= len(c.text) {
		c.pos = len(c.text)
		return c.pos
	}
	c.pos = resyncBackward(c.text, c.pos)
	next, ok := c.oracle.NextBoundary(c.text, c.pos)
	if !ok {
		next = len(c.text)
	}
	c.pos = next
	return c.pos
}

// prevClusterStart moves the cursor to the largest boundary strictly before
// its position, after rounding the position up to a code-point start.
// If there is none, the cursor moves to 0.
func (c *cursor) prevClusterStart() int {
	if len(c.text) == 0 {
		c.pos = 0
		return 0
	}
	c.pos = resyncForward(c.text, c.pos)
	prev, ok := c.oracle.PrevBoundary(c.text, c.pos)
	if !ok {
		prev = 0
	}
	c.pos = prev
	return c.pos
}
