package norm

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// workspace is the scratch []rune buffer normalizeRunes accumulates the
// decomposed form into before reordering and (if applicable) composing.
// Pooling it follows automata.go's Recognizer pool exactly: a simple
// factory, default config with unlimited total and no blocking on
// exhaustion, borrow before use, return (after truncating to zero
// length) when done.
type workspace struct {
	buf []rune
}

var (
	workspacePoolCtx = context.Background()
	workspacePool    *pool.ObjectPool
)

func init() {
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &workspace{buf: make([]rune, 0, 64)}, nil
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1
	config.BlockWhenExhausted = false
	workspacePool = pool.NewObjectPool(workspacePoolCtx, factory, config)
}

func borrowWorkspace() *workspace {
	o, err := workspacePool.BorrowObject(workspacePoolCtx)
	if err != nil {
		tracer().Debugf("norm: workspace pool exhausted, allocating directly: %v", err)
		return &workspace{buf: make([]rune, 0, 64)}
	}
	return o.(*workspace)
}

func releaseWorkspace(w *workspace) {
	w.buf = w.buf[:0]
	_ = workspacePool.ReturnObject(workspacePoolCtx, w)
}
