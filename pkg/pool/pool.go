package pool

import (
	"context"
	"runtime"
	"sync"

	"github.com/mockbind/mockbind/pkg/mockerr"
	"github.com/mockbind/mockbind/pkg/server"
	"golang.org/x/sync/semaphore"
)

// DefaultPoolSize is the default cap on concurrently live servers: 20 on
// macOS, 50 elsewhere, reflecting typical default file-descriptor limits
// per process on those platforms.
var DefaultPoolSize = defaultPoolSize()

func defaultPoolSize() int64 {
	if runtime.GOOS == "darwin" {
		return 20
	}
	return 50
}

// ServerPool is a bounded, recycled supply of Servers. The package keeps
// no global instance; each pool is constructed with New.
type ServerPool struct {
	sem  *semaphore.Weighted
	opts []server.ServerOption

	mu   sync.Mutex
	free []*server.Server
}

// New constructs a ServerPool with the given capacity. Servers it creates
// are configured with opts. A non-positive size falls back to
// DefaultPoolSize.
func New(size int64, opts ...server.ServerOption) *ServerPool {
	if size <= 0 {
		size = DefaultPoolSize
	}
	return &ServerPool{sem: semaphore.NewWeighted(size), opts: opts}
}

// Acquire blocks until a permit is available, then returns a ServerGuard
// wrapping either a recycled idle server or a freshly bound one on an
// ephemeral port.
func (p *ServerPool) Acquire(ctx context.Context) (*ServerGuard, error) {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return nil, mockerr.New(mockerr.ServerBusy, err)
	}

	srv := p.popFree()
	if srv == nil {
		var err error
		srv, err = server.New(p.opts...)
		if err != nil {
			p.sem.Release(1)
			return nil, err
		}
	}

	return &ServerGuard{pool: p, server: srv}, nil
}

func (p *ServerPool) popFree() *server.Server {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.free) == 0 {
		return nil
	}
	srv := p.free[0]
	p.free = p.free[1:]
	return srv
}

// recycle resets srv and pushes it to the back of the free list, then
// releases the permit. The permit is released last so the next waiter
// observes the recycled server already sitting in the free list.
func (p *ServerPool) recycle(srv *server.Server) {
	srv.Reset()
	p.mu.Lock()
	p.free = append(p.free, srv)
	p.mu.Unlock()
	p.sem.Release(1)
}

// ServerGuard is a scoped handle around a pooled Server. Close returns
// the server to the pool after resetting it; Go has no destructor, so
// callers must defer Close (or call it explicitly) where Rust-derived
// designs rely on Drop.
type ServerGuard struct {
	pool   *ServerPool
	server *server.Server

	mu       sync.Mutex
	recycled bool
}

// Server returns the underlying server the guard is holding.
func (g *ServerGuard) Server() *server.Server {
	return g.server
}

// Close returns the server to the pool. It is safe to call more than
// once; only the first call recycles the server.
func (g *ServerGuard) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.recycled {
		return
	}
	g.recycled = true
	g.pool.recycle(g.server)
}
