package model

import "sync"

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles grids between simulation restarts
type GridPool struct {
	pool sync.Pool
	opts []Option
}

// NewGridPool creates a pool whose grids are configured with opts
func NewGridPool(opts ...Option) *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() any {
				return &Grid{workers: 1}
			},
		},
		opts: opts,
	}
}

// Get retrieves a cleared grid from the pool, resized to the given dimensions
func (p *GridPool) Get(width, height int) (*Grid, error) {
	g := p.pool.Get().(*Grid)
	if err := g.Reset(width, height); err != nil {
		p.pool.Put(g)
		return nil, err
	}
	for _, opt := range p.opts {
		opt(g)
	}
	return g, nil
}

// Put returns a grid to the pool, clearing its state
func (p *GridPool) Put(g *Grid) {
	g.Clear()
	p.pool.Put(g)
}
