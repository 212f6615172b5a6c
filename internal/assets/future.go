package assets

import (
	"capsulewalk/internal/scene"
	"context"
)

// Future is the pending result of an asynchronous scene load.
type Future struct {
	id    string
	done  chan struct{}
	graph *scene.Graph
	err   error
}

// Go runs loader.Load(ctx, id) on a new goroutine.
func Go(ctx context.Context, loader Loader, id string) *Future {
	f := &Future{id: id, done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.graph, f.err = loader.Load(ctx, id)
	}()
	return f
}

// Resolved returns a future that is already complete.
func Resolved(id string, g *scene.Graph, err error) *Future {
	f := &Future{id: id, done: make(chan struct{}), graph: g, err: err}
	close(f.done)
	return f
}

func (f *Future) ID() string {
	return f.id
}

// Done is closed once the load has finished.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Ready reports completion without blocking.
func (f *Future) Ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Result must only be called after Ready reports true.
func (f *Future) Result() (*scene.Graph, error) {
	return f.graph, f.err
}

// Wait blocks until the load finishes or ctx is done.
func (f *Future) Wait(ctx context.Context) (*scene.Graph, error) {
	select {
	case <-f.done:
		return f.graph, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
