// Package async loads row resources, such as decoded thumbnails, off the
// layout goroutine.
//
// Loader adapted from Egon's https://github.com/egonelbre/expgio.
package async

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"gioui.org/layout"
)

// Tag identifies a unique resource. It must be hashable.
type Tag interface{}

// LoadFunc performs the blocking load. It should return promptly once ctx
// is cancelled.
type LoadFunc func(ctx context.Context) (interface{}, error)

// Resource is a snapshot of an asynchronously loaded value.
type Resource struct {
	// State reports the current state of the resource.
	State State
	// Value of the resource. Nil until loaded.
	Value interface{}
	// Err reports why the load failed, if it did.
	Err error
}

// State that an async Resource can be in.
type State byte

const (
	Queued State = iota
	Loading
	Loaded
	// Cancelled resources were abandoned before their load finished.
	Cancelled
)

// String converts a state into a printable representation.
func (s State) String() string {
	switch s {
	case Queued:
		return "queued"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown state"
	}
}

// Loader loads resources asynchronously.
//
// Poll a resource every frame with Schedule, wrap the layout in Frame so that
// resources which are no longer polled go stale, and invalidate the window
// whenever Updated fires. Cancel abandons a resource, for instance when the
// row displaying it scrolls off screen.
//
// The zero value is ready to use.
type Loader struct {
	// Scheduler runs loads. Defaults to a FixedWorkerPool of MaxLoaded
	// workers.
	Scheduler Scheduler
	// MaxLoaded is the number of resources kept before stale ones are
	// purged.
	MaxLoaded int
	// active frame being laid out. Access with atomics.
	active int64
	// finished is the last frame completely laid out. Access with atomics.
	finished int64
	// updated reports that some resource changed state.
	updated chan struct{}
	init    sync.Once
	// ctx is the parent of every load, cancelled by Close.
	ctx   context.Context
	close context.CancelFunc
	loader
}

// Scheduler runs work according to some strategy.
type Scheduler interface {
	// Schedule a piece of work. This method is allowed to block.
	Schedule(func())
}

// FixedWorkerPool runs work on a fixed number of long-lived goroutines.
type FixedWorkerPool struct {
	// Workers is the number of goroutines. Defaults to NumCPU.
	Workers int
	queue   chan func()
	sync.Once
}

// Schedule work on the pool, blocking while every worker is busy.
func (p *FixedWorkerPool) Schedule(work func()) {
	p.Once.Do(func() {
		p.queue = make(chan func())
		if p.Workers <= 0 {
			p.Workers = runtime.NumCPU()
		}
		for ii := 0; ii < p.Workers; ii++ {
			go func() {
				for w := range p.queue {
					if w != nil {
						w()
					}
				}
			}()
		}
	})
	p.queue <- work
}

// loader holds the state synchronized by mu.
type loader struct {
	mu sync.Mutex
	// refresh wakes the processing goroutine when there is work.
	refresh sync.Cond
	lookup  map[Tag]*resource
	queue   []*resource
}

// DefaultMaxLoaded is used when no max is specified.
const DefaultMaxLoaded = 10

func (l *Loader) initialize() {
	if l.MaxLoaded == 0 {
		l.MaxLoaded = DefaultMaxLoaded
	}
	l.updated = make(chan struct{}, 1)
	l.loader.lookup = make(map[Tag]*resource)
	l.loader.refresh.L = &l.loader.mu
	if l.Scheduler == nil {
		l.Scheduler = &FixedWorkerPool{Workers: l.MaxLoaded}
	}
	l.ctx, l.close = context.WithCancel(context.Background())
	go l.run(l.ctx)
}

// Updated returns a channel that fires when a resource changed state.
//
//	case <-loader.Updated():
//		w.Invalidate()
func (l *Loader) Updated() <-chan struct{} {
	l.init.Do(l.initialize)
	return l.updated
}

// Frame lays out w and counts the frame, so that resources not scheduled
// during it go stale.
func (l *Loader) Frame(gtx layout.Context, w layout.Widget) layout.Dimensions {
	l.init.Do(l.initialize)
	atomic.AddInt64(&l.active, 1)
	dims := w(gtx)
	atomic.StoreInt64(&l.finished, atomic.LoadInt64(&l.active))
	l.refresh.Signal()
	return dims
}

// Schedule returns the current snapshot of the resource identified by tag.
// The first call queues load, subsequent calls poll it.
func (l *Loader) Schedule(tag Tag, load LoadFunc) Resource {
	l.init.Do(l.initialize)
	return l.loader.establish(l.ctx, tag, load, atomic.LoadInt64(&l.active))
}

// Cancel abandons the resource identified by tag. An in-flight load sees its
// context cancelled. A later Schedule for the same tag loads it again.
func (l *Loader) Cancel(tag Tag) {
	l.init.Do(l.initialize)
	l.loader.mu.Lock()
	r, ok := l.loader.lookup[tag]
	if ok {
		l.loader.remove(r)
	}
	l.loader.mu.Unlock()
	if ok {
		r.abandon()
	}
}

// Close cancels every load and stops the processing goroutine.
func (l *Loader) Close() {
	l.init.Do(l.initialize)
	l.close()
	l.refresh.Signal()
}

// LoaderStats tracks some stats about the loader.
type LoaderStats struct {
	Lookup int
	Queued int
}

// Stats reports runtime data about this loader.
func (l *loader) Stats() LoaderStats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return LoaderStats{
		Lookup: len(l.lookup),
		Queued: len(l.queue),
	}
}

func (l *Loader) update() {
	select {
	case l.updated <- struct{}{}:
	default:
	}
}

// run processes the queue until ctx is done.
func (l *Loader) run(ctx context.Context) {
	go func() {
		<-ctx.Done()
		l.loader.mu.Lock()
		l.refresh.Broadcast()
		l.loader.mu.Unlock()
	}()

	loader := &l.loader
	loader.mu.Lock()
	defer loader.mu.Unlock()

	for first := true; ; first = false {
		if !first {
			// Woken by a new frame, a newly queued resource or Close.
			loader.refresh.Wait()
		}
		if ctx.Err() != nil {
			return
		}
		loader.purge(atomic.LoadInt64(&l.finished), l.MaxLoaded)
		for r := loader.next(); r != nil; r = loader.next() {
			r := r
			if l.isOld(r) {
				loader.remove(r)
				r.abandon()
				continue
			}
			loader.mu.Unlock()
			l.update()
			l.Scheduler.Schedule(func() {
				r.Load(func() { l.update() })
			})
			loader.mu.Lock()
		}
	}
}

// isOld reports whether the resource was last polled before the most
// recently finished frame.
func (l *Loader) isOld(r *resource) bool {
	return atomic.LoadInt64(&r.frame) < atomic.LoadInt64(&l.finished)
}

// establish the resource for tag, allocating and queueing it if needed.
func (l *loader) establish(parent context.Context, tag Tag, load LoadFunc, activeFrame int64) Resource {
	l.mu.Lock()
	r, ok := l.lookup[tag]
	if !ok {
		ctx, cancel := context.WithCancel(parent)
		r = &resource{
			tag:    tag,
			load:   load,
			ctx:    ctx,
			cancel: cancel,
			state:  Queued,
		}
		l.lookup[tag] = r
		l.queue = append(l.queue, r)
		l.refresh.Signal()
	}
	l.mu.Unlock()
	atomic.StoreInt64(&r.frame, activeFrame)
	return r.Get()
}

// next pops the queue. Only call with mu held.
func (l *loader) next() *resource {
	if len(l.queue) == 0 {
		return nil
	}
	r := l.queue[0]
	l.queue = l.queue[1:]
	return r
}

// purge drops stale resources once more than max are held. Only call with
// mu held.
func (l *loader) purge(activeFrame int64, max int) {
	for _, r := range l.lookup {
		if len(l.lookup) < max {
			break
		}
		if atomic.LoadInt64(&r.frame) < activeFrame {
			l.remove(r)
			r.abandon()
		}
	}
}

// remove the resource from the lookup and the queue. Only call with mu held.
func (l *loader) remove(r *resource) {
	delete(l.lookup, r.tag)
	for ii, queued := range l.queue {
		if queued == r {
			l.queue = append(l.queue[:ii], l.queue[ii+1:]...)
			break
		}
	}
}

// resource records data about a loading value. state, value and err are
// guarded by the mutex, frame is accessed with atomics and the rest is set
// once at allocation.
type resource struct {
	sync.Mutex
	frame  int64
	state  State
	value  interface{}
	err    error
	tag    Tag
	load   LoadFunc
	ctx    context.Context
	cancel context.CancelFunc
}

// Load the value, reporting every state change to onChange.
func (r *resource) Load(onChange func()) {
	if !r.transition(Loading, nil, nil) {
		return
	}
	onChange()
	v, err := r.load(r.ctx)
	if r.ctx.Err() != nil {
		return
	}
	r.transition(Loaded, v, err)
	onChange()
}

// abandon cancels the resource's context and marks it cancelled unless it
// already finished loading.
func (r *resource) abandon() {
	r.cancel()
	r.transition(Cancelled, nil, nil)
}

// transition moves the resource to state s unless it already reached a final
// state, reporting whether it did.
func (r *resource) transition(s State, v interface{}, err error) bool {
	r.Lock()
	defer r.Unlock()
	if r.state == Loaded || r.state == Cancelled {
		return false
	}
	r.state, r.value, r.err = s, v, err
	return true
}

// Get a snapshot of the resource.
func (r *resource) Get() Resource {
	r.Lock()
	defer r.Unlock()
	return Resource{State: r.state, Value: r.value, Err: r.err}
}
