package lesson

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/akito/kotoba/internal/llm"
)

// RunState is the generation state machine position.
type RunState string

const (
	StateNotStarted     RunState = "not_started"
	StateStage1Running  RunState = "stage1_running"
	StateStage1Failed   RunState = "stage1_failed"
	StateStage2Running  RunState = "stage2_running"
	StateStage2Degraded RunState = "stage2_degraded"
	StateStage2Complete RunState = "stage2_complete"
	StateMerged         RunState = "merged"
)

// EventType classifies progress events.
type EventType string

const (
	// EventState signals a state machine transition.
	EventState EventType = "state"
	// EventItemFailed signals one enhancement item gave up.
	EventItemFailed EventType = "item_failed"
	// EventFallback signals the stage-2 switch to the fallback provider.
	EventFallback EventType = "fallback"
)

// Event is one progress notification from an in-flight run. RunID ties
// events from attached handles back to the single underlying run.
type Event struct {
	RunID   string
	Type    EventType
	State   RunState
	Section SectionKind
	Item    int
	Err     string
	At      time.Time
}

// Store is the orchestrator's view of persistence. PutPackage must be
// atomic and return ErrAlreadyExists when a package for the same key
// was written first; that conflict is the durable at-most-once check.
type Store interface {
	GetPackage(ctx context.Context, key string) (*LessonPackage, error)
	PutPackage(ctx context.Context, pkg *LessonPackage) error
}

// Orchestrator drives the full pipeline: skeleton, enhancement, merge,
// persist. It deduplicates concurrent requests per descriptor key and
// switches to a second provider when a whole enhancement pass fails.
type Orchestrator struct {
	primary  llm.Provider
	fallback llm.Provider // may be nil
	store    Store
	cfg      Config
	enhancer *Enhancer

	mu   sync.Mutex
	runs map[string]*run
}

// New wires an orchestrator. fallback may be nil to disable provider
// fallback.
func New(primary, fallback llm.Provider, store Store, cfg Config) *Orchestrator {
	return &Orchestrator{
		primary:  primary,
		fallback: fallback,
		store:    store,
		cfg:      cfg,
		enhancer: NewEnhancer(cfg),
		runs:     make(map[string]*run),
	}
}

// run is the shared state of one in-flight generation. All attached
// handles observe the same result.
type run struct {
	id   string
	key  string
	done chan struct{}

	mu    sync.Mutex
	state RunState
	subs  []chan Event
	pkg   *LessonPackage
	err   error
}

func newRun(key string) *run {
	return &run{
		id:    uuid.NewString(),
		key:   key,
		done:  make(chan struct{}),
		state: StateNotStarted,
	}
}

func (r *run) subscribe() *Run {
	ch := make(chan Event, 64)
	r.mu.Lock()
	if r.pkg != nil || r.err != nil {
		close(ch)
	} else {
		r.subs = append(r.subs, ch)
	}
	r.mu.Unlock()
	return &Run{r: r, events: ch}
}

// publish fans an event out to every subscriber. Slow consumers lose
// events rather than blocking the pipeline.
func (r *run) publish(ev Event) {
	ev.RunID = r.id
	ev.At = time.Now()
	r.mu.Lock()
	subs := r.subs
	r.mu.Unlock()
	for _, ch := range subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (r *run) transition(s RunState) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
	r.publish(Event{Type: EventState, State: s})
}

func (r *run) finish(pkg *LessonPackage, err error) {
	r.mu.Lock()
	r.pkg = pkg
	r.err = err
	subs := r.subs
	r.subs = nil
	r.mu.Unlock()
	for _, ch := range subs {
		close(ch)
	}
	close(r.done)
}

// Run is one caller's handle on an in-flight (or finished) generation.
type Run struct {
	r      *run
	events chan Event
}

// Events streams progress until the run finishes; the channel is then
// closed. Events may be dropped if the consumer lags.
func (h *Run) Events() <-chan Event { return h.events }

// Wait blocks until the run finishes or ctx is canceled.
func (h *Run) Wait(ctx context.Context) (*LessonPackage, error) {
	select {
	case <-h.r.done:
		return h.r.pkg, h.r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Generate is the blocking convenience wrapper: start or attach, then
// wait.
func (o *Orchestrator) Generate(ctx context.Context, d Descriptor) (*LessonPackage, error) {
	h, err := o.Start(ctx, d)
	if err != nil {
		return nil, err
	}
	return h.Wait(ctx)
}

// Start begins generation for the descriptor, or attaches to the
// in-flight run for the same key. If a package is already persisted the
// returned handle is immediately done with it. The initiating caller's
// ctx governs the run; canceling it aborts the run for every attached
// handle.
func (o *Orchestrator) Start(ctx context.Context, d Descriptor) (*Run, error) {
	key := d.Key()

	pkg, err := o.store.GetPackage(ctx, key)
	if err == nil {
		r := newRun(key)
		h := r.subscribe()
		r.finish(pkg, nil)
		return h, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	o.mu.Lock()
	if r, ok := o.runs[key]; ok {
		o.mu.Unlock()
		return r.subscribe(), nil
	}
	r := newRun(key)
	o.runs[key] = r
	o.mu.Unlock()

	h := r.subscribe()
	go o.execute(ctx, d, r)
	return h, nil
}

func (o *Orchestrator) execute(ctx context.Context, d Descriptor, r *run) {
	defer func() {
		o.mu.Lock()
		delete(o.runs, r.key)
		o.mu.Unlock()
	}()

	pkg, err := o.pipeline(ctx, d, r)
	r.finish(pkg, err)
}

func (o *Orchestrator) pipeline(ctx context.Context, d Descriptor, r *run) (*LessonPackage, error) {
	r.transition(StateStage1Running)
	skel, err := NewSkeletonGenerator(o.primary, o.cfg).Generate(ctx, d)
	if err != nil {
		// No skeleton, no lesson. The fallback provider only serves
		// stage 2; a failed skeleton is a hard failure.
		r.transition(StateStage1Failed)
		return nil, err
	}
	model := o.primary.ModelID()

	r.transition(StateStage2Running)
	onFail := func(kind SectionKind, item int, itemErr error) {
		r.publish(Event{Type: EventItemFailed, Section: kind, Item: item, Err: itemErr.Error()})
	}

	results, err := o.enhancer.Enhance(ctx, o.primary, skel, onFail)
	if err != nil {
		return nil, err
	}
	if allFailed(results) && o.fallback != nil {
		r.publish(Event{Type: EventFallback, State: StateStage2Running})
		retried, err := o.enhancer.Enhance(ctx, o.fallback, skel, onFail)
		if err != nil {
			return nil, err
		}
		if !allFailed(retried) {
			results = retried
			model = o.fallback.ModelID()
		}
	}

	pkg := Merge(d, skel, results, model)
	// Degraded means zero items enhanced anywhere; a partially enhanced
	// package still completes, with per-section statuses telling the rest.
	if allFailed(results) {
		r.transition(StateStage2Degraded)
	} else {
		r.transition(StateStage2Complete)
	}

	// A cancel racing the final write must not discard a finished
	// generation, so the persist runs detached from the caller's ctx.
	putCtx := context.WithoutCancel(ctx)
	if err := o.store.PutPackage(putCtx, pkg); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			// Lost a cross-process race; the winner's package is canonical.
			return o.store.GetPackage(putCtx, r.key)
		}
		return nil, err
	}
	r.transition(StateMerged)
	return pkg, nil
}
