package ui

import (
	"context"

	"github.com/google/uuid"

	"github.com/zhubert/stave/internal/config"
	"github.com/zhubert/stave/internal/mpd"
)

// QueryFunc fetches data from the backend. It must honor ctx.
type QueryFunc func(ctx context.Context, c mpd.Client) (any, error)

// Query is a unit of backend work requested by a pane. When Target is set the
// result is delivered to that pane's OnQueryFinished; otherwise the query is a
// fire-and-forget command and the host refreshes status when it completes.
type Query struct {
	ID     string
	Target *config.PaneType
	Run    QueryFunc
}

// Scheduler collects work panes request while handling an event. It is owned
// by the host loop and must only be used from it.
type Scheduler struct {
	pending  []Query
	inflight map[string]flight
	seq      uint64
	tab      string
	flash    string
}

type flight struct {
	cancel context.CancelFunc
	ticket uint64
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{inflight: make(map[string]flight)}
}

// NewQueryID returns a unique id for a query whose result must be matched to
// a single request.
func NewQueryID(prefix string) string {
	return prefix + ":" + uuid.NewString()
}

// Query schedules a fetch whose result goes back to target. A pending query
// with the same id is replaced; an in-flight one is cancelled.
func (s *Scheduler) Query(id string, target config.PaneType, run QueryFunc) {
	s.Cancel(id)
	s.pending = append(s.pending, Query{ID: id, Target: &target, Run: run})
}

// Command schedules a backend command with no result.
func (s *Scheduler) Command(id string, run func(ctx context.Context, c mpd.Client) error) {
	s.pending = append(s.pending, Query{ID: id, Run: func(ctx context.Context, c mpd.Client) (any, error) {
		return nil, run(ctx, c)
	}})
}

// Cancel drops a pending query and cancels it if it is in flight. Results of
// a cancelled query are discarded by Finish.
func (s *Scheduler) Cancel(id string) {
	kept := s.pending[:0]
	for _, q := range s.pending {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	s.pending = kept

	if f, ok := s.inflight[id]; ok {
		f.cancel()
		delete(s.inflight, id)
	}
}

// Pending reports how many queries wait to be drained.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Drain returns and clears the pending queries.
func (s *Scheduler) Drain() []Query {
	out := s.pending
	s.pending = nil
	return out
}

// Start marks q in flight and returns the context it must run with and the
// ticket to pass to Finish. Starting an id that is already in flight cancels
// the earlier run.
func (s *Scheduler) Start(parent context.Context, q Query) (context.Context, uint64) {
	ctx, cancel := context.WithCancel(parent)
	if prev, ok := s.inflight[q.ID]; ok {
		prev.cancel()
	}
	s.seq++
	s.inflight[q.ID] = flight{cancel: cancel, ticket: s.seq}
	return ctx, s.seq
}

// Finish releases the query's context and reports whether its result should
// be delivered. It returns false for cancelled, superseded or unknown runs.
func (s *Scheduler) Finish(id string, ticket uint64) bool {
	f, ok := s.inflight[id]
	if !ok || f.ticket != ticket {
		return false
	}
	f.cancel()
	delete(s.inflight, id)
	return true
}

// InFlight reports whether id has been started and not yet finished.
func (s *Scheduler) InFlight(id string) bool {
	_, ok := s.inflight[id]
	return ok
}

// CancelAll cancels every in-flight query.
func (s *Scheduler) CancelAll() {
	for id, f := range s.inflight {
		f.cancel()
		delete(s.inflight, id)
	}
	s.pending = nil
}

// RequestTab asks the host to switch to the named tab.
func (s *Scheduler) RequestTab(name string) {
	s.tab = name
}

// TakeTab returns and clears a pending tab switch.
func (s *Scheduler) TakeTab() (string, bool) {
	name := s.tab
	s.tab = ""
	return name, name != ""
}

// Flash asks the host to show a short message on the status line.
func (s *Scheduler) Flash(msg string) {
	s.flash = msg
}

// TakeFlash returns and clears a pending flash message.
func (s *Scheduler) TakeFlash() (string, bool) {
	msg := s.flash
	s.flash = ""
	return msg, msg != ""
}
