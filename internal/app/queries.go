package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/stave/internal/errors"
	"github.com/zhubert/stave/internal/logger"
	"github.com/zhubert/stave/internal/ui/panes"
)

// runQueries starts every query panes scheduled since the last call. Each
// runs off the loop with its own cancellable context.
func (m *Model) runQueries() tea.Cmd {
	pending := m.ctx.Scheduler.Drain()
	if len(pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(pending))
	for _, q := range pending {
		qctx, ticket := m.ctx.Scheduler.Start(m.root, q)
		client := m.client
		if m.inline {
			data, err := q.Run(qctx, client)
			cmds = append(cmds, m.handleQueryFinished(QueryFinishedMsg{ID: q.ID, Ticket: ticket, Target: q.Target, Data: data, Err: err}))
			continue
		}
		cmds = append(cmds, func() tea.Msg {
			data, err := q.Run(qctx, client)
			return QueryFinishedMsg{ID: q.ID, Ticket: ticket, Target: q.Target, Data: data, Err: err}
		})
	}
	return tea.Batch(cmds...)
}

// handleQueryFinished delivers a result to the pane that asked for it.
// Commands trigger an immediate status refresh instead.
func (m *Model) handleQueryFinished(msg QueryFinishedMsg) tea.Cmd {
	log := logger.WithComponent("app")
	if !m.ctx.Scheduler.Finish(msg.ID, msg.Ticket) {
		log.Debug("dropping result of cancelled query", "id", msg.ID)
		return nil
	}

	if msg.Target == nil {
		if msg.Err != nil {
			log.Warn("command failed", "id", msg.ID, "error", msg.Err)
			return m.showFlash(errors.QueryFailed(msg.ID, msg.Err).Error())
		}
		return m.refreshStatus(false)
	}

	res := panes.QueryResult{ID: msg.ID, Data: msg.Data, Err: msg.Err}
	if err := m.registry.Deliver(*msg.Target, res, m.ctx); err != nil {
		log.Warn("query result handler failed", "id", msg.ID, "pane", msg.Target.Key(), "error", err)
		return m.showFlash(errors.PaneFailed(msg.Target.Key(), err).Error())
	}
	return nil
}

// Headless makes the model run pane queries on the calling goroutine as
// soon as they are scheduled. Use it to drive a Model without a tea.Program.
func (m *Model) Headless() {
	m.inline = true
}

// Refresh fetches status and queue on the calling goroutine and applies
// them. In headless mode every query the panes schedule in response has
// finished when it returns.
func (m *Model) Refresh() error {
	msg, _ := m.refreshStatus(false)().(StatusMsg)
	if msg.Err != nil {
		return msg.Err
	}
	m.Update(msg)
	// Scheduled outside Update, e.g. by SelectTab.
	for i := 0; i < maxRefreshRounds && m.inline && m.ctx.Scheduler.Pending() > 0; i++ {
		m.runQueries()
	}
	return m.Err()
}

// refreshStatus fetches status and queue off the loop.
func (m *Model) refreshStatus(tick bool) tea.Cmd {
	client, ctx := m.client, m.root
	return func() tea.Msg {
		st, err := client.Status(ctx)
		if err != nil {
			return StatusMsg{Err: err, tick: tick}
		}
		queue, err := client.Queue(ctx)
		return StatusMsg{Status: st, Queue: queue, Err: err, tick: tick}
	}
}

func (m *Model) statusTick() tea.Cmd {
	return tea.Tick(m.cfg.StatusInterval, func(t time.Time) tea.Msg {
		return StatusTickMsg(t)
	})
}

func animationTick() tea.Cmd {
	return tea.Tick(animationInterval, func(t time.Time) tea.Msg {
		return AnimationTickMsg(t)
	})
}
