// Package lifecycle holds the order state machine: which status changes are
// legal, which fields an admin may edit in each status, and the side effects
// that run after a transition has been persisted.
package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"time"

	"loja_merch/internal/domain/entities"

	"go.uber.org/zap"
)

const defaultHookTimeout = 10 * time.Second

// Options configures a StateMachine.
type Options struct {
	// AllowTerminalOverride lets admins move orders out of completed/cancelled.
	AllowTerminalOverride bool
	HookTimeout           time.Duration
	Logger                *zap.Logger
	// OnHookError receives every hook failure. It runs on the machine's error
	// consumer goroutine, never on the caller's.
	OnHookError func(HookError)
}

// StateMachine validates transitions and dispatches post-transition hooks.
// Validation is synchronous and performs no I/O.
type StateMachine struct {
	allowTerminalOverride bool
	hookTimeout           time.Duration
	logger                *zap.Logger

	mu     sync.RWMutex
	hooks  []Hook
	closed bool

	inflight  sync.WaitGroup
	errs      chan HookError
	onError   func(HookError)
	drained   chan struct{}
	closeOnce sync.Once
}

func New(opts Options) *StateMachine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := opts.HookTimeout
	if timeout <= 0 {
		timeout = defaultHookTimeout
	}

	m := &StateMachine{
		allowTerminalOverride: opts.AllowTerminalOverride,
		hookTimeout:           timeout,
		logger:                logger,
		errs:                  make(chan HookError, 64),
		onError:               opts.OnHookError,
		drained:               make(chan struct{}),
	}
	go m.consumeErrors()
	return m
}

// Validate checks that order may move to target. It never mutates order.
func (m *StateMachine) Validate(order entities.Order, target entities.OrderStatus) error {
	if !target.IsValid() {
		return fmt.Errorf("%w: %q", entities.ErrUnknownStatus, target)
	}
	from := order.Status
	if !from.IsValid() {
		return fmt.Errorf("%w: current status %q", entities.ErrUnknownStatus, from)
	}
	if from == target {
		return fmt.Errorf("%w: order already in status %s", entities.ErrIllegalTransition, target)
	}
	if from.IsTerminal() && !m.allowTerminalOverride {
		return fmt.Errorf("%w: %s", entities.ErrTerminalStatus, from)
	}
	if target == entities.OrderStatusCancelled {
		return nil
	}
	if from == entities.OrderStatusAwaitingProof && !order.HasProof() {
		return entities.ErrMissingProof
	}
	if target == entities.OrderStatusCSV && !from.Before(entities.OrderStatusProcessing) {
		return fmt.Errorf("%w: %s orders cannot be flagged for export", entities.ErrIllegalTransition, from)
	}
	return nil
}

// FieldSet lists the fields an admin may change.
type FieldSet struct {
	Status   bool
	Price    bool
	Tracking bool
}

// MutableFields reports which fields are editable while an order is in status.
func (m *StateMachine) MutableFields(status entities.OrderStatus) FieldSet {
	return FieldSet{
		Status:   !status.IsTerminal() || m.allowTerminalOverride,
		Price:    status == entities.OrderStatusToQuote,
		Tracking: status != entities.OrderStatusCancelled,
	}
}

// CanEditPrice is true only while the order awaits a quote.
func CanEditPrice(order entities.Order) bool {
	return order.Status == entities.OrderStatusToQuote
}

// ExportEligible reports whether the order is flagged for CSV export.
func ExportEligible(order entities.Order) bool {
	return order.Status == entities.OrderStatusCSV
}

// Register adds hooks to the machine.
func (m *StateMachine) Register(hooks ...Hook) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks = append(m.hooks, hooks...)
}

// AfterTransition starts every hook matching from -> order.Status on its own
// goroutine and returns immediately. Hooks outlive ctx cancellation but are
// bounded by the hook timeout; failures go to the error consumer. Once the
// machine is closed, matching hooks are logged and dropped.
func (m *StateMachine) AfterTransition(ctx context.Context, from entities.OrderStatus, order entities.Order) {
	// inflight.Add happens under the read lock so Close never waits on a
	// group that is still growing.
	m.mu.RLock()
	defer m.mu.RUnlock()

	base := context.WithoutCancel(ctx)
	for _, h := range m.hooks {
		if !h.Matches(from, order.Status) {
			continue
		}
		if m.closed {
			m.logger.Warn("transition hook dropped after close",
				zap.String("hook", h.Name),
				zap.String("order_id", order.ID),
				zap.String("to", string(order.Status)),
			)
			continue
		}
		m.inflight.Add(1)
		go m.runHook(base, h, from, order)
	}
}

func (m *StateMachine) runHook(ctx context.Context, h Hook, from entities.OrderStatus, order entities.Order) {
	defer m.inflight.Done()

	ctx, cancel := context.WithTimeout(ctx, m.hookTimeout)
	defer cancel()

	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("hook panicked: %v", r)
			}
		}()
		return h.Run(ctx, order)
	}()
	if err == nil {
		m.logger.Debug("transition hook completed", zap.String("hook", h.Name), zap.String("order_id", order.ID))
		return
	}
	m.errs <- HookError{Hook: h.Name, OrderID: order.ID, From: from, To: order.Status, Err: err}
}

func (m *StateMachine) consumeErrors() {
	defer close(m.drained)
	for he := range m.errs {
		if he.barrier != nil {
			close(he.barrier)
			continue
		}
		m.logger.Warn("transition hook failed",
			zap.String("hook", he.Hook),
			zap.String("order_id", he.OrderID),
			zap.String("from", string(he.From)),
			zap.String("to", string(he.To)),
			zap.Error(he.Err),
		)
		if m.onError != nil {
			m.onError(he)
		}
	}
}

// Wait blocks until in-flight hooks finished and their errors were handled.
// It returns immediately on a closed machine.
func (m *StateMachine) Wait() {
	m.inflight.Wait()

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return
	}
	done := make(chan struct{})
	m.errs <- HookError{barrier: done}
	<-done
}

// Close stops accepting hooks, waits for the in-flight ones and stops the
// error consumer.
func (m *StateMachine) Close() {
	m.closeOnce.Do(func() {
		m.mu.Lock()
		m.closed = true
		m.mu.Unlock()

		m.inflight.Wait()
		close(m.errs)
		<-m.drained
	})
}
