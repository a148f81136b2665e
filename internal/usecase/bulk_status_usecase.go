package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"loja_merch/internal/domain/entities"
	"loja_merch/internal/domain/lifecycle"
	"loja_merch/internal/infrastructure/observability"
	"loja_merch/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const defaultBulkConcurrency = 4

// BulkItemResult is the outcome for one order id. Order is set on success.
type BulkItemResult struct {
	OK    bool
	Err   error
	Order entities.Order
}

func (r BulkItemResult) Reason() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

type BulkResult struct {
	Target entities.OrderStatus
	Items  map[string]BulkItemResult
}

// Succeeded returns the ids that moved to Target, sorted.
func (r BulkResult) Succeeded() []string {
	return r.ids(true)
}

// Failed returns the ids that did not move, sorted.
func (r BulkResult) Failed() []string {
	return r.ids(false)
}

func (r BulkResult) ids(ok bool) []string {
	var out []string
	for id, item := range r.Items {
		if item.OK == ok {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// IBulkStatusApplier moves many orders to one status.
type IBulkStatusApplier interface {
	ApplyBulk(ctx context.Context, ids []string, target entities.OrderStatus) (BulkResult, error)
}

type BulkStatusApplier struct {
	repo        interfaces.IOrderRepository
	logger      *zap.Logger
	concurrency int
	transitions statusTransitioner
}

var _ IBulkStatusApplier = (*BulkStatusApplier)(nil)

func NewBulkStatusApplier(repo interfaces.IOrderRepository, machine *lifecycle.StateMachine, concurrency int, logger *zap.Logger) *BulkStatusApplier {
	if concurrency <= 0 {
		concurrency = defaultBulkConcurrency
	}
	logger = observability.OrNop(logger)
	return &BulkStatusApplier{
		repo:        repo,
		logger:      logger,
		concurrency: concurrency,
		transitions: statusTransitioner{repo: repo, machine: machine, logger: logger},
	}
}

// ApplyBulk runs each id as its own unit of work: one order failing never
// blocks or reverts another. Only an unknown target or an empty id list fail
// the call as a whole. Duplicate ids are processed once.
func (b *BulkStatusApplier) ApplyBulk(ctx context.Context, ids []string, target entities.OrderStatus) (BulkResult, error) {
	ctx, span := observability.StartSpan(ctx, "BulkStatusApplier.ApplyBulk")
	defer span.End()

	if !target.IsValid() {
		return BulkResult{}, fmt.Errorf("%w: %q", entities.ErrUnknownStatus, target)
	}
	unique := dedupeIDs(ids)
	if len(unique) == 0 {
		return BulkResult{}, fmt.Errorf("%w: at least one order id is required", entities.ErrInvalidInput)
	}

	res := BulkResult{Target: target, Items: make(map[string]BulkItemResult, len(unique))}
	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = make(chan struct{}, b.concurrency)
	)
	for _, id := range unique {
		wg.Add(1)
		sem <- struct{}{}
		go func(id string) {
			defer wg.Done()
			defer func() { <-sem }()

			item := b.applyOne(ctx, id, target)
			mu.Lock()
			res.Items[id] = item
			mu.Unlock()
		}(id)
	}
	wg.Wait()

	failed := res.Failed()
	b.logger.Info("bulk status change finished",
		zap.String("target", string(target)),
		zap.Int("requested", len(unique)),
		zap.Int("failed", len(failed)),
	)
	return res, nil
}

func (b *BulkStatusApplier) applyOne(ctx context.Context, id string, target entities.OrderStatus) BulkItemResult {
	if err := ctx.Err(); err != nil {
		observability.RecordBulkResult("error")
		return BulkItemResult{Err: err}
	}

	updated, err := b.apply(ctx, id, target)
	if err != nil {
		observability.RecordBulkResult("error")
		b.logger.Warn("bulk status change failed",
			zap.String("order_id", id),
			zap.String("target", string(target)),
			zap.Error(err),
		)
		return BulkItemResult{Err: err}
	}
	observability.RecordBulkResult("ok")
	return BulkItemResult{OK: true, Order: updated}
}

func (b *BulkStatusApplier) apply(ctx context.Context, id string, target entities.OrderStatus) (entities.Order, error) {
	current, err := loadOrder(ctx, b.repo, id)
	if err != nil {
		return entities.Order{}, err
	}
	return b.transitions.transition(ctx, current, target)
}

func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
