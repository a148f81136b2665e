package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"loja_merch/internal/domain/entities"
	"loja_merch/internal/domain/lifecycle"
	"loja_merch/internal/infrastructure/observability"
	"loja_merch/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// storeError tags a store failure with the operation that hit it. Errors the
// store already classified pass through.
func storeError(op string, err error) error {
	if errors.Is(err, entities.ErrStore) || errors.Is(err, entities.ErrValidation) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", entities.ErrStore, op, err)
}

func loadOrder(ctx context.Context, repo interfaces.IOrderRepository, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, fmt.Errorf("%w: order id is required", entities.ErrInvalidInput)
	}

	o, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, storeError("get order", err)
	}
	if o.ID == "" {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return o, nil
}

// trackingDelta keeps only what update adds on top of current: a new text and
// the refs not yet stored.
func trackingDelta(current entities.Order, update entities.TrackingUpdate) entities.TrackingUpdate {
	text := strings.TrimSpace(update.Text)
	if text == current.TrackingText {
		text = ""
	}
	return entities.TrackingUpdate{
		Text:   text,
		Images: entities.MissingRefs(current.TrackingImages, update.Images),
		Videos: entities.MissingRefs(current.TrackingVideos, update.Videos),
	}
}

// statusTransitioner is the single path every status change goes through,
// whether it comes from a single edit, a reconcile batch or a bulk run.
type statusTransitioner struct {
	repo    interfaces.IOrderRepository
	machine *lifecycle.StateMachine
	logger  *zap.Logger
}

func (t statusTransitioner) transition(ctx context.Context, current entities.Order, target entities.OrderStatus) (entities.Order, error) {
	if err := t.machine.Validate(current, target); err != nil {
		return entities.Order{}, err
	}
	return t.persist(ctx, current, target)
}

// persist writes a validated status change and fires the matching hooks.
func (t statusTransitioner) persist(ctx context.Context, current entities.Order, target entities.OrderStatus) (entities.Order, error) {
	updated, err := t.repo.UpdateStatus(ctx, current.ID, target)
	if err != nil {
		return entities.Order{}, storeError("update status", err)
	}
	if updated.ID == "" {
		return entities.Order{}, entities.ErrOrderNotFound
	}

	observability.RecordTransition(string(current.Status), string(target))
	t.logger.Info("order status changed",
		zap.String("order_id", updated.ID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(target)),
	)
	t.machine.AfterTransition(ctx, current.Status, updated)
	return updated, nil
}
