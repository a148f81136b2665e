package usecase

import (
	"context"
	"errors"
	"testing"

	"loja_merch/internal/domain/entities"
	mock_interfaces "loja_merch/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestPendingChangeSet_Stage(t *testing.T) {
	t.Run("staging the stored value is not a change", func(t *testing.T) {
		cs := NewPendingChangeSet(orderIn(entities.OrderStatusToQuote))
		cs.StageStatus(entities.OrderStatusToQuote)
		cs.StagePrice(decimal.Zero)
		cs.StageTracking(entities.TrackingUpdate{})
		if cs.Dirty().Any() {
			t.Fatalf("expected clean change set, got %+v", cs.Dirty())
		}
	})

	t.Run("tracking accumulates across calls", func(t *testing.T) {
		snapshot := orderIn(entities.OrderStatusProcessing)
		snapshot.TrackingImages = []string{"a.jpg"}
		cs := NewPendingChangeSet(snapshot)

		cs.StageTracking(entities.TrackingUpdate{Images: []string{"a.jpg"}})
		if cs.Dirty().Tracking {
			t.Fatalf("already stored image must not dirty tracking")
		}
		cs.StageTracking(entities.TrackingUpdate{Images: []string{"b.jpg"}})
		cs.StageTracking(entities.TrackingUpdate{Videos: []string{"v.mp4"}})
		if !cs.Dirty().Tracking {
			t.Fatalf("expected dirty tracking")
		}
		delta := trackingDelta(snapshot, cs.tracking)
		if len(delta.Images) != 1 || delta.Images[0] != "b.jpg" || len(delta.Videos) != 1 {
			t.Fatalf("unexpected delta: %+v", delta)
		}
	})

	t.Run("untyped staging", func(t *testing.T) {
		cs := NewPendingChangeSet(orderIn(entities.OrderStatusPending))
		if err := cs.Stage(FieldStatus, "Em Produção"); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if cs.status != entities.OrderStatusProcessing || !cs.Dirty().Status {
			t.Fatalf("expected processing staged, got %q", cs.status)
		}
		if err := cs.Stage(FieldStatus, "enviado"); !errors.Is(err, entities.ErrUnknownStatus) {
			t.Fatalf("expected ErrUnknownStatus, got %v", err)
		}
		if err := cs.Stage(FieldPrice, "10.00"); !errors.Is(err, entities.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
		if err := cs.Stage(Field("address"), nil); !errors.Is(err, entities.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("discard", func(t *testing.T) {
		cs := NewPendingChangeSet(orderIn(entities.OrderStatusToQuote))
		cs.StagePrice(decimal.NewFromInt(10))
		cs.StageStatus(entities.OrderStatusCancelled)
		cs.Discard()
		if cs.Dirty().Any() {
			t.Fatalf("expected nothing staged after discard")
		}
	})
}

func TestReconciler_ApplyAll(t *testing.T) {
	t.Run("nothing staged", func(t *testing.T) {
		uc := NewReconciler(nil, nil, zap.NewNop())
		res, err := uc.ApplyAll(context.Background(), NewPendingChangeSet(orderIn(entities.OrderStatusPending)))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		for _, f := range []Field{FieldStatus, FieldPrice, FieldTracking} {
			if res.Field(f).Outcome != OutcomeSkipped {
				t.Fatalf("expected %s skipped, got %s", f, res.Field(f).Outcome)
			}
		}
	})

	t.Run("status failure does not roll back price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewReconciler(repo, newMachine(t, false), zap.NewNop())

		current := orderIn(entities.OrderStatusToQuote)
		priced := current
		priced.TotalPrice = decimal.NewFromInt(100)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(current, nil).Times(2)
		gomock.InOrder(
			repo.EXPECT().UpdatePrice(gomock.Any(), "ord-1", decimalEq("100")).Return(priced, nil),
			repo.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.OrderStatusAwaitingPayment).Return(entities.Order{}, errors.New("throttled")),
		)

		cs, err := uc.Open(context.Background(), "ord-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		cs.StagePrice(decimal.NewFromInt(100))
		cs.StageStatus(entities.OrderStatusAwaitingPayment)

		res, err := uc.ApplyAll(context.Background(), cs)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Price.Outcome != OutcomeApplied {
			t.Fatalf("expected price applied, got %+v", res.Price)
		}
		if res.Status.Outcome != OutcomeFailed || !errors.Is(res.Status.Err, entities.ErrStore) {
			t.Fatalf("expected status failed with store error, got %+v", res.Status)
		}
		if res.Tracking.Outcome != OutcomeSkipped {
			t.Fatalf("expected tracking skipped, got %+v", res.Tracking)
		}
		if res.Order != nil || res.FullySucceeded() {
			t.Fatalf("partial failure must not report a refreshed order")
		}
		dirty := cs.Dirty()
		if dirty.Price || !dirty.Status {
			t.Fatalf("expected only status to stay dirty, got %+v", dirty)
		}
		if got := res.FailedFields(); len(got) != 1 || got[0] != FieldStatus {
			t.Fatalf("unexpected failed fields: %v", got)
		}
	})

	t.Run("validation error blocks the whole batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewReconciler(repo, newMachine(t, false), zap.NewNop())

		current := orderIn(entities.OrderStatusPending)
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(current, nil)

		cs := NewPendingChangeSet(current)
		cs.StageTracking(entities.TrackingUpdate{Text: "separando"})
		cs.StagePrice(decimal.NewFromInt(80))

		_, err := uc.ApplyAll(context.Background(), cs)
		if !errors.Is(err, entities.ErrPriceNotEditable) {
			t.Fatalf("expected ErrPriceNotEditable, got %v", err)
		}
		if !cs.Dirty().Price || !cs.Dirty().Tracking {
			t.Fatalf("staged fields must survive a rejected batch")
		}
	})

	t.Run("all fields applied in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewReconciler(repo, newMachine(t, false), zap.NewNop())

		current := orderIn(entities.OrderStatusToQuote)
		final := current
		final.TotalPrice = decimal.RequireFromString("59.90")
		final.TrackingText = "aguardando pagamento"
		final.Status = entities.OrderStatusAwaitingPayment

		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(current, nil),
			repo.EXPECT().UpdatePrice(gomock.Any(), "ord-1", decimalEq("59.90")).Return(current, nil),
			repo.EXPECT().UpdateTracking(gomock.Any(), "ord-1", gomock.Any()).Return(current, nil),
			repo.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.OrderStatusAwaitingPayment).Return(final, nil),
			repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(final, nil),
		)

		cs := NewPendingChangeSet(current)
		cs.StageStatus(entities.OrderStatusAwaitingPayment)
		cs.StageTracking(entities.TrackingUpdate{Text: "aguardando pagamento"})
		cs.StagePrice(decimal.RequireFromString("59.90"))

		res, err := uc.ApplyAll(context.Background(), cs)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !res.FullySucceeded() || res.Order == nil {
			t.Fatalf("expected full success with refreshed order, got %+v", res)
		}
		if res.Order.Status != entities.OrderStatusAwaitingPayment {
			t.Fatalf("unexpected refreshed status: %s", res.Order.Status)
		}
		if cs.Dirty().Any() {
			t.Fatalf("expected clean change set, got %+v", cs.Dirty())
		}
		if cs.Snapshot().Status != entities.OrderStatusAwaitingPayment {
			t.Fatalf("snapshot must follow the refreshed order")
		}
	})

	t.Run("value already stored is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewReconciler(repo, newMachine(t, false), zap.NewNop())

		snapshot := orderIn(entities.OrderStatusPending)
		stored := snapshot
		stored.Status = entities.OrderStatusToReview
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(stored, nil)

		cs := NewPendingChangeSet(snapshot)
		cs.StageStatus(entities.OrderStatusToReview)

		res, err := uc.ApplyAll(context.Background(), cs)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Status.Outcome != OutcomeSkipped || cs.Dirty().Status {
			t.Fatalf("expected skipped and clean, got %+v", res.Status)
		}
		if res.Order == nil || res.Order.Status != entities.OrderStatusToReview {
			t.Fatalf("expected the stored order back")
		}
	})

	t.Run("order gone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewReconciler(repo, newMachine(t, false), zap.NewNop())

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, nil)

		cs := NewPendingChangeSet(orderIn(entities.OrderStatusPending))
		cs.StageStatus(entities.OrderStatusCancelled)
		_, err := uc.ApplyAll(context.Background(), cs)
		if !errors.Is(err, entities.ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}
