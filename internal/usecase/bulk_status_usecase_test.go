package usecase

import (
	"context"
	"errors"
	"testing"

	"loja_merch/internal/domain/entities"
	mock_interfaces "loja_merch/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestBulkStatusApplier_ApplyBulk(t *testing.T) {
	t.Run("unknown target fails before any work", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewBulkStatusApplier(repo, newMachine(t, false), 2, zap.NewNop())

		_, err := uc.ApplyBulk(context.Background(), []string{"a", "b"}, entities.OrderStatus("shipped"))
		if !errors.Is(err, entities.ErrUnknownStatus) {
			t.Fatalf("expected ErrUnknownStatus, got %v", err)
		}
	})

	t.Run("no ids", func(t *testing.T) {
		uc := NewBulkStatusApplier(nil, nil, 0, nil)
		_, err := uc.ApplyBulk(context.Background(), []string{" ", ""}, entities.OrderStatusProcessing)
		if !errors.Is(err, entities.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("each order succeeds or fails on its own", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewBulkStatusApplier(repo, newMachine(t, false), 3, zap.NewNop())

		okOrder := orderIn(entities.OrderStatusPending)
		okOrder.ID = "ok"
		moved := okOrder
		moved.Status = entities.OrderStatusToReview
		noProof := orderIn(entities.OrderStatusAwaitingProof)
		noProof.ID = "no-proof"
		noProof.Proof = nil

		repo.EXPECT().GetByID(gomock.Any(), "ok").Return(okOrder, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "ok", entities.OrderStatusToReview).Return(moved, nil)
		repo.EXPECT().GetByID(gomock.Any(), "broken").Return(entities.Order{}, errors.New("db"))
		repo.EXPECT().GetByID(gomock.Any(), "no-proof").Return(noProof, nil)
		repo.EXPECT().GetByID(gomock.Any(), "gone").Return(entities.Order{}, nil)

		res, err := uc.ApplyBulk(context.Background(), []string{"ok", "broken", "no-proof", "gone"}, entities.OrderStatusToReview)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(res.Items) != 4 {
			t.Fatalf("expected one result per id, got %d", len(res.Items))
		}
		if !res.Items["ok"].OK || res.Items["ok"].Order.Status != entities.OrderStatusToReview {
			t.Fatalf("unexpected ok result: %+v", res.Items["ok"])
		}
		if !errors.Is(res.Items["broken"].Err, entities.ErrStore) {
			t.Fatalf("expected store error, got %v", res.Items["broken"].Err)
		}
		if !errors.Is(res.Items["no-proof"].Err, entities.ErrMissingProof) {
			t.Fatalf("expected ErrMissingProof, got %v", res.Items["no-proof"].Err)
		}
		if !errors.Is(res.Items["gone"].Err, entities.ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", res.Items["gone"].Err)
		}
		if got := res.Succeeded(); len(got) != 1 || got[0] != "ok" {
			t.Fatalf("unexpected succeeded ids: %v", got)
		}
		if got := res.Failed(); len(got) != 3 || got[0] != "broken" {
			t.Fatalf("unexpected failed ids: %v", got)
		}
		if res.Items["no-proof"].Reason() == "" {
			t.Fatalf("expected a reason for the failure")
		}
	})

	t.Run("duplicate ids run once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewBulkStatusApplier(repo, newMachine(t, false), 4, zap.NewNop())

		current := orderIn(entities.OrderStatusPending)
		moved := current
		moved.Status = entities.OrderStatusCSV
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(current, nil).Times(1)
		repo.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.OrderStatusCSV).Return(moved, nil).Times(1)

		res, err := uc.ApplyBulk(context.Background(), []string{"ord-1", " ord-1 ", "ord-1"}, entities.OrderStatusCSV)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(res.Items) != 1 || !res.Items["ord-1"].OK {
			t.Fatalf("unexpected result: %+v", res.Items)
		}
	})

	t.Run("cancelled context fails pending ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewBulkStatusApplier(repo, newMachine(t, false), 1, zap.NewNop())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		res, err := uc.ApplyBulk(ctx, []string{"a", "b"}, entities.OrderStatusProcessing)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		for _, id := range []string{"a", "b"} {
			if !errors.Is(res.Items[id].Err, context.Canceled) {
				t.Fatalf("expected context.Canceled for %s, got %v", id, res.Items[id].Err)
			}
		}
	})
}
