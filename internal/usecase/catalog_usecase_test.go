package usecase

import (
	"context"
	"errors"
	"testing"

	"loja_merch/internal/domain/entities"
	mock_interfaces "loja_merch/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_LoadCatalog(t *testing.T) {
	items := []entities.OrderItem{
		{ProductType: entities.ProductTypeShirt, ShirtTypeID: "classic"},
		{ProductType: entities.ProductTypeShirt, ShirtTypeID: " retro "},
		{ProductType: entities.ProductTypeShirt, ShirtTypeID: "classic"},
	}

	t.Run("known and unknown shirt types", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockICatalogProvider(ctrl)
		uc := NewCatalogUseCase(provider)

		provider.EXPECT().GetShirtTypePrice(gomock.Any(), "classic").Return(decimal.RequireFromString("99.9"), true, nil).Times(1)
		provider.EXPECT().GetShirtTypePrice(gomock.Any(), "retro").Return(decimal.Zero, false, nil).Times(1)
		provider.EXPECT().GetPatchUnitPrice(gomock.Any()).Return(decimal.RequireFromString("10"), nil)
		provider.EXPECT().GetPersonalizationFee(gomock.Any()).Return(decimal.RequireFromString("15"), nil)

		catalog, err := uc.LoadCatalog(context.Background(), items)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if p, ok := catalog.ShirtTypePrice("classic"); !ok || !p.Equal(decimal.RequireFromString("99.9")) {
			t.Fatalf("unexpected classic price: %v %v", p, ok)
		}
		if _, ok := catalog.ShirtTypePrice("retro"); ok {
			t.Fatalf("expected retro to be left out")
		}
		if !catalog.PatchUnitPrice.Equal(decimal.NewFromInt(10)) || !catalog.PersonalizationFee.Equal(decimal.NewFromInt(15)) {
			t.Fatalf("unexpected catalog: %+v", catalog)
		}
	})

	t.Run("provider failure is a pricing error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockICatalogProvider(ctrl)
		uc := NewCatalogUseCase(provider)

		provider.EXPECT().GetShirtTypePrice(gomock.Any(), "classic").Return(decimal.Zero, false, errors.New("timeout"))

		_, err := uc.LoadCatalog(context.Background(), items)
		if !errors.Is(err, entities.ErrPricing) {
			t.Fatalf("expected ErrPricing, got %v", err)
		}
	})
}
