package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"loja_merch/internal/domain/entities"
	"loja_merch/internal/domain/lifecycle"
	"loja_merch/internal/domain/pricing"
	"loja_merch/internal/infrastructure/observability"
	"loja_merch/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateOrderCommand is a customer checkout.
type CreateOrderCommand struct {
	UserID       string
	ContactEmail string
	Items        []entities.OrderItem
	Address      entities.Address
	Proof        *entities.ProofOfPayment
}

// Quote is a live cart total with its per-line detail.
type Quote struct {
	Lines []pricing.LineBreakdown
	Total decimal.Decimal
}

// IOrderUseCase exposes the customer checkout and single-order admin edits.
//
//   - checkout => CreateOrder (priced server-side), QuoteOrder (cart preview)
//   - order listing and detail => ListOrders, GetOrder
//   - proof upload => AttachProof
//   - admin edits => UpdateStatus, UpdatePrice, AddTracking

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, cmd CreateOrderCommand) (entities.Order, error)
	QuoteOrder(ctx context.Context, items []entities.OrderItem) (Quote, error)
	ListOrders(ctx context.Context, filter entities.OrderFilter, page entities.Page) (entities.OrderPage, error)
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	AttachProof(ctx context.Context, id string, proof entities.ProofOfPayment) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, target entities.OrderStatus) (entities.Order, error)
	UpdatePrice(ctx context.Context, id string, amount decimal.Decimal) (entities.Order, error)
	AddTracking(ctx context.Context, id string, update entities.TrackingUpdate) (entities.Order, error)
}

type OrderUseCase struct {
	repo        interfaces.IOrderRepository
	catalog     ICatalogUseCase
	machine     *lifecycle.StateMachine
	verifier    interfaces.IProofVerifier
	logger      *zap.Logger
	transitions statusTransitioner
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

// NewOrderUseCase wires the order operations. verifier may be nil, in which
// case proofs are stored without a provider check.
func NewOrderUseCase(
	repo interfaces.IOrderRepository,
	catalog ICatalogUseCase,
	machine *lifecycle.StateMachine,
	verifier interfaces.IProofVerifier,
	logger *zap.Logger,
) *OrderUseCase {
	logger = observability.OrNop(logger)
	return &OrderUseCase{
		repo:        repo,
		catalog:     catalog,
		machine:     machine,
		verifier:    verifier,
		logger:      logger,
		transitions: statusTransitioner{repo: repo, machine: machine, logger: logger},
	}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (entities.Order, error) {
	ctx, span := observability.StartSpan(ctx, "OrderUseCase.CreateOrder")
	defer span.End()

	userID := strings.TrimSpace(cmd.UserID)
	if userID == "" {
		return entities.Order{}, fmt.Errorf("%w: user id is required", entities.ErrInvalidInput)
	}
	if err := validateItems(cmd.Items); err != nil {
		return entities.Order{}, err
	}
	if cmd.Address.IsZero() {
		return entities.Order{}, fmt.Errorf("%w: delivery address is required", entities.ErrInvalidInput)
	}

	catalog, err := u.catalog.LoadCatalog(ctx, cmd.Items)
	if err != nil {
		return entities.Order{}, err
	}
	total, err := pricing.PriceOrder(cmd.Items, catalog)
	if err != nil {
		return entities.Order{}, err
	}

	now := time.Now().UTC()
	status := entities.OrderStatusAwaitingProof
	var proof *entities.ProofOfPayment
	if cmd.Proof != nil && cmd.Proof.HasProof() {
		if err := u.verifyProof(ctx, *cmd.Proof); err != nil {
			return entities.Order{}, err
		}
		p := *cmd.Proof
		p.AttachedAt = now
		proof = &p
		status = entities.OrderStatusPending
	}

	o := entities.Order{
		ID:           uuid.NewString(),
		UserID:       userID,
		ContactEmail: strings.TrimSpace(cmd.ContactEmail),
		Items:        normalizeItems(cmd.Items),
		Status:       status,
		TotalPrice:   total,
		Address:      cmd.Address,
		Proof:        proof,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.Order{}, storeError("create order", err)
	}

	u.logger.Info("order created",
		zap.String("order_id", created.ID),
		zap.String("status", string(created.Status)),
		zap.String("total", created.TotalPrice.String()),
	)
	return created, nil
}

func (u *OrderUseCase) QuoteOrder(ctx context.Context, items []entities.OrderItem) (Quote, error) {
	if err := validateItems(items); err != nil {
		return Quote{}, err
	}
	catalog, err := u.catalog.LoadCatalog(ctx, items)
	if err != nil {
		return Quote{}, err
	}
	lines, total, err := pricing.Breakdown(items, catalog)
	if err != nil {
		return Quote{}, err
	}
	return Quote{Lines: lines, Total: total}, nil
}

func (u *OrderUseCase) ListOrders(ctx context.Context, filter entities.OrderFilter, page entities.Page) (entities.OrderPage, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return entities.OrderPage{}, fmt.Errorf("%w: %q", entities.ErrUnknownStatus, filter.Status)
	}
	filter.UserID = strings.TrimSpace(filter.UserID)

	res, err := u.repo.List(ctx, filter, page.Normalize())
	if err != nil {
		return entities.OrderPage{}, storeError("list orders", err)
	}
	return res, nil
}

func (u *OrderUseCase) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	return loadOrder(ctx, u.repo, id)
}

// AttachProof stores a proof of payment and releases an order that was
// waiting for it into the review queue.
func (u *OrderUseCase) AttachProof(ctx context.Context, id string, proof entities.ProofOfPayment) (entities.Order, error) {
	ctx, span := observability.StartSpan(ctx, "OrderUseCase.AttachProof")
	defer span.End()

	if !proof.HasProof() {
		return entities.Order{}, fmt.Errorf("%w: proof reference or image is required", entities.ErrInvalidInput)
	}
	current, err := loadOrder(ctx, u.repo, id)
	if err != nil {
		return entities.Order{}, err
	}
	if current.Status.IsTerminal() {
		return entities.Order{}, fmt.Errorf("%w: %s", entities.ErrTerminalStatus, current.Status)
	}
	if err := u.verifyProof(ctx, proof); err != nil {
		return entities.Order{}, err
	}

	proof.AttachedAt = time.Now().UTC()
	updated, err := u.repo.UpdateProof(ctx, current.ID, proof)
	if err != nil {
		return entities.Order{}, storeError("update proof", err)
	}
	if updated.ID == "" {
		return entities.Order{}, entities.ErrOrderNotFound
	}

	if updated.Status != entities.OrderStatusAwaitingProof {
		return updated, nil
	}
	return u.transitions.transition(ctx, updated, entities.OrderStatusPending)
}

func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, target entities.OrderStatus) (entities.Order, error) {
	ctx, span := observability.StartSpan(ctx, "OrderUseCase.UpdateStatus")
	defer span.End()

	current, err := loadOrder(ctx, u.repo, id)
	if err != nil {
		return entities.Order{}, err
	}
	return u.transitions.transition(ctx, current, target)
}

func (u *OrderUseCase) UpdatePrice(ctx context.Context, id string, amount decimal.Decimal) (entities.Order, error) {
	ctx, span := observability.StartSpan(ctx, "OrderUseCase.UpdatePrice")
	defer span.End()

	if amount.IsNegative() {
		return entities.Order{}, fmt.Errorf("%w: price must not be negative", entities.ErrInvalidInput)
	}
	current, err := loadOrder(ctx, u.repo, id)
	if err != nil {
		return entities.Order{}, err
	}
	if !lifecycle.CanEditPrice(current) {
		return entities.Order{}, entities.ErrPriceNotEditable
	}

	updated, err := u.repo.UpdatePrice(ctx, current.ID, amount)
	if err != nil {
		return entities.Order{}, storeError("update price", err)
	}
	if updated.ID == "" {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return updated, nil
}

// AddTracking appends tracking entries. Refs already on the order are not
// sent again; an update that adds nothing returns the order unchanged.
func (u *OrderUseCase) AddTracking(ctx context.Context, id string, update entities.TrackingUpdate) (entities.Order, error) {
	ctx, span := observability.StartSpan(ctx, "OrderUseCase.AddTracking")
	defer span.End()

	if update.IsEmpty() {
		return entities.Order{}, fmt.Errorf("%w: tracking text, image or video is required", entities.ErrInvalidInput)
	}
	current, err := loadOrder(ctx, u.repo, id)
	if err != nil {
		return entities.Order{}, err
	}
	if !u.machine.MutableFields(current.Status).Tracking {
		return entities.Order{}, entities.ErrTrackingNotEditable
	}

	delta := trackingDelta(current, update)
	if delta.IsEmpty() {
		return current, nil
	}
	updated, err := u.repo.UpdateTracking(ctx, current.ID, delta)
	if err != nil {
		return entities.Order{}, storeError("update tracking", err)
	}
	if updated.ID == "" {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return updated, nil
}

func (u *OrderUseCase) verifyProof(ctx context.Context, proof entities.ProofOfPayment) error {
	if u.verifier == nil || strings.TrimSpace(proof.Reference) == "" {
		return nil
	}
	approved, err := u.verifier.VerifyProof(ctx, proof)
	if err != nil {
		return fmt.Errorf("verify proof: %w", err)
	}
	if !approved {
		return entities.ErrProofRejected
	}
	return nil
}

func validateItems(items []entities.OrderItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: at least one item is required", entities.ErrInvalidInput)
	}
	for i, item := range items {
		if !item.ProductType.IsValid() {
			return fmt.Errorf("%w: item %d: unknown product type %q", entities.ErrInvalidInput, i, item.ProductType)
		}
		if item.Quantity < 0 {
			return fmt.Errorf("%w: item %d: quantity must not be negative", entities.ErrInvalidInput, i)
		}
	}
	return nil
}

func normalizeItems(items []entities.OrderItem) []entities.OrderItem {
	out := make([]entities.OrderItem, len(items))
	for i, item := range items {
		item.Quantity = item.EffectiveQuantity()
		item.ShirtTypeID = strings.TrimSpace(item.ShirtTypeID)
		out[i] = item
	}
	return out
}
