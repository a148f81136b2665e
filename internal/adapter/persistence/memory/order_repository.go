package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"loja_merch/internal/domain/entities"
	"loja_merch/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var ErrOrderAlreadyExists = errors.New("order already exists")

// OrderRepository keeps orders in process memory. Used for local runs
// (ORDER_STORE=memory) and tests; data does not survive a restart.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]entities.Order
}

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: make(map[string]entities.Order),
	}
}

func (r *OrderRepository) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[o.ID]; exists {
		return entities.Order{}, ErrOrderAlreadyExists
	}
	r.orders[o.ID] = cloneOrder(o)
	return cloneOrder(o), nil
}

func (r *OrderRepository) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, exists := r.orders[id]
	if !exists {
		return entities.Order{}, nil
	}
	return cloneOrder(o), nil
}

// List returns orders newest first. The cursor is the offset of the next page.
func (r *OrderRepository) List(_ context.Context, filter entities.OrderFilter, page entities.Page) (entities.OrderPage, error) {
	page = page.Normalize()
	offset := 0
	if page.Cursor != "" {
		n, err := strconv.Atoi(page.Cursor)
		if err != nil || n < 0 {
			return entities.OrderPage{}, fmt.Errorf("%w: malformed cursor", entities.ErrInvalidInput)
		}
		offset = n
	}

	r.mu.RLock()
	matched := make([]entities.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.UserID != "" && o.UserID != filter.UserID {
			continue
		}
		matched = append(matched, cloneOrder(o))
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	if offset >= len(matched) {
		return entities.OrderPage{}, nil
	}
	end := offset + page.Limit
	res := entities.OrderPage{}
	if end < len(matched) {
		res.NextCursor = strconv.Itoa(end)
	} else {
		end = len(matched)
	}
	res.Orders = matched[offset:end]
	return res, nil
}

func (r *OrderRepository) UpdateStatus(_ context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	return r.mutate(id, func(o *entities.Order) {
		o.Status = status
	})
}

func (r *OrderRepository) UpdatePrice(_ context.Context, id string, amount decimal.Decimal) (entities.Order, error) {
	return r.mutate(id, func(o *entities.Order) {
		o.TotalPrice = amount
	})
}

func (r *OrderRepository) UpdateProof(_ context.Context, id string, proof entities.ProofOfPayment) (entities.Order, error) {
	return r.mutate(id, func(o *entities.Order) {
		p := proof
		o.Proof = &p
	})
}

func (r *OrderRepository) UpdateTracking(_ context.Context, id string, update entities.TrackingUpdate) (entities.Order, error) {
	return r.mutate(id, func(o *entities.Order) {
		if update.Text != "" {
			o.TrackingText = update.Text
		}
		o.TrackingImages = entities.MergeRefs(o.TrackingImages, update.Images)
		o.TrackingVideos = entities.MergeRefs(o.TrackingVideos, update.Videos)
	})
}

func (r *OrderRepository) mutate(id string, fn func(o *entities.Order)) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, exists := r.orders[id]
	if !exists {
		return entities.Order{}, nil
	}
	fn(&o)
	o.UpdatedAt = time.Now().UTC()
	r.orders[id] = o
	return cloneOrder(o), nil
}

func cloneOrder(o entities.Order) entities.Order {
	out := o
	out.Items = make([]entities.OrderItem, len(o.Items))
	for i, it := range o.Items {
		it.PatchImages = append([]string(nil), it.PatchImages...)
		out.Items[i] = it
	}
	out.TrackingImages = append([]string(nil), o.TrackingImages...)
	out.TrackingVideos = append([]string(nil), o.TrackingVideos...)
	if o.Proof != nil {
		p := *o.Proof
		out.Proof = &p
	}
	return out
}
