package usecase

import (
	"context"
	"fmt"
	"strings"

	"loja_merch/internal/domain/entities"
	"loja_merch/internal/domain/lifecycle"
	"loja_merch/internal/infrastructure/observability"
	"loja_merch/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Field string

const (
	FieldStatus   Field = "status"
	FieldPrice    Field = "price"
	FieldTracking Field = "tracking"
)

type Outcome string

const (
	OutcomeApplied Outcome = "applied"
	OutcomeFailed  Outcome = "failed"
	OutcomeSkipped Outcome = "skipped"
)

// FieldResult is the outcome of dispatching one staged field.
type FieldResult struct {
	Outcome Outcome
	Err     error
}

func (r FieldResult) Reason() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// ReconcileResult reports every field independently. Order is the order as
// re-read from the store, present only when no field failed.
type ReconcileResult struct {
	OrderID  string
	Status   FieldResult
	Price    FieldResult
	Tracking FieldResult
	Order    *entities.Order
}

func (r ReconcileResult) Field(f Field) FieldResult {
	switch f {
	case FieldStatus:
		return r.Status
	case FieldPrice:
		return r.Price
	default:
		return r.Tracking
	}
}

// FailedFields lists the fields whose store update failed.
func (r ReconcileResult) FailedFields() []Field {
	var out []Field
	for _, f := range []Field{FieldPrice, FieldTracking, FieldStatus} {
		if r.Field(f).Outcome == OutcomeFailed {
			out = append(out, f)
		}
	}
	return out
}

func (r ReconcileResult) FullySucceeded() bool {
	return len(r.FailedFields()) == 0
}

type DirtyFlags struct {
	Status   bool
	Price    bool
	Tracking bool
}

func (d DirtyFlags) Any() bool {
	return d.Status || d.Price || d.Tracking
}

// PendingChangeSet holds an admin's staged edits to one order until they are
// applied. It is owned by a single caller and is not safe for concurrent use.
type PendingChangeSet struct {
	snapshot entities.Order
	status   entities.OrderStatus
	price    decimal.Decimal
	tracking entities.TrackingUpdate
	dirty    DirtyFlags
}

func NewPendingChangeSet(snapshot entities.Order) *PendingChangeSet {
	return &PendingChangeSet{snapshot: snapshot}
}

func (cs *PendingChangeSet) OrderID() string {
	return cs.snapshot.ID
}

// Snapshot is the order as last read from the store.
func (cs *PendingChangeSet) Snapshot() entities.Order {
	return cs.snapshot
}

func (cs *PendingChangeSet) Dirty() DirtyFlags {
	return cs.dirty
}

// StageStatus records a target status. Staging the snapshot's own status
// clears the field.
func (cs *PendingChangeSet) StageStatus(target entities.OrderStatus) {
	cs.status = target
	cs.dirty.Status = target != cs.snapshot.Status
}

func (cs *PendingChangeSet) StagePrice(amount decimal.Decimal) {
	cs.price = amount
	cs.dirty.Price = !amount.Equal(cs.snapshot.TotalPrice)
}

// StageTracking accumulates tracking entries. Repeated calls add up; refs
// already on the snapshot are ignored.
func (cs *PendingChangeSet) StageTracking(update entities.TrackingUpdate) {
	if text := strings.TrimSpace(update.Text); text != "" {
		cs.tracking.Text = text
	}
	cs.tracking.Images = entities.MergeRefs(cs.tracking.Images, update.Images)
	cs.tracking.Videos = entities.MergeRefs(cs.tracking.Videos, update.Videos)
	cs.dirty.Tracking = !trackingDelta(cs.snapshot, cs.tracking).IsEmpty()
}

// Stage is the untyped form of the Stage* methods.
func (cs *PendingChangeSet) Stage(field Field, value any) error {
	switch field {
	case FieldStatus:
		switch v := value.(type) {
		case entities.OrderStatus:
			cs.StageStatus(v)
			return nil
		case string:
			status, err := entities.ParseOrderStatus(v)
			if err != nil {
				return err
			}
			cs.StageStatus(status)
			return nil
		}
	case FieldPrice:
		if v, ok := value.(decimal.Decimal); ok {
			cs.StagePrice(v)
			return nil
		}
	case FieldTracking:
		if v, ok := value.(entities.TrackingUpdate); ok {
			cs.StageTracking(v)
			return nil
		}
	default:
		return fmt.Errorf("%w: unknown field %q", entities.ErrInvalidInput, field)
	}
	return fmt.Errorf("%w: unexpected %T for field %s", entities.ErrInvalidInput, value, field)
}

// Discard drops every staged edit.
func (cs *PendingChangeSet) Discard() {
	cs.status = ""
	cs.price = decimal.Zero
	cs.tracking = entities.TrackingUpdate{}
	cs.dirty = DirtyFlags{}
}

// IReconciler applies a set of staged admin edits as independent updates.
type IReconciler interface {
	Open(ctx context.Context, orderID string) (*PendingChangeSet, error)
	ApplyAll(ctx context.Context, cs *PendingChangeSet) (ReconcileResult, error)
}

type Reconciler struct {
	repo        interfaces.IOrderRepository
	machine     *lifecycle.StateMachine
	logger      *zap.Logger
	transitions statusTransitioner
}

var _ IReconciler = (*Reconciler)(nil)

func NewReconciler(repo interfaces.IOrderRepository, machine *lifecycle.StateMachine, logger *zap.Logger) *Reconciler {
	logger = observability.OrNop(logger)
	return &Reconciler{
		repo:        repo,
		machine:     machine,
		logger:      logger,
		transitions: statusTransitioner{repo: repo, machine: machine, logger: logger},
	}
}

// Open snapshots the order for editing.
func (r *Reconciler) Open(ctx context.Context, orderID string) (*PendingChangeSet, error) {
	o, err := loadOrder(ctx, r.repo, orderID)
	if err != nil {
		return nil, err
	}
	return NewPendingChangeSet(o), nil
}

// reconcilePlan is what actually has to be written once the staged values are
// compared against the stored order.
type reconcilePlan struct {
	price    *decimal.Decimal
	tracking *entities.TrackingUpdate
	status   *entities.OrderStatus
}

// ApplyAll validates every dirty field against the stored order and, when all
// of them are valid, dispatches them as independent store updates in the
// order price, tracking, status. A validation error aborts before any write.
// A failed write leaves its field dirty and does not roll back the others.
func (r *Reconciler) ApplyAll(ctx context.Context, cs *PendingChangeSet) (ReconcileResult, error) {
	ctx, span := observability.StartSpan(ctx, "Reconciler.ApplyAll")
	defer span.End()

	if cs == nil {
		return ReconcileResult{}, fmt.Errorf("%w: change set is required", entities.ErrInvalidInput)
	}
	res := ReconcileResult{
		OrderID:  cs.OrderID(),
		Status:   FieldResult{Outcome: OutcomeSkipped},
		Price:    FieldResult{Outcome: OutcomeSkipped},
		Tracking: FieldResult{Outcome: OutcomeSkipped},
	}
	if !cs.dirty.Any() {
		return res, nil
	}

	current, err := loadOrder(ctx, r.repo, cs.OrderID())
	if err != nil {
		return ReconcileResult{}, err
	}
	plan, err := r.plan(current, cs)
	if err != nil {
		return ReconcileResult{}, err
	}

	applied := false
	if plan.price != nil {
		updated, err := r.repo.UpdatePrice(ctx, current.ID, *plan.price)
		res.Price = writeOutcome(updated, err, "update price")
		cs.dirty.Price = res.Price.Outcome == OutcomeFailed
	} else {
		cs.dirty.Price = false
	}

	if plan.tracking != nil {
		updated, err := r.repo.UpdateTracking(ctx, current.ID, *plan.tracking)
		res.Tracking = writeOutcome(updated, err, "update tracking")
		cs.dirty.Tracking = res.Tracking.Outcome == OutcomeFailed
	} else {
		cs.dirty.Tracking = false
	}

	if plan.status != nil {
		_, err := r.transitions.persist(ctx, current, *plan.status)
		if err != nil {
			res.Status = FieldResult{Outcome: OutcomeFailed, Err: err}
		} else {
			res.Status = FieldResult{Outcome: OutcomeApplied}
		}
		cs.dirty.Status = res.Status.Outcome == OutcomeFailed
	} else {
		cs.dirty.Status = false
	}

	for _, f := range []Field{FieldPrice, FieldTracking, FieldStatus} {
		fr := res.Field(f)
		if fr.Outcome == OutcomeApplied {
			applied = true
		}
		if fr.Outcome != OutcomeSkipped {
			observability.RecordReconcileField(string(f), string(fr.Outcome))
		}
		if fr.Outcome == OutcomeFailed {
			r.logger.Warn("order field update failed",
				zap.String("order_id", current.ID),
				zap.String("field", string(f)),
				zap.Error(fr.Err),
			)
		}
	}

	if !res.FullySucceeded() {
		return res, nil
	}
	if !applied {
		res.Order = &current
		cs.snapshot = current
		return res, nil
	}
	refreshed, err := r.repo.GetByID(ctx, current.ID)
	if err != nil || refreshed.ID == "" {
		r.logger.Warn("order refresh after reconcile failed", zap.String("order_id", current.ID), zap.Error(err))
		return res, nil
	}
	res.Order = &refreshed
	cs.snapshot = refreshed
	return res, nil
}

func (r *Reconciler) plan(current entities.Order, cs *PendingChangeSet) (reconcilePlan, error) {
	var plan reconcilePlan

	if cs.dirty.Price && !cs.price.Equal(current.TotalPrice) {
		if cs.price.IsNegative() {
			return reconcilePlan{}, fmt.Errorf("%w: price must not be negative", entities.ErrInvalidInput)
		}
		if !lifecycle.CanEditPrice(current) {
			return reconcilePlan{}, entities.ErrPriceNotEditable
		}
		price := cs.price
		plan.price = &price
	}

	if cs.dirty.Tracking {
		delta := trackingDelta(current, cs.tracking)
		if !delta.IsEmpty() {
			if !r.machine.MutableFields(current.Status).Tracking {
				return reconcilePlan{}, entities.ErrTrackingNotEditable
			}
			plan.tracking = &delta
		}
	}

	if cs.dirty.Status && cs.status != current.Status {
		if err := r.machine.Validate(current, cs.status); err != nil {
			return reconcilePlan{}, err
		}
		status := cs.status
		plan.status = &status
	}
	return plan, nil
}

func writeOutcome(updated entities.Order, err error, op string) FieldResult {
	if err != nil {
		return FieldResult{Outcome: OutcomeFailed, Err: storeError(op, err)}
	}
	if updated.ID == "" {
		return FieldResult{Outcome: OutcomeFailed, Err: entities.ErrOrderNotFound}
	}
	return FieldResult{Outcome: OutcomeApplied}
}
