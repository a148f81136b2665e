package postgres

import (
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"loja_merch/internal/domain/entities"
	"loja_merch/internal/usecase/interfaces"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const orderColumns = `id, user_id, contact_email, status, total_price, items, address, proof,
	tracking_text, tracking_images, tracking_videos, created_at, updated_at`

type itemJSON struct {
	ProductType  string           `json:"product_type"`
	ShirtTypeID  string           `json:"shirt_type_id,omitempty"`
	ProductPrice *decimal.Decimal `json:"product_price,omitempty"`
	Size         string           `json:"size,omitempty"`
	PlayerName   string           `json:"player_name,omitempty"`
	PlayerNumber string           `json:"player_number,omitempty"`
	PatchImages  []string         `json:"patch_images,omitempty"`
	Quantity     int              `json:"quantity"`
}

type addressJSON struct {
	RecipientName string `json:"recipient_name,omitempty"`
	Street        string `json:"street,omitempty"`
	Number        string `json:"number,omitempty"`
	Complement    string `json:"complement,omitempty"`
	District      string `json:"district,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	Country       string `json:"country,omitempty"`
	Phone         string `json:"phone,omitempty"`
}

type proofJSON struct {
	Reference  string    `json:"reference,omitempty"`
	ImageRef   string    `json:"image_ref,omitempty"`
	AttachedAt time.Time `json:"attached_at"`
}

// OrderRepository stores orders in Postgres. Line items, address and proof
// are JSONB columns; tracking refs are text arrays.
type OrderRepository struct {
	db *sql.DB
}

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	items, address, proof, err := encodeDocuments(o)
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO orders (`+orderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		o.ID, o.UserID, o.ContactEmail, string(o.Status), o.TotalPrice, items, address, proof,
		o.TrackingText, pq.Array(entities.MergeRefs(nil, o.TrackingImages)), pq.Array(entities.MergeRefs(nil, o.TrackingVideos)),
		o.CreatedAt.UTC(), o.UpdatedAt.UTC(),
	)
	if err != nil {
		return entities.Order{}, fmt.Errorf("insert order: %w", err)
	}
	return o, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	return scanOrderRow(row)
}

// List pages newest first using (created_at, id) as the keyset.
func (r *OrderRepository) List(ctx context.Context, filter entities.OrderFilter, page entities.Page) (entities.OrderPage, error) {
	page = page.Normalize()

	var (
		conds []string
		args  []any
	)
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if page.Cursor != "" {
		createdAt, id, err := decodeCursor(page.Cursor)
		if err != nil {
			return entities.OrderPage{}, err
		}
		args = append(args, createdAt, id)
		conds = append(conds, fmt.Sprintf("(created_at, id) < ($%d, $%d)", len(args)-1, len(args)))
	}

	query := `SELECT ` + orderColumns + ` FROM orders`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, page.Limit+1)
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d", len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return entities.OrderPage{}, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []entities.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return entities.OrderPage{}, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return entities.OrderPage{}, fmt.Errorf("list orders: %w", err)
	}

	res := entities.OrderPage{Orders: orders}
	if len(orders) > page.Limit {
		res.Orders = orders[:page.Limit]
		last := res.Orders[len(res.Orders)-1]
		res.NextCursor = encodeCursor(last.CreatedAt, last.ID)
	}
	return res, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	return r.update(ctx, `SET status = $2, updated_at = $3`, id, string(status), time.Now().UTC())
}

func (r *OrderRepository) UpdatePrice(ctx context.Context, id string, amount decimal.Decimal) (entities.Order, error) {
	return r.update(ctx, `SET total_price = $2, updated_at = $3`, id, amount, time.Now().UTC())
}

func (r *OrderRepository) UpdateProof(ctx context.Context, id string, proof entities.ProofOfPayment) (entities.Order, error) {
	doc, err := json.Marshal(proofJSON(proof))
	if err != nil {
		return entities.Order{}, err
	}
	return r.update(ctx, `SET proof = $2, updated_at = $3`, id, doc, time.Now().UTC())
}

// UpdateTracking appends the refs not yet stored, keeping stored order, in a
// single statement so concurrent appends serialize on the row lock.
func (r *OrderRepository) UpdateTracking(ctx context.Context, id string, update entities.TrackingUpdate) (entities.Order, error) {
	return r.update(ctx, `SET
			tracking_text = COALESCE(NULLIF($2, ''), tracking_text),
			tracking_images = tracking_images || ARRAY(SELECT x FROM unnest($3::text[]) AS x WHERE NOT x = ANY(tracking_images)),
			tracking_videos = tracking_videos || ARRAY(SELECT x FROM unnest($4::text[]) AS x WHERE NOT x = ANY(tracking_videos)),
			updated_at = $5`,
		id, update.Text,
		pq.Array(entities.MergeRefs(nil, update.Images)),
		pq.Array(entities.MergeRefs(nil, update.Videos)),
		time.Now().UTC(),
	)
}

func (r *OrderRepository) update(ctx context.Context, set string, args ...any) (entities.Order, error) {
	row := r.db.QueryRowContext(ctx, `UPDATE orders `+set+` WHERE id = $1 RETURNING `+orderColumns, args...)
	return scanOrderRow(row)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrderRow(row *sql.Row) (entities.Order, error) {
	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, nil
	}
	return o, err
}

func scanOrder(s scanner) (entities.Order, error) {
	var (
		o                     entities.Order
		status                string
		items, address, proof []byte
		images, videos        []string
	)
	err := s.Scan(
		&o.ID, &o.UserID, &o.ContactEmail, &status, &o.TotalPrice, &items, &address, &proof,
		&o.TrackingText, pq.Array(&images), pq.Array(&videos), &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return entities.Order{}, err
	}
	o.Status = entities.OrderStatus(status)
	o.TrackingImages = images
	o.TrackingVideos = videos
	o.CreatedAt = o.CreatedAt.UTC()
	o.UpdatedAt = o.UpdatedAt.UTC()

	var lines []itemJSON
	if err := json.Unmarshal(items, &lines); err != nil {
		return entities.Order{}, fmt.Errorf("order %s items: %w", o.ID, err)
	}
	o.Items = make([]entities.OrderItem, len(lines))
	for i, l := range lines {
		o.Items[i] = entities.OrderItem{
			ProductType:  entities.ProductType(l.ProductType),
			ShirtTypeID:  l.ShirtTypeID,
			ProductPrice: l.ProductPrice,
			Size:         l.Size,
			PlayerName:   l.PlayerName,
			PlayerNumber: l.PlayerNumber,
			PatchImages:  l.PatchImages,
			Quantity:     l.Quantity,
		}
	}

	var addr addressJSON
	if len(address) > 0 {
		if err := json.Unmarshal(address, &addr); err != nil {
			return entities.Order{}, fmt.Errorf("order %s address: %w", o.ID, err)
		}
	}
	o.Address = entities.Address(addr)

	if len(proof) > 0 {
		var p proofJSON
		if err := json.Unmarshal(proof, &p); err != nil {
			return entities.Order{}, fmt.Errorf("order %s proof: %w", o.ID, err)
		}
		pp := entities.ProofOfPayment(p)
		o.Proof = &pp
	}
	return o, nil
}

func encodeDocuments(o entities.Order) (items, address, proof []byte, err error) {
	lines := make([]itemJSON, len(o.Items))
	for i, it := range o.Items {
		lines[i] = itemJSON{
			ProductType:  string(it.ProductType),
			ShirtTypeID:  it.ShirtTypeID,
			ProductPrice: it.ProductPrice,
			Size:         it.Size,
			PlayerName:   it.PlayerName,
			PlayerNumber: it.PlayerNumber,
			PatchImages:  it.PatchImages,
			Quantity:     it.Quantity,
		}
	}
	if items, err = json.Marshal(lines); err != nil {
		return nil, nil, nil, err
	}
	if address, err = json.Marshal(addressJSON(o.Address)); err != nil {
		return nil, nil, nil, err
	}
	if o.Proof != nil {
		if proof, err = json.Marshal(proofJSON(*o.Proof)); err != nil {
			return nil, nil, nil, err
		}
	}
	return items, address, proof, nil
}

func encodeCursor(createdAt time.Time, id string) string {
	raw := createdAt.UTC().Format(time.RFC3339Nano) + "|" + id
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func decodeCursor(cursor string) (time.Time, string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: malformed cursor", entities.ErrInvalidInput)
	}
	ts, id, ok := strings.Cut(string(raw), "|")
	if !ok || id == "" {
		return time.Time{}, "", fmt.Errorf("%w: malformed cursor", entities.ErrInvalidInput)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: malformed cursor", entities.ErrInvalidInput)
	}
	return createdAt, id, nil
}
