package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"loja_merch/internal/domain/entities"
	"loja_merch/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultOrdersTableName = "orders"
	ordersStatusIndex      = "status-created_at-index"
	ordersUserIndex        = "user_id-created_at-index"
)

type orderRecord struct {
	ID             string            `dynamodbav:"id"`
	UserID         string            `dynamodbav:"user_id"`
	ContactEmail   string            `dynamodbav:"contact_email,omitempty"`
	Items          []orderItemRecord `dynamodbav:"items"`
	Status         string            `dynamodbav:"status"`
	TotalPrice     string            `dynamodbav:"total_price"`
	Address        addressRecord     `dynamodbav:"address"`
	Proof          *proofRecord      `dynamodbav:"proof,omitempty"`
	TrackingText   string            `dynamodbav:"tracking_text,omitempty"`
	TrackingImages []string          `dynamodbav:"tracking_images,stringset,omitempty"`
	TrackingVideos []string          `dynamodbav:"tracking_videos,stringset,omitempty"`
	CreatedAt      string            `dynamodbav:"created_at"`
	UpdatedAt      string            `dynamodbav:"updated_at"`
}

type orderItemRecord struct {
	ProductType  string   `dynamodbav:"product_type"`
	ShirtTypeID  string   `dynamodbav:"shirt_type_id,omitempty"`
	ProductPrice string   `dynamodbav:"product_price,omitempty"`
	Size         string   `dynamodbav:"size,omitempty"`
	PlayerName   string   `dynamodbav:"player_name,omitempty"`
	PlayerNumber string   `dynamodbav:"player_number,omitempty"`
	PatchImages  []string `dynamodbav:"patch_images,omitempty"`
	Quantity     int      `dynamodbav:"quantity"`
}

type addressRecord struct {
	RecipientName string `dynamodbav:"recipient_name,omitempty"`
	Street        string `dynamodbav:"street,omitempty"`
	Number        string `dynamodbav:"number,omitempty"`
	Complement    string `dynamodbav:"complement,omitempty"`
	District      string `dynamodbav:"district,omitempty"`
	City          string `dynamodbav:"city,omitempty"`
	State         string `dynamodbav:"state,omitempty"`
	PostalCode    string `dynamodbav:"postal_code,omitempty"`
	Country       string `dynamodbav:"country,omitempty"`
	Phone         string `dynamodbav:"phone,omitempty"`
}

type proofRecord struct {
	Reference  string `dynamodbav:"reference,omitempty"`
	ImageRef   string `dynamodbav:"image_ref,omitempty"`
	AttachedAt string `dynamodbav:"attached_at,omitempty"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-created_at-index (PK: status, SK: created_at)
//   - GSI: user_id-created_at-index (PK: user_id, SK: created_at)
//
// Tracking images and videos are string sets updated with ADD, so concurrent
// appends merge instead of overwriting each other.

type OrderDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoDBAPI) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderRecord(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}
	return unmarshalOrder(out.Item)
}

// List queries the status index when a status is given, the user index when
// only a user is given, and scans otherwise. Index queries return newest
// first.
//
// Filters run after Limit, so a page may come back short or empty while
// NextCursor is still set. Only an empty NextCursor ends the listing.
func (r *OrderDynamoRepository) List(ctx context.Context, filter entities.OrderFilter, page entities.Page) (entities.OrderPage, error) {
	page = page.Normalize()
	startKey, err := decodeCursor(page.Cursor)
	if err != nil {
		return entities.OrderPage{}, err
	}

	var (
		rawItems []map[string]types.AttributeValue
		lastKey  map[string]types.AttributeValue
	)
	switch {
	case filter.Status != "":
		in := &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(ordersStatusIndex),
			KeyConditionExpression: aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(filter.Status)},
			},
			ScanIndexForward:  aws.Bool(false),
			Limit:             aws.Int32(int32(page.Limit)),
			ExclusiveStartKey: startKey,
		}
		if filter.UserID != "" {
			in.FilterExpression = aws.String("#user_id = :user_id")
			in.ExpressionAttributeNames["#user_id"] = "user_id"
			in.ExpressionAttributeValues[":user_id"] = &types.AttributeValueMemberS{Value: filter.UserID}
		}
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return entities.OrderPage{}, err
		}
		rawItems, lastKey = out.Items, out.LastEvaluatedKey
	case filter.UserID != "":
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(ordersUserIndex),
			KeyConditionExpression: aws.String("#user_id = :user_id"),
			ExpressionAttributeNames: map[string]string{
				"#user_id": "user_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":user_id": &types.AttributeValueMemberS{Value: filter.UserID},
			},
			ScanIndexForward:  aws.Bool(false),
			Limit:             aws.Int32(int32(page.Limit)),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return entities.OrderPage{}, err
		}
		rawItems, lastKey = out.Items, out.LastEvaluatedKey
	default:
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			Limit:             aws.Int32(int32(page.Limit)),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return entities.OrderPage{}, err
		}
		rawItems, lastKey = out.Items, out.LastEvaluatedKey
	}

	orders := make([]entities.Order, 0, len(rawItems))
	for _, raw := range rawItems {
		o, err := unmarshalOrder(raw)
		if err != nil {
			return entities.OrderPage{}, err
		}
		orders = append(orders, o)
	}
	next, err := encodeCursor(lastKey)
	if err != nil {
		return entities.OrderPage{}, err
	}
	return entities.OrderPage{Orders: orders, NextCursor: next}, nil
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) UpdatePrice(ctx context.Context, id string, amount decimal.Decimal) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #total_price = :total_price, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":total_price": &types.AttributeValueMemberS{Value: amount.String()},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#total_price": "total_price",
			"#updated_at":  "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) UpdateProof(ctx context.Context, id string, proof entities.ProofOfPayment) (entities.Order, error) {
	av, err := attributevalue.Marshal(toProofRecord(proof))
	if err != nil {
		return entities.Order{}, err
	}
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #proof = :proof, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":proof":      av,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#proof":      "proof",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

// UpdateTracking adds images and videos to the stored sets and replaces the
// text when one is given. Nothing already stored is ever removed.
func (r *OrderDynamoRepository) UpdateTracking(ctx context.Context, id string, update entities.TrackingUpdate) (entities.Order, error) {
	images := entities.MergeRefs(nil, update.Images)
	videos := entities.MergeRefs(nil, update.Videos)

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#updated_at": "updated_at",
		}
		if update.Text != "" {
			expr += ", #tracking_text = :tracking_text"
			vals[":tracking_text"] = &types.AttributeValueMemberS{Value: update.Text}
			names["#tracking_text"] = "tracking_text"
		}

		var adds []string
		if len(images) > 0 {
			adds = append(adds, "#tracking_images :tracking_images")
			vals[":tracking_images"] = &types.AttributeValueMemberSS{Value: images}
			names["#tracking_images"] = "tracking_images"
		}
		if len(videos) > 0 {
			adds = append(adds, "#tracking_videos :tracking_videos")
			vals[":tracking_videos"] = &types.AttributeValueMemberSS{Value: videos}
			names["#tracking_videos"] = "tracking_videos"
		}
		for i, a := range adds {
			if i == 0 {
				expr += " ADD " + a
				continue
			}
			expr += ", " + a
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	return unmarshalOrder(out.Attributes)
}

func unmarshalOrder(raw map[string]types.AttributeValue) (entities.Order, error) {
	var rec orderRecord
	if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
		return entities.Order{}, err
	}
	return fromOrderRecord(rec), nil
}

func toOrderRecord(o entities.Order) orderRecord {
	items := make([]orderItemRecord, len(o.Items))
	for i, it := range o.Items {
		rec := orderItemRecord{
			ProductType:  string(it.ProductType),
			ShirtTypeID:  it.ShirtTypeID,
			Size:         it.Size,
			PlayerName:   it.PlayerName,
			PlayerNumber: it.PlayerNumber,
			PatchImages:  it.PatchImages,
			Quantity:     it.Quantity,
		}
		if it.ProductPrice != nil {
			rec.ProductPrice = it.ProductPrice.String()
		}
		items[i] = rec
	}

	rec := orderRecord{
		ID:             o.ID,
		UserID:         o.UserID,
		ContactEmail:   o.ContactEmail,
		Items:          items,
		Status:         string(o.Status),
		TotalPrice:     o.TotalPrice.String(),
		Address:        addressRecord(o.Address),
		TrackingText:   o.TrackingText,
		TrackingImages: nilIfEmpty(entities.MergeRefs(nil, o.TrackingImages)),
		TrackingVideos: nilIfEmpty(entities.MergeRefs(nil, o.TrackingVideos)),
		CreatedAt:      o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if o.Proof != nil {
		p := toProofRecord(*o.Proof)
		rec.Proof = &p
	}
	return rec
}

// nilIfEmpty keeps empty ref lists off the item. attributevalue writes an
// empty non-nil slice as NULL, and ADD on a NULL attribute fails.
func nilIfEmpty(refs []string) []string {
	if len(refs) == 0 {
		return nil
	}
	return refs
}

func fromOrderRecord(rec orderRecord) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, rec.UpdatedAt)
	total, _ := decimal.NewFromString(rec.TotalPrice)

	items := make([]entities.OrderItem, len(rec.Items))
	for i, it := range rec.Items {
		item := entities.OrderItem{
			ProductType:  entities.ProductType(it.ProductType),
			ShirtTypeID:  it.ShirtTypeID,
			Size:         it.Size,
			PlayerName:   it.PlayerName,
			PlayerNumber: it.PlayerNumber,
			PatchImages:  it.PatchImages,
			Quantity:     it.Quantity,
		}
		if it.ProductPrice != "" {
			if p, err := decimal.NewFromString(it.ProductPrice); err == nil {
				item.ProductPrice = &p
			}
		}
		items[i] = item
	}

	o := entities.Order{
		ID:             rec.ID,
		UserID:         rec.UserID,
		ContactEmail:   rec.ContactEmail,
		Items:          items,
		Status:         entities.OrderStatus(rec.Status),
		TotalPrice:     total,
		Address:        entities.Address(rec.Address),
		TrackingText:   rec.TrackingText,
		TrackingImages: sortedRefs(rec.TrackingImages),
		TrackingVideos: sortedRefs(rec.TrackingVideos),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
	if rec.Proof != nil {
		attachedAt, _ := time.Parse(time.RFC3339Nano, rec.Proof.AttachedAt)
		o.Proof = &entities.ProofOfPayment{
			Reference:  rec.Proof.Reference,
			ImageRef:   rec.Proof.ImageRef,
			AttachedAt: attachedAt,
		}
	}
	return o
}

func toProofRecord(p entities.ProofOfPayment) proofRecord {
	rec := proofRecord{Reference: p.Reference, ImageRef: p.ImageRef}
	if !p.AttachedAt.IsZero() {
		rec.AttachedAt = p.AttachedAt.UTC().Format(time.RFC3339Nano)
	}
	return rec
}

// sortedRefs gives string sets, which DynamoDB returns unordered, a stable
// order.
func sortedRefs(refs []string) []string {
	if len(refs) == 0 {
		return nil
	}
	out := append([]string(nil), refs...)
	sort.Strings(out)
	return out
}
