package repository

import (
	"context"
	"errors"
	"fmt"

	"loja_merch/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultCatalogTableName = "catalog"
	shirtTypeKeyPrefix      = "shirt_type#"
	pricingSettingsKey      = "pricing_settings"
)

var ErrPricingSettingsMissing = errors.New("pricing settings not configured")

type shirtTypeRecord struct {
	ID    string `dynamodbav:"id"`
	Name  string `dynamodbav:"name,omitempty"`
	Price string `dynamodbav:"price"`
}

type pricingSettingsRecord struct {
	ID                 string `dynamodbav:"id"`
	PatchUnitPrice     string `dynamodbav:"patch_unit_price"`
	PersonalizationFee string `dynamodbav:"personalization_fee"`
}

// CatalogDynamoRepository reads the price table from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - one item per shirt type, id "shirt_type#<shirt type id>"
//   - one item with id "pricing_settings" holding the patch and personalization prices

type CatalogDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ICatalogProvider = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb DynamoDBAPI) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATALOG_TABLE", defaultCatalogTableName),
	}
}

func (r *CatalogDynamoRepository) GetShirtTypePrice(ctx context.Context, id string) (decimal.Decimal, bool, error) {
	raw, err := r.get(ctx, shirtTypeKeyPrefix+id)
	if err != nil || raw == nil {
		return decimal.Zero, false, err
	}

	var rec shirtTypeRecord
	if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
		return decimal.Zero, false, err
	}
	price, err := decimal.NewFromString(rec.Price)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("shirt type %s: invalid price %q: %w", id, rec.Price, err)
	}
	return price, true, nil
}

func (r *CatalogDynamoRepository) GetPatchUnitPrice(ctx context.Context) (decimal.Decimal, error) {
	settings, err := r.settings(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return parsePrice("patch_unit_price", settings.PatchUnitPrice)
}

func (r *CatalogDynamoRepository) GetPersonalizationFee(ctx context.Context) (decimal.Decimal, error) {
	settings, err := r.settings(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return parsePrice("personalization_fee", settings.PersonalizationFee)
}

func (r *CatalogDynamoRepository) settings(ctx context.Context) (pricingSettingsRecord, error) {
	raw, err := r.get(ctx, pricingSettingsKey)
	if err != nil {
		return pricingSettingsRecord{}, err
	}
	if raw == nil {
		return pricingSettingsRecord{}, ErrPricingSettingsMissing
	}
	var rec pricingSettingsRecord
	if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
		return pricingSettingsRecord{}, err
	}
	return rec, nil
}

func (r *CatalogDynamoRepository) get(ctx context.Context, id string) (map[string]types.AttributeValue, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return out.Item, nil
}

func parsePrice(field, raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: invalid price %q: %w", field, raw, err)
	}
	return d, nil
}
