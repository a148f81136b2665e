package request

import (
	"strings"

	"loja_merch/internal/domain/entities"
	"loja_merch/internal/usecase"

	"github.com/shopspring/decimal"
)

type OrderItemRequest struct {
	ProductType  string           `json:"product_type" binding:"required"`
	ShirtTypeID  string           `json:"shirt_type_id"`
	ProductPrice *decimal.Decimal `json:"product_price"`
	Size         string           `json:"size"`
	PlayerName   string           `json:"player_name"`
	PlayerNumber string           `json:"player_number"`
	PatchImages  []string         `json:"patch_images"`
	Quantity     int              `json:"quantity"`
}

type AddressRequest struct {
	RecipientName string `json:"recipient_name"`
	Street        string `json:"street" binding:"required"`
	Number        string `json:"number"`
	Complement    string `json:"complement"`
	District      string `json:"district"`
	City          string `json:"city" binding:"required"`
	State         string `json:"state"`
	PostalCode    string `json:"postal_code" binding:"required"`
	Country       string `json:"country"`
	Phone         string `json:"phone"`
}

type ProofRequest struct {
	Reference string `json:"reference"`
	ImageRef  string `json:"image_ref"`
}

// CreateOrderRequest is the checkout payload.
type CreateOrderRequest struct {
	UserID       string             `json:"user_id" binding:"required"`
	ContactEmail string             `json:"contact_email" binding:"omitempty,email"`
	Items        []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Address      AddressRequest     `json:"address"`
	Proof        *ProofRequest      `json:"proof"`
}

type QuoteRequest struct {
	Items []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r CreateOrderRequest) ToCommand() usecase.CreateOrderCommand {
	cmd := usecase.CreateOrderCommand{
		UserID:       strings.TrimSpace(r.UserID),
		ContactEmail: strings.TrimSpace(r.ContactEmail),
		Items:        toItems(r.Items),
		Address:      r.Address.ToEntity(),
	}
	if r.Proof != nil {
		proof := r.Proof.ToEntity()
		cmd.Proof = &proof
	}
	return cmd
}

func (r QuoteRequest) ToItems() []entities.OrderItem {
	return toItems(r.Items)
}

func toItems(in []OrderItemRequest) []entities.OrderItem {
	items := make([]entities.OrderItem, 0, len(in))
	for _, it := range in {
		items = append(items, entities.OrderItem{
			ProductType:  entities.ProductType(strings.ToLower(strings.TrimSpace(it.ProductType))),
			ShirtTypeID:  strings.TrimSpace(it.ShirtTypeID),
			ProductPrice: it.ProductPrice,
			Size:         strings.TrimSpace(it.Size),
			PlayerName:   SanitizeText(it.PlayerName),
			PlayerNumber: SanitizeText(it.PlayerNumber),
			PatchImages:  sanitizeRefs(it.PatchImages),
			Quantity:     it.Quantity,
		})
	}
	return items
}

func (a AddressRequest) ToEntity() entities.Address {
	return entities.Address{
		RecipientName: SanitizeText(a.RecipientName),
		Street:        SanitizeText(a.Street),
		Number:        SanitizeText(a.Number),
		Complement:    SanitizeText(a.Complement),
		District:      SanitizeText(a.District),
		City:          SanitizeText(a.City),
		State:         SanitizeText(a.State),
		PostalCode:    SanitizeText(a.PostalCode),
		Country:       SanitizeText(a.Country),
		Phone:         SanitizeText(a.Phone),
	}
}

func (p ProofRequest) ToEntity() entities.ProofOfPayment {
	return entities.ProofOfPayment{
		Reference: SanitizeText(p.Reference),
		ImageRef:  strings.TrimSpace(p.ImageRef),
	}
}
