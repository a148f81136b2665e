package response

import (
	"time"

	"loja_merch/internal/domain/entities"
	"loja_merch/internal/usecase"
)

type OrderItemResponse struct {
	ProductType  string   `json:"product_type"`
	ShirtTypeID  string   `json:"shirt_type_id,omitempty"`
	ProductPrice *string  `json:"product_price,omitempty"`
	Size         string   `json:"size,omitempty"`
	PlayerName   string   `json:"player_name,omitempty"`
	PlayerNumber string   `json:"player_number,omitempty"`
	PatchImages  []string `json:"patch_images,omitempty"`
	Quantity     int      `json:"quantity"`
}

type AddressResponse struct {
	RecipientName string `json:"recipient_name,omitempty"`
	Street        string `json:"street"`
	Number        string `json:"number,omitempty"`
	Complement    string `json:"complement,omitempty"`
	District      string `json:"district,omitempty"`
	City          string `json:"city"`
	State         string `json:"state,omitempty"`
	PostalCode    string `json:"postal_code"`
	Country       string `json:"country,omitempty"`
	Phone         string `json:"phone,omitempty"`
}

type ProofResponse struct {
	Reference  string    `json:"reference,omitempty"`
	ImageRef   string    `json:"image_ref,omitempty"`
	AttachedAt time.Time `json:"attached_at"`
}

type TrackingResponse struct {
	Text   string   `json:"text,omitempty"`
	Images []string `json:"images"`
	Videos []string `json:"videos"`
}

type OrderResponse struct {
	ID           string              `json:"id"`
	UserID       string              `json:"user_id"`
	ContactEmail string              `json:"contact_email,omitempty"`
	Status       string              `json:"status"`
	StatusLabel  string              `json:"status_label"`
	TotalPrice   string              `json:"total_price"`
	TotalDisplay string              `json:"total_display"`
	Items        []OrderItemResponse `json:"items"`
	Address      AddressResponse     `json:"address"`
	Proof        *ProofResponse      `json:"proof,omitempty"`
	Tracking     TrackingResponse    `json:"tracking"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

type OrderPageResponse struct {
	Orders     []OrderResponse `json:"orders"`
	NextCursor string          `json:"next_cursor,omitempty"`
}

type QuoteLineResponse struct {
	Index           int    `json:"index"`
	Base            string `json:"base"`
	Patches         string `json:"patches"`
	Personalization string `json:"personalization"`
	UnitPrice       string `json:"unit_price"`
	Quantity        int    `json:"quantity"`
	LineTotal       string `json:"line_total"`
}

type QuoteResponse struct {
	Lines        []QuoteLineResponse `json:"lines"`
	Total        string              `json:"total"`
	TotalDisplay string              `json:"total_display"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		item := OrderItemResponse{
			ProductType:  string(it.ProductType),
			ShirtTypeID:  it.ShirtTypeID,
			Size:         it.Size,
			PlayerName:   it.PlayerName,
			PlayerNumber: it.PlayerNumber,
			PatchImages:  it.PatchImages,
			Quantity:     it.EffectiveQuantity(),
		}
		if it.ProductPrice != nil {
			p := entities.FormatMoney(*it.ProductPrice)
			item.ProductPrice = &p
		}
		items = append(items, item)
	}

	resp := OrderResponse{
		ID:           o.ID,
		UserID:       o.UserID,
		ContactEmail: o.ContactEmail,
		Status:       string(o.Status),
		StatusLabel:  o.Status.Label(),
		TotalPrice:   entities.FormatMoney(o.TotalPrice),
		TotalDisplay: DisplayBRL(o.TotalPrice),
		Items:        items,
		Address: AddressResponse{
			RecipientName: o.Address.RecipientName,
			Street:        o.Address.Street,
			Number:        o.Address.Number,
			Complement:    o.Address.Complement,
			District:      o.Address.District,
			City:          o.Address.City,
			State:         o.Address.State,
			PostalCode:    o.Address.PostalCode,
			Country:       o.Address.Country,
			Phone:         o.Address.Phone,
		},
		Tracking: TrackingResponse{
			Text:   o.TrackingText,
			Images: nonNil(o.TrackingImages),
			Videos: nonNil(o.TrackingVideos),
		},
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
	if o.Proof != nil {
		resp.Proof = &ProofResponse{Reference: o.Proof.Reference, ImageRef: o.Proof.ImageRef, AttachedAt: o.Proof.AttachedAt}
	}
	return resp
}

func FromOrderPage(p entities.OrderPage) OrderPageResponse {
	orders := make([]OrderResponse, 0, len(p.Orders))
	for _, o := range p.Orders {
		orders = append(orders, FromOrder(o))
	}
	return OrderPageResponse{Orders: orders, NextCursor: p.NextCursor}
}

func FromQuote(q usecase.Quote) QuoteResponse {
	lines := make([]QuoteLineResponse, 0, len(q.Lines))
	for _, l := range q.Lines {
		lines = append(lines, QuoteLineResponse{
			Index:           l.Index,
			Base:            entities.FormatMoney(l.Base),
			Patches:         entities.FormatMoney(l.Patches),
			Personalization: entities.FormatMoney(l.Personalization),
			UnitPrice:       entities.FormatMoney(l.UnitPrice),
			Quantity:        l.Quantity,
			LineTotal:       entities.FormatMoney(l.LineTotal),
		})
	}
	return QuoteResponse{Lines: lines, Total: entities.FormatMoney(q.Total), TotalDisplay: DisplayBRL(q.Total)}
}

func nonNil(refs []string) []string {
	if refs == nil {
		return []string{}
	}
	return refs
}
