package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type ProductType string

const (
	ProductTypeShirt ProductType = "shirt"
	ProductTypeShoes ProductType = "shoes"
)

func (p ProductType) IsValid() bool {
	return p == ProductTypeShirt || p == ProductTypeShoes
}

// Order is one customer purchase.
//
// Mutability rules:
//   - ID, UserID, Items, Address and CreatedAt never change after creation.
//   - Status changes only through the lifecycle state machine.
//   - TotalPrice is admin-editable only while Status is to_quote.
//   - Tracking collections are append-only.
type Order struct {
	ID           string
	UserID       string
	ContactEmail string
	Items        []OrderItem
	Status       OrderStatus
	TotalPrice   decimal.Decimal
	Address      Address
	Proof        *ProofOfPayment

	TrackingText   string
	TrackingImages []string
	TrackingVideos []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasProof reports whether a usable proof of payment is attached.
func (o Order) HasProof() bool {
	return o.Proof != nil && o.Proof.HasProof()
}

// OrderItem is one purchasable unit of an order.
type OrderItem struct {
	ProductType  ProductType
	ShirtTypeID  string
	ProductPrice *decimal.Decimal
	Size         string
	PlayerName   string
	PlayerNumber string
	PatchImages  []string
	Quantity     int
}

// EffectiveQuantity treats an unset quantity as 1.
func (i OrderItem) EffectiveQuantity() int {
	if i.Quantity == 0 {
		return 1
	}
	return i.Quantity
}

// IsPersonalized is true when a player name or number was filled in.
func (i OrderItem) IsPersonalized() bool {
	return strings.TrimSpace(i.PlayerName) != "" || strings.TrimSpace(i.PlayerNumber) != ""
}

// Address is the shipping address captured at submission time. It is a copy,
// not a reference to the customer's address book.
type Address struct {
	RecipientName string
	Street        string
	Number        string
	Complement    string
	District      string
	City          string
	State         string
	PostalCode    string
	Country       string
	Phone         string
}

func (a Address) IsZero() bool {
	return a == Address{}
}

// ProofOfPayment records an externally verified payment.
type ProofOfPayment struct {
	Reference  string
	ImageRef   string
	AttachedAt time.Time
}

func (p ProofOfPayment) HasProof() bool {
	return strings.TrimSpace(p.Reference) != "" || strings.TrimSpace(p.ImageRef) != ""
}

// TrackingUpdate carries new tracking entries for an order. Images and videos
// are added to the existing collections.
type TrackingUpdate struct {
	Text   string
	Images []string
	Videos []string
}

func (t TrackingUpdate) IsEmpty() bool {
	return strings.TrimSpace(t.Text) == "" && len(t.Images) == 0 && len(t.Videos) == 0
}

// MergeRefs appends the refs of add missing from base, keeping base order.
// Blank refs are dropped.
func MergeRefs(base, add []string) []string {
	seen := make(map[string]struct{}, len(base)+len(add))
	out := make([]string, 0, len(base)+len(add))
	for _, list := range [][]string{base, add} {
		for _, ref := range list {
			ref = strings.TrimSpace(ref)
			if ref == "" {
				continue
			}
			if _, ok := seen[ref]; ok {
				continue
			}
			seen[ref] = struct{}{}
			out = append(out, ref)
		}
	}
	return out
}

// MissingRefs returns the refs of add that are not already in base.
func MissingRefs(base, add []string) []string {
	merged := MergeRefs(base, add)
	return merged[len(MergeRefs(base, nil)):]
}
