package entities

// OrderFilter narrows an order listing. Zero values mean "any".
type OrderFilter struct {
	Status OrderStatus
	UserID string
}

// Page requests one page of a listing. Cursor is opaque and comes from a
// previous OrderPage.NextCursor.
type Page struct {
	Limit  int
	Cursor string
}

const (
	DefaultPageLimit = 25
	MaxPageLimit     = 100
)

// Normalize clamps Limit into [1, MaxPageLimit].
func (p Page) Normalize() Page {
	switch {
	case p.Limit <= 0:
		p.Limit = DefaultPageLimit
	case p.Limit > MaxPageLimit:
		p.Limit = MaxPageLimit
	}
	return p
}

type OrderPage struct {
	Orders     []Order
	NextCursor string
}

// ExportFile is a generated report ready to be downloaded.
type ExportFile struct {
	Name        string
	ContentType string
	Content     []byte
}
