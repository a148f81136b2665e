package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"loja_merch/internal/domain/entities"
	"loja_merch/internal/usecase/interfaces"
)

const contentTypeCSV = "text/csv; charset=utf-8"

var header = []string{
	"order_id", "created_at", "user_id", "contact_email", "status",
	"total", "items", "shipping_address", "tracking",
}

// CSVGenerator renders orders as one CSV row each.
type CSVGenerator struct {
	now func() time.Time
}

var _ interfaces.IOrderExporter = (*CSVGenerator)(nil)

func NewCSVGenerator() *CSVGenerator {
	return &CSVGenerator{now: time.Now}
}

func (g *CSVGenerator) ExportOrders(ctx context.Context, orders []entities.Order) (entities.ExportFile, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return entities.ExportFile{}, err
	}
	for _, o := range orders {
		if err := ctx.Err(); err != nil {
			return entities.ExportFile{}, err
		}
		if err := w.Write(row(o)); err != nil {
			return entities.ExportFile{}, fmt.Errorf("order %s: %w", o.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return entities.ExportFile{}, err
	}

	return entities.ExportFile{
		Name:        fmt.Sprintf("orders-%s.csv", g.now().UTC().Format("20060102-150405")),
		ContentType: contentTypeCSV,
		Content:     buf.Bytes(),
	}, nil
}

func row(o entities.Order) []string {
	return []string{
		safeCell(o.ID),
		o.CreatedAt.UTC().Format(time.RFC3339),
		safeCell(o.UserID),
		safeCell(o.ContactEmail),
		o.Status.Label(),
		entities.FormatMoney(o.TotalPrice),
		safeCell(summarizeItems(o.Items)),
		safeCell(formatAddress(o.Address)),
		safeCell(o.TrackingText),
	}
}

// safeCell quotes text that a spreadsheet would otherwise evaluate as a
// formula.
func safeCell(v string) string {
	if v == "" {
		return v
	}
	switch v[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + v
	}
	return v
}

// summarizeItems renders e.g. "2x shirt classic M #10 SILVA; 1x shoes".
func summarizeItems(items []entities.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		fields := []string{fmt.Sprintf("%dx %s", it.EffectiveQuantity(), it.ProductType)}
		for _, v := range []string{it.ShirtTypeID, it.Size} {
			if v = strings.TrimSpace(v); v != "" {
				fields = append(fields, v)
			}
		}
		if n := strings.TrimSpace(it.PlayerNumber); n != "" {
			fields = append(fields, "#"+n)
		}
		if n := strings.TrimSpace(it.PlayerName); n != "" {
			fields = append(fields, safeCell(n))
		}
		if len(it.PatchImages) > 0 {
			fields = append(fields, fmt.Sprintf("+%d patches", len(it.PatchImages)))
		}
		parts = append(parts, strings.Join(fields, " "))
	}
	return strings.Join(parts, "; ")
}

func formatAddress(a entities.Address) string {
	street := strings.TrimSpace(strings.Join(nonEmpty(a.Street, a.Number, a.Complement), " "))
	return strings.Join(nonEmpty(a.RecipientName, street, a.District, a.City, a.State, a.PostalCode, a.Country), ", ")
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
