package request

import (
	"testing"

	"loja_merch/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "Silva", SanitizeText("  <b>Silva</b> "))
	assert.Equal(t, "", SanitizeText("<script>alert(1)</script>"))
	assert.Equal(t, "Pai & Filho", SanitizeText("Pai & Filho"))
}

func TestCreateOrderRequest_ToCommand(t *testing.T) {
	req := CreateOrderRequest{
		UserID:       " user-1 ",
		ContactEmail: "fan@example.com",
		Items: []OrderItemRequest{{
			ProductType: " Shirt ",
			ShirtTypeID: " classic ",
			PlayerName:  "<i>Silva</i>",
			PatchImages: []string{"p1", " ", "<b></b>"},
		}},
		Address: AddressRequest{Street: "Rua A", City: "Recife", PostalCode: "50000-000"},
		Proof:   &ProofRequest{Reference: " pix-1 "},
	}

	cmd := req.ToCommand()
	assert.Equal(t, "user-1", cmd.UserID)
	require.Len(t, cmd.Items, 1)
	assert.Equal(t, entities.ProductTypeShirt, cmd.Items[0].ProductType)
	assert.Equal(t, "classic", cmd.Items[0].ShirtTypeID)
	assert.Equal(t, "Silva", cmd.Items[0].PlayerName)
	assert.Equal(t, []string{"p1"}, cmd.Items[0].PatchImages)
	assert.Equal(t, "Recife", cmd.Address.City)
	require.NotNil(t, cmd.Proof)
	assert.Equal(t, "pix-1", cmd.Proof.Reference)
}

func TestChangesRequest_IsEmpty(t *testing.T) {
	assert.True(t, ChangesRequest{}.IsEmpty())
	status := "processing"
	assert.False(t, ChangesRequest{Status: &status}.IsEmpty())
}
