package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBatch(t *testing.T) {
	b, err := NewBatch("B001", "2025-12-31")
	require.NoError(t, err)
	assert.Equal(t, "B001", b.Number)
	assert.True(t, b.ExpiredBefore("2026-01-01"))
	assert.False(t, b.ExpiredBefore("2025-12-31"))

	_, err = NewBatch("", "2025-12-31")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewBatch("B002", "31-12-2025")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewVendor_RequiresAllFields(t *testing.T) {
	cases := [][3]string{
		{"", "Name", "contact@a.com"},
		{"V002", "", "contact@a.com"},
		{"V002", "Name", ""},
	}
	for _, c := range cases {
		_, err := NewVendor(c[0], c[1], c[2])
		assert.ErrorIs(t, err, ErrInvalidArgument, "%v", c)
	}
	v, err := NewVendor("V001", "HealthCorp", "contact@healthcorp.com")
	require.NoError(t, err)
	assert.Equal(t, "HealthCorp", v.Name)
}

func TestNewMedicine(t *testing.T) {
	batch, _ := NewBatch("B001", "2025-12-31")

	m1, err := NewMedicine("Vitamin C 500", batch, 10.99, "V001")
	require.NoError(t, err)
	m2, err := NewMedicine("Vitamin C 500", batch, 10.99, "V001")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(m1.ID, "vitamin_c_500_"))
	assert.NotEqual(t, m1.ID, m2.ID, "same name must still get distinct identifiers")

	_, err = NewMedicine(" ", batch, 1, "V001")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewMedicine("Aspirin", batch, 0, "V001")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewMedicine("Aspirin", Batch{}, 1, "V001")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewMedicine("Aspirin", batch, 1, "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "paracetamol", Slugify("Paracetamol"))
	assert.Equal(t, "vitamin_c_500mg", Slugify("  Vitamin C - 500mg "))
}

func TestSale_Receipt(t *testing.T) {
	s := Sale{ID: "s1", Lines: []SaleLine{{MedicineID: "a", Name: "Aspirin", Quantity: 3, UnitPrice: 2.5}}, Total: 7.5}
	r := s.Receipt()
	require.Len(t, r.Items, 1)
	assert.Equal(t, "s1", r.SaleID)
	assert.InDelta(t, 7.5, r.Items[0].Subtotal, 1e-9)
	assert.InDelta(t, 7.5, r.Total, 1e-9)
}
