package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMedicine(t *testing.T, name string, price float64) *Medicine {
	t.Helper()
	batch, err := NewBatch("B-"+name, "2030-01-01")
	require.NoError(t, err)
	m, err := NewMedicine(name, batch, price, "V001")
	require.NoError(t, err)
	return &m
}

func TestCart_AddItem(t *testing.T) {
	c := NewCart()
	med := testMedicine(t, "Paracetamol", 10)

	require.NoError(t, c.AddItem(med, 1))
	require.NoError(t, c.AddItem(med, 2))
	assert.Equal(t, int64(3), c.Quantity(med.ID))
	assert.Equal(t, 1, c.Len())

	assert.ErrorIs(t, c.AddItem(nil, 1), ErrInvalidArgument)
	assert.ErrorIs(t, c.AddItem(med, 0), ErrInvalidArgument)
}

func TestCart_RemoveItem(t *testing.T) {
	c := NewCart()
	med := testMedicine(t, "Paracetamol", 10)
	require.NoError(t, c.AddItem(med, 3))

	require.NoError(t, c.RemoveItem(med.ID, 2))
	assert.Equal(t, int64(1), c.Quantity(med.ID))

	assert.ErrorIs(t, c.RemoveItem(med.ID, 2), ErrInsufficientStock)
	assert.Equal(t, int64(1), c.Quantity(med.ID))

	require.NoError(t, c.RemoveItem(med.ID, 1))
	assert.Equal(t, 0, c.Len())
	assert.ErrorIs(t, c.RemoveItem(med.ID, 1), ErrNotFound)
}

func TestCart_TotalAndOrder(t *testing.T) {
	c := NewCart()
	a := testMedicine(t, "Aspirin", 9.99)
	b := testMedicine(t, "Ibuprofen", 5)
	require.NoError(t, c.AddItem(a, 3))
	require.NoError(t, c.AddItem(b, 2))

	assert.InDelta(t, 39.97, c.Total(), 1e-9)
	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "Aspirin", lines[0].Medicine.Name)
	assert.Equal(t, "Ibuprofen", lines[1].Medicine.Name)
}

func TestCart_AddItemOverflow(t *testing.T) {
	c := NewCart()
	med := testMedicine(t, "Ibuprofen", 5)
	require.NoError(t, c.AddItem(med, math.MaxInt64))

	assert.ErrorIs(t, c.AddItem(med, 2), ErrInvalidArgument)
	assert.Equal(t, int64(math.MaxInt64), c.Quantity(med.ID))
}
