package service

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medsupply/internal/domain"
)

type recorderStub struct {
	mu    sync.Mutex
	sales []domain.Sale
	err   error
}

func (r *recorderStub) RecordSale(_ context.Context, s domain.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales = append(r.sales, s)
	return r.err
}

func TestCheckout_AspirinScenario(t *testing.T) {
	ctx := context.Background()
	s := setup(t)
	aspirin := s.stocked(t, "Aspirin", 9.99, 10)

	cart := s.carts.NewCart()
	require.NoError(t, cart.AddItem(aspirin, 3))

	receipt, err := s.carts.Checkout(ctx, cart)
	require.NoError(t, err)
	assert.InDelta(t, 29.97, receipt.Total, 1e-9)
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, "Aspirin", receipt.Items[0].Name)
	assert.Equal(t, int64(3), receipt.Items[0].Quantity)
	assert.NotEmpty(t, receipt.SaleID)

	q, err := s.inventory.GetQuantity(ctx, aspirin.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), q)

	history, err := s.sales.History(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestCheckout_AllOrNothing(t *testing.T) {
	ctx := context.Background()
	s := setup(t)
	aspirin := s.stocked(t, "Aspirin", 9.99, 10)
	ibuprofen := s.stocked(t, "Ibuprofen", 5, 1)

	cart := s.carts.NewCart()
	require.NoError(t, cart.AddItem(aspirin, 3))
	require.NoError(t, cart.AddItem(ibuprofen, 2))

	_, err := s.carts.Checkout(ctx, cart)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Ibuprofen")

	qa, _ := s.inventory.GetQuantity(ctx, aspirin.ID)
	qi, _ := s.inventory.GetQuantity(ctx, ibuprofen.ID)
	assert.Equal(t, int64(10), qa, "earlier line must not be debited")
	assert.Equal(t, int64(1), qi)

	history, _ := s.sales.History(ctx)
	assert.Empty(t, history)
}

func TestCheckout_DepletionRemovesEntry(t *testing.T) {
	ctx := context.Background()
	s := setup(t)
	m := s.stocked(t, "Aspirin", 1, 2)

	cart, err := s.carts.CartFromItems(ctx, []CartItem{{MedicineID: m.ID, Quantity: 2}})
	require.NoError(t, err)
	_, err = s.carts.Checkout(ctx, cart)
	require.NoError(t, err)

	_, err = s.inventory.GetQuantity(ctx, m.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// out of stock medicine is reported as insufficient, not missing
	cart, err = s.carts.CartFromItems(ctx, []CartItem{{MedicineID: m.ID, Quantity: 1}})
	require.NoError(t, err)
	_, err = s.carts.Checkout(ctx, cart)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestCheckout_InvalidCarts(t *testing.T) {
	ctx := context.Background()
	s := setup(t)
	m := s.stocked(t, "Aspirin", 1, 2)

	_, err := s.carts.Checkout(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, err = s.carts.Checkout(ctx, s.carts.NewCart())
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = s.carts.CartFromItems(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, err = s.carts.CartFromItems(ctx, []CartItem{{MedicineID: "missing", Quantity: 1}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.carts.CartFromItems(ctx, []CartItem{{MedicineID: m.ID, Quantity: 0}})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestCheckout_DeadlineLeavesStockUntouched(t *testing.T) {
	s := setup(t)
	m := s.stocked(t, "Aspirin", 1, 2)
	cart := s.carts.NewCart()
	require.NoError(t, cart.AddItem(m, 1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	_, err := s.carts.Checkout(ctx, cart)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
	q, _ := s.inventory.GetQuantity(context.Background(), m.ID)
	assert.Equal(t, int64(2), q)
}

func TestCheckout_ConcurrentLastUnit(t *testing.T) {
	ctx := context.Background()
	s := setup(t)
	m := s.stocked(t, "Aspirin", 1, 1)

	const buyers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cart := s.carts.NewCart()
			if err := cart.AddItem(m, 1); err != nil {
				return
			}
			if _, err := s.carts.Checkout(ctx, cart); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes, "only one checkout may take the last unit")
	history, _ := s.sales.History(ctx)
	assert.Len(t, history, 1)
}

func TestCheckout_RecorderFailureDoesNotFailCheckout(t *testing.T) {
	ctx := context.Background()
	s := setup(t)
	rec := &recorderStub{err: errors.New("disk full")}
	s.carts.WithRecorder(rec)
	m := s.stocked(t, "Aspirin", 2, 5)

	cart := s.carts.NewCart()
	require.NoError(t, cart.AddItem(m, 2))
	receipt, err := s.carts.Checkout(ctx, cart)
	require.NoError(t, err)

	require.Len(t, rec.sales, 1)
	assert.Equal(t, receipt.SaleID, rec.sales[0].ID)
}

func TestCheckout_OverflowingLineLeavesStockUntouched(t *testing.T) {
	ctx := context.Background()
	s := setup(t)
	aspirin := s.stocked(t, "Aspirin", 9.99, 10)
	ibuprofen := s.stocked(t, "Ibuprofen", 5, 10)

	_, err := s.carts.CartFromItems(ctx, []CartItem{
		{MedicineID: aspirin.ID, Quantity: 3},
		{MedicineID: ibuprofen.ID, Quantity: math.MaxInt64},
		{MedicineID: ibuprofen.ID, Quantity: 2},
	})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	qa, _ := s.inventory.GetQuantity(ctx, aspirin.ID)
	qi, _ := s.inventory.GetQuantity(ctx, ibuprofen.ID)
	assert.Equal(t, int64(10), qa)
	assert.Equal(t, int64(10), qi)
	history, _ := s.sales.History(ctx)
	assert.Empty(t, history)
}
