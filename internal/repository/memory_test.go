package repository

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"medsupply/internal/domain"
)

func newMedicine(t *testing.T, name string, price float64) domain.Medicine {
	t.Helper()
	b, err := domain.NewBatch("B1", "2030-01-01")
	if err != nil {
		t.Fatal(err)
	}
	m, err := domain.NewMedicine(name, b, price, "V001")
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestMemoryStore_MedicineCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	m := newMedicine(t, "Aspirin", 10)
	if err := store.Create(ctx, m); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.Create(ctx, m); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected duplicate rejection, got %v", err)
	}

	got, err := store.GetByID(ctx, m.ID)
	if err != nil || got.ID != m.ID {
		t.Fatalf("get: %v", err)
	}

	m.Price = 12
	if err := store.Update(ctx, m); err != nil {
		t.Fatalf("update: %v", err)
	}
	list, _ := store.List(ctx, MedicineFilter{NameSubstring: "asp"})
	if len(list) != 1 || list[0].Price != 12 {
		t.Fatalf("list: %+v", list)
	}

	if err := store.Delete(ctx, m.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.GetByID(ctx, m.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMemoryBatches_DuplicatesAllowed(t *testing.T) {
	ctx := context.Background()
	batches := NewMemoryBatches(NewMemoryStore())

	_ = batches.Create(ctx, domain.Batch{Number: "B1", ExpiryDate: "2030-01-01"})
	_ = batches.Create(ctx, domain.Batch{Number: "B1", ExpiryDate: "2031-01-01"})

	list, _ := batches.List(ctx)
	if len(list) != 2 {
		t.Fatalf("expected 2 batches, got %d", len(list))
	}
	b, err := batches.GetByNumber(ctx, "B1")
	if err != nil || b.ExpiryDate != "2030-01-01" {
		t.Fatalf("expected first registered batch, got %+v %v", b, err)
	}
	if _, err := batches.GetByNumber(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMemoryStock_ZeroEntriesRemoved(t *testing.T) {
	ctx := context.Background()
	stock := NewMemoryStock(NewMemoryStore())

	if _, err := stock.Add(ctx, "a", 0); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if q, _ := stock.Add(ctx, "a", 3); q != 3 {
		t.Fatalf("add: %d", q)
	}
	if q, _ := stock.Add(ctx, "a", 2); q != 5 {
		t.Fatalf("accumulate: %d", q)
	}
	if _, err := stock.Remove(ctx, "a", 6); !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected insufficient stock, got %v", err)
	}
	if q, _ := stock.Quantity(ctx, "a"); q != 5 {
		t.Fatalf("quantity changed after failed remove: %d", q)
	}
	if _, err := stock.Remove(ctx, "a", 5); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := stock.Quantity(ctx, "a"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found after depletion, got %v", err)
	}
	list, _ := stock.List(ctx)
	if len(list) != 0 {
		t.Fatalf("zero entry leaked: %+v", list)
	}
}

func TestMemoryOrders_Mailbox(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	vendors := NewMemoryVendors(store)
	orders := NewMemoryOrders(store)

	if err := vendors.Create(ctx, domain.Vendor{ID: "V1", Name: "Acme", ContactInfo: "x"}); err != nil {
		t.Fatal(err)
	}
	o := domain.OrderRecord{VendorID: "V1", MedicineID: "m", Quantity: 4}
	if err := orders.AddPending(ctx, &o); err != nil {
		t.Fatal(err)
	}
	if o.OrderID == "" || o.Status != domain.OrderStatusPending {
		t.Fatalf("order not initialised: %+v", o)
	}

	done, err := orders.MarkFulfilled(ctx, "V1", o.OrderID)
	if err != nil || done.FulfilledAt == nil {
		t.Fatalf("fulfill: %+v %v", done, err)
	}
	pending, _ := orders.List(ctx, "V1", domain.OrderStatusPending)
	fulfilled, _ := orders.List(ctx, "V1", domain.OrderStatusFulfilled)
	if len(pending) != 0 || len(fulfilled) != 1 {
		t.Fatalf("pending=%d fulfilled=%d", len(pending), len(fulfilled))
	}
	if _, err := orders.MarkFulfilled(ctx, "V1", o.OrderID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second fulfill: %v", err)
	}

	if err := vendors.Delete(ctx, "V1"); err != nil {
		t.Fatal(err)
	}
	if _, err := orders.List(ctx, "V1", domain.OrderStatusPending); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("mailbox should go with vendor: %v", err)
	}
}

func TestMemoryTx_TransactionalUpdate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	tx := NewMemoryTx(store)
	stock := NewMemoryStock(store)
	sales := NewMemorySales(store)

	// seed stock
	if _, err := stock.Add(ctx, "a", 5); err != nil {
		t.Fatal(err)
	}

	// emulate checkout: debit stock and append sale under one lock
	err := tx.WithTransaction(ctx, func(ctx context.Context) error {
		q, err := stock.Quantity(ctx, "a")
		if err != nil {
			return err
		}
		if q < 3 {
			t.Fatalf("stock precondition")
		}
		if _, err := stock.Remove(ctx, "a", 3); err != nil {
			return err
		}
		s := domain.Sale{Lines: []domain.SaleLine{{MedicineID: "a", Quantity: 3, UnitPrice: 1}}, Total: 3}
		return sales.Append(ctx, &s)
	})
	if err != nil {
		t.Fatalf("tx: %v", err)
	}

	q, _ := stock.Quantity(ctx, "a")
	if q != 2 {
		t.Fatalf("expected stock 2, got %d", q)
	}
	list, _ := sales.List(ctx)
	if len(list) != 1 || list[0].ID == "" {
		t.Fatalf("sale not recorded: %+v", list)
	}
}

func TestMemoryStock_AddOverflowRejected(t *testing.T) {
	ctx := context.Background()
	stock := NewMemoryStock(NewMemoryStore())

	if _, err := stock.Add(ctx, "a", math.MaxInt64); err != nil {
		t.Fatal(err)
	}
	if _, err := stock.Add(ctx, "a", 1); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if q, _ := stock.Quantity(ctx, "a"); q != math.MaxInt64 {
		t.Fatalf("quantity changed after overflow: %d", q)
	}
}

func TestMemoryTx_ReadTransactionSharesLock(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	tx := NewMemoryTx(store)
	stock := NewMemoryStock(store)
	if _, err := stock.Add(ctx, "a", 2); err != nil {
		t.Fatal(err)
	}

	err := tx.WithReadTransaction(ctx, func(ctx context.Context) error {
		// a second reader outside the snapshot must not block
		done := make(chan error, 1)
		go func() {
			_, err := stock.Quantity(context.Background(), "a")
			done <- err
		}()
		select {
		case err := <-done:
			return err
		case <-time.After(time.Second):
			t.Fatal("concurrent reader blocked by read transaction")
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}
