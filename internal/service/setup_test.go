package service

import (
	"context"

	"go.uber.org/zap"

	"medsupply/internal/domain"
	"medsupply/internal/repository"
)

// fixtureT is satisfied by *testing.T and *rapid.T
type fixtureT interface {
	Helper()
	Fatalf(format string, args ...any)
}

type services struct {
	catalog   *CatalogService
	vendors   *VendorService
	inventory *InventoryService
	carts     *CartService
	sales     *SalesService
}

func setup(t fixtureT) *services {
	t.Helper()
	log := zap.NewNop()
	store := repository.NewMemoryStore()
	batches := repository.NewMemoryBatches(store)
	vendorsRepo := repository.NewMemoryVendors(store)
	orders := repository.NewMemoryOrders(store)
	stock := repository.NewMemoryStock(store)
	salesRepo := repository.NewMemorySales(store)
	tx := repository.NewMemoryTx(store)

	vs := NewVendorService(vendorsRepo, orders, store, stock, tx, log)
	ss := NewSalesService(salesRepo, store, log)
	return &services{
		catalog:   NewCatalogService(batches, vendorsRepo, store, stock, tx, log),
		vendors:   vs,
		inventory: NewInventoryService(store, stock, vs, tx, log),
		carts:     NewCartService(store, stock, ss, tx, log),
		sales:     ss,
	}
}

// medicine registers vendor V001 and a batch on first use, then a medicine
func (s *services) medicine(t fixtureT, name string, price float64, expiry string) *domain.Medicine {
	t.Helper()
	ctx := context.Background()
	if _, err := s.catalog.GetVendor(ctx, "V001"); err != nil {
		if _, err := s.catalog.CreateVendor(ctx, "V001", "Acme Corp", "123-456-7890"); err != nil {
			t.Fatalf("vendor: %v", err)
		}
	}
	batchNo := "B-" + expiry
	if _, err := s.catalog.GetBatch(ctx, batchNo); err != nil {
		if _, err := s.catalog.CreateBatch(ctx, batchNo, expiry); err != nil {
			t.Fatalf("batch: %v", err)
		}
	}
	m, err := s.catalog.CreateMedicine(ctx, name, batchNo, price, "V001")
	if err != nil {
		t.Fatalf("medicine: %v", err)
	}
	return m
}

func (s *services) stocked(t fixtureT, name string, price float64, qty int64) *domain.Medicine {
	t.Helper()
	m := s.medicine(t, name, price, "2030-01-01")
	if _, err := s.inventory.AddMedicine(context.Background(), m.ID, qty); err != nil {
		t.Fatalf("stock: %v", err)
	}
	return m
}
