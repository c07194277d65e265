// Package seed заполняет пустое хранилище демонстрационными данными
package seed

import (
	"context"
	"fmt"

	"medsupply/internal/service"
)

type vendor struct{ id, name, contact string }

type medicine struct {
	name   string
	batch  string
	price  float64
	vendor string
	stock  int64
}

var (
	vendors = []vendor{
		{"V001", "Acme Corp", "123-456-7890"},
		{"V002", "Globex Inc", "987-654-3210"},
	}
	batches = [][2]string{
		{"B001", "2025-12-31"},
		{"B002", "2026-06-30"},
	}
	medicines = []medicine{
		{"Aspirin", "B001", 9.99, "V001", 100},
		{"Ibuprofen", "B001", 5.49, "V001", 50},
		{"Amoxicillin", "B002", 25.00, "V002", 20},
		{"Paracetamol", "B002", 3.75, "V002", 5},
	}
)

// Load регистрирует поставщиков, партии и лекарства и кладёт их на склад
func Load(ctx context.Context, catalog *service.CatalogService, inventory *service.InventoryService) error {
	for _, v := range vendors {
		if _, err := catalog.CreateVendor(ctx, v.id, v.name, v.contact); err != nil {
			return fmt.Errorf("seed vendor %s: %w", v.id, err)
		}
	}
	for _, b := range batches {
		if _, err := catalog.CreateBatch(ctx, b[0], b[1]); err != nil {
			return fmt.Errorf("seed batch %s: %w", b[0], err)
		}
	}
	for _, m := range medicines {
		med, err := catalog.CreateMedicine(ctx, m.name, m.batch, m.price, m.vendor)
		if err != nil {
			return fmt.Errorf("seed medicine %s: %w", m.name, err)
		}
		if _, err := inventory.AddMedicine(ctx, med.ID, m.stock); err != nil {
			return fmt.Errorf("seed stock %s: %w", m.name, err)
		}
	}
	return nil
}
