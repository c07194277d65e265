package service

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"medsupply/internal/domain"
	"medsupply/internal/observability"
	"medsupply/internal/repository"
)

// CatalogService реестры партий, поставщиков и лекарств
type CatalogService struct {
	batches   repository.BatchRepository
	vendors   repository.VendorRepository
	medicines repository.MedicineRepository
	stock     repository.StockRepository
	tx        repository.TxManager
	log       *zap.Logger
	tracer    trace.Tracer
}

func NewCatalogService(
	batches repository.BatchRepository,
	vendors repository.VendorRepository,
	medicines repository.MedicineRepository,
	stock repository.StockRepository,
	tx repository.TxManager,
	log *zap.Logger,
) *CatalogService {
	return &CatalogService{
		batches:   batches,
		vendors:   vendors,
		medicines: medicines,
		stock:     stock,
		tx:        tx,
		log:       log,
		tracer:    observability.Tracer(),
	}
}

func (s *CatalogService) CreateBatch(ctx context.Context, number, expiryDate string) (*domain.Batch, error) {
	b, err := domain.NewBatch(number, expiryDate)
	if err != nil {
		return nil, err
	}
	if err := s.batches.Create(ctx, b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *CatalogService) GetBatch(ctx context.Context, number string) (*domain.Batch, error) {
	if number == "" {
		return nil, fmt.Errorf("%w: batch number is required", domain.ErrInvalidArgument)
	}
	return s.batches.GetByNumber(ctx, number)
}

func (s *CatalogService) ListBatches(ctx context.Context) ([]domain.Batch, error) {
	return s.batches.List(ctx)
}

func (s *CatalogService) CreateVendor(ctx context.Context, id, name, contactInfo string) (*domain.Vendor, error) {
	v, err := domain.NewVendor(id, name, contactInfo)
	if err != nil {
		return nil, err
	}
	if err := s.vendors.Create(ctx, v); err != nil {
		return nil, err
	}
	s.log.Info("vendor registered", zap.String("vendor_id", v.ID))
	return &v, nil
}

func (s *CatalogService) GetVendor(ctx context.Context, id string) (*domain.Vendor, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: vendor id is required", domain.ErrInvalidArgument)
	}
	return s.vendors.GetByID(ctx, id)
}

func (s *CatalogService) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	return s.vendors.List(ctx)
}

// DeleteVendor удаляет поставщика; его открытые заявки уходят вместе с ним
func (s *CatalogService) DeleteVendor(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: vendor id is required", domain.ErrInvalidArgument)
	}
	if err := s.vendors.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("vendor removed", zap.String("vendor_id", id))
	return nil
}

// CreateMedicine регистрирует лекарство; партия и поставщик должны существовать
func (s *CatalogService) CreateMedicine(ctx context.Context, name, batchNumber string, price float64, vendorID string) (*domain.Medicine, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.create_medicine",
		trace.WithAttributes(attribute.String("medicine.name", name), attribute.String("vendor.id", vendorID)))
	var err error
	defer func() { endSpan(span, err) }()

	var created *domain.Medicine
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		b, err := s.batches.GetByNumber(ctx, batchNumber)
		if err != nil {
			return err
		}
		if _, err := s.vendors.GetByID(ctx, vendorID); err != nil {
			return err
		}
		m, err := domain.NewMedicine(name, *b, price, vendorID)
		if err != nil {
			return err
		}
		if err := s.medicines.Create(ctx, m); err != nil {
			return err
		}
		created = &m
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("medicine registered", zap.String("identifier", created.ID), zap.String("vendor_id", vendorID))
	return created, nil
}

func (s *CatalogService) GetMedicine(ctx context.Context, id string) (*domain.Medicine, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: medicine identifier is required", domain.ErrInvalidArgument)
	}
	return s.medicines.GetByID(ctx, id)
}

func (s *CatalogService) ListMedicines(ctx context.Context, f repository.MedicineFilter) ([]domain.Medicine, error) {
	return s.medicines.List(ctx, f)
}

// UpdatePrice меняет цену. Статистика продаж считается по текущей цене.
func (s *CatalogService) UpdatePrice(ctx context.Context, id string, price float64) (*domain.Medicine, error) {
	if price <= 0 {
		return nil, fmt.Errorf("%w: price must be greater than 0", domain.ErrInvalidArgument)
	}
	var updated *domain.Medicine
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		m, err := s.medicines.GetByID(ctx, id)
		if err != nil {
			return err
		}
		m.Price = price
		if err := s.medicines.Update(ctx, *m); err != nil {
			return err
		}
		updated = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteMedicine убирает лекарство из каталога и его остаток со склада
func (s *CatalogService) DeleteMedicine(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: medicine identifier is required", domain.ErrInvalidArgument)
	}
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.medicines.Delete(ctx, id); err != nil {
			return err
		}
		q, err := s.stock.Quantity(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		_, err = s.stock.Remove(ctx, id, q)
		return err
	})
}
