package service

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"medsupply/internal/domain"
	"medsupply/internal/observability"
	"medsupply/internal/repository"
)

// InventoryService складские остатки, оповещения и точка входа для заявок на пополнение
type InventoryService struct {
	medicines repository.MedicineRepository
	stock     repository.StockRepository
	vendors   *VendorService
	tx        repository.TxManager
	log       *zap.Logger
	tracer    trace.Tracer
}

func NewInventoryService(
	medicines repository.MedicineRepository,
	stock repository.StockRepository,
	vendors *VendorService,
	tx repository.TxManager,
	log *zap.Logger,
) *InventoryService {
	return &InventoryService{
		medicines: medicines,
		stock:     stock,
		vendors:   vendors,
		tx:        tx,
		log:       log,
		tracer:    observability.Tracer(),
	}
}

func validQuantity(qty int64) error {
	if qty <= 0 {
		return fmt.Errorf("%w: quantity must be greater than 0", domain.ErrInvalidArgument)
	}
	return nil
}

// AddMedicine увеличивает остаток (или заводит позицию). Возвращает новый остаток.
func (s *InventoryService) AddMedicine(ctx context.Context, medicineID string, qty int64) (int64, error) {
	if err := validQuantity(qty); err != nil {
		return 0, err
	}
	var total int64
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.medicines.GetByID(ctx, medicineID); err != nil {
			return err
		}
		var err error
		total, err = s.stock.Add(ctx, medicineID, qty)
		return err
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// RemoveMedicine списывает количество; при нуле позиция удаляется.
// Отсутствующая позиция даёт ErrNotFound раньше проверки количества.
func (s *InventoryService) RemoveMedicine(ctx context.Context, medicineID string, qty int64) (int64, error) {
	var left int64
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.stock.Quantity(ctx, medicineID); err != nil {
			return err
		}
		if err := validQuantity(qty); err != nil {
			return err
		}
		var err error
		left, err = s.stock.Remove(ctx, medicineID, qty)
		return err
	})
	if err != nil {
		return 0, err
	}
	return left, nil
}

// GetQuantity возвращает ErrNotFound для отсутствующей позиции, а не 0
func (s *InventoryService) GetQuantity(ctx context.Context, medicineID string) (int64, error) {
	return s.stock.Quantity(ctx, medicineID)
}

// QueueOrder пересылает заявку на пополнение поставщику лекарства. Склад не меняется.
func (s *InventoryService) QueueOrder(ctx context.Context, medicineID string, qty int64) (*domain.OrderRecord, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.queue_order",
		trace.WithAttributes(attribute.String("medicine.id", medicineID), attribute.Int64("order.quantity", qty)))
	var err error
	defer func() { endSpan(span, err) }()

	if err = validQuantity(qty); err != nil {
		return nil, err
	}
	var med *domain.Medicine
	med, err = s.medicines.GetByID(ctx, medicineID)
	if err != nil {
		return nil, err
	}
	var o *domain.OrderRecord
	o, err = s.vendors.AddOrder(ctx, med.VendorID, *med, qty)
	return o, err
}

// entries снимок склада, соединённый с каталогом, в порядке поступления
func (s *InventoryService) entries(ctx context.Context) ([]domain.StockEntry, error) {
	var out []domain.StockEntry
	err := s.tx.WithReadTransaction(ctx, func(ctx context.Context) error {
		levels, err := s.stock.List(ctx)
		if err != nil {
			return err
		}
		out = make([]domain.StockEntry, 0, len(levels))
		for _, l := range levels {
			m, err := s.medicines.GetByID(ctx, l.MedicineID)
			if err != nil {
				s.log.Warn("stock entry without catalog medicine", zap.String("identifier", l.MedicineID))
				continue
			}
			out = append(out, domain.StockEntry{Medicine: *m, Quantity: l.Quantity})
		}
		return nil
	})
	return out, err
}

func (s *InventoryService) List(ctx context.Context) ([]domain.StockEntry, error) {
	return s.entries(ctx)
}

// SearchMedicine линейный поиск по идентификатору среди позиций склада
func (s *InventoryService) SearchMedicine(ctx context.Context, identifier string) (*domain.StockEntry, error) {
	all, err := s.entries(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range all {
		if e.Medicine.ID == identifier {
			return &e, nil
		}
	}
	return nil, fmt.Errorf("%w: medicine %s not in inventory", domain.ErrNotFound, identifier)
}

// StockValuation сумма price × quantity по всем позициям
func (s *InventoryService) StockValuation(ctx context.Context) (float64, error) {
	all, err := s.entries(ctx)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, e := range all {
		total += e.Medicine.Price * float64(e.Quantity)
	}
	return total, nil
}

// ThresholdAlerts позиции с остатком <= threshold
func (s *InventoryService) ThresholdAlerts(ctx context.Context, threshold int64) ([]domain.StockEntry, error) {
	if threshold <= 0 {
		return nil, fmt.Errorf("%w: threshold must be greater than 0", domain.ErrInvalidArgument)
	}
	all, err := s.entries(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.StockEntry, 0)
	for _, e := range all {
		if e.Quantity <= threshold {
			out = append(out, e)
		}
	}
	return out, nil
}

// TrackBatchExpiry позиции, чья партия истекает строго раньше referenceDate
func (s *InventoryService) TrackBatchExpiry(ctx context.Context, referenceDate string) ([]domain.ExpiryAlert, error) {
	if _, err := domain.ParseDate(referenceDate); err != nil {
		return nil, err
	}
	all, err := s.entries(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ExpiryAlert, 0)
	for _, e := range all {
		if e.Medicine.Batch.ExpiredBefore(referenceDate) {
			out = append(out, domain.ExpiryAlert{
				Medicine:   e.Medicine,
				ExpiryDate: e.Medicine.Batch.ExpiryDate,
				Quantity:   e.Quantity,
			})
		}
	}
	return out, nil
}
