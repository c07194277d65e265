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

// VendorService реализует жизненный цикл заявок поставщику:
// Pending -> Fulfilled (поступление на склад) или Pending -> отклонена (удалена)
type VendorService struct {
	vendors   repository.VendorRepository
	orders    repository.OrderRepository
	medicines repository.MedicineRepository
	stock     repository.StockRepository
	tx        repository.TxManager
	log       *zap.Logger
	tracer    trace.Tracer
}

func NewVendorService(
	vendors repository.VendorRepository,
	orders repository.OrderRepository,
	medicines repository.MedicineRepository,
	stock repository.StockRepository,
	tx repository.TxManager,
	log *zap.Logger,
) *VendorService {
	return &VendorService{
		vendors:   vendors,
		orders:    orders,
		medicines: medicines,
		stock:     stock,
		tx:        tx,
		log:       log,
		tracer:    observability.Tracer(),
	}
}

// AddOrder кладёт заявку в pending под новым идентификатором.
// Содержимое не проверяется: за форму отвечает вызывающий.
func (s *VendorService) AddOrder(ctx context.Context, vendorID string, med domain.Medicine, qty int64) (*domain.OrderRecord, error) {
	o := domain.OrderRecord{
		VendorID:     vendorID,
		MedicineID:   med.ID,
		MedicineName: med.Name,
		Quantity:     qty,
	}
	if err := s.orders.AddPending(ctx, &o); err != nil {
		return nil, err
	}
	s.log.Info("order queued",
		zap.String("vendor_id", vendorID),
		zap.String("order_id", o.OrderID),
		zap.String("identifier", med.ID),
		zap.Int64("quantity", qty))
	return &o, nil
}

// FulfillOrder одобряет заявку: количество поступает на склад, заявка переходит в fulfilled.
// Весь переход выполняется под одной блокировкой записи.
func (s *VendorService) FulfillOrder(ctx context.Context, vendorID, orderID string) (*domain.OrderRecord, error) {
	ctx, span := s.tracer.Start(ctx, "vendor.fulfill_order",
		trace.WithAttributes(attribute.String("vendor.id", vendorID), attribute.String("order.id", orderID)))
	var err error
	defer func() { endSpan(span, err) }()

	if orderID == "" {
		err = fmt.Errorf("%w: order id is required", domain.ErrInvalidArgument)
		return nil, err
	}

	var done *domain.OrderRecord
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		o, err := s.orders.GetPending(ctx, vendorID, orderID)
		if err != nil {
			return err
		}
		if _, err := s.medicines.GetByID(ctx, o.MedicineID); err != nil {
			return fmt.Errorf("%w: medicine not found for order %s", domain.ErrNotFound, orderID)
		}
		// validate before any mutation, the lock gives no rollback
		if o.Quantity <= 0 {
			return fmt.Errorf("%w: order %s has non-positive quantity", domain.ErrInvalidArgument, orderID)
		}
		if _, err := s.stock.Add(ctx, o.MedicineID, o.Quantity); err != nil {
			return err
		}
		done, err = s.orders.MarkFulfilled(ctx, vendorID, orderID)
		return err
	})
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int64("order.quantity", done.Quantity))
	s.log.Info("order fulfilled",
		zap.String("vendor_id", vendorID),
		zap.String("order_id", orderID),
		zap.String("identifier", done.MedicineID),
		zap.Int64("quantity", done.Quantity))
	return done, nil
}

// RejectOrder отклоняет заявку: она просто удаляется из pending
func (s *VendorService) RejectOrder(ctx context.Context, vendorID, orderID string) error {
	if orderID == "" {
		return fmt.Errorf("%w: order id is required", domain.ErrInvalidArgument)
	}
	if err := s.orders.DeletePending(ctx, vendorID, orderID); err != nil {
		return err
	}
	s.log.Info("order rejected", zap.String("vendor_id", vendorID), zap.String("order_id", orderID))
	return nil
}

func (s *VendorService) Orders(ctx context.Context, vendorID string) ([]domain.OrderRecord, error) {
	return s.orders.List(ctx, vendorID, domain.OrderStatusPending)
}

func (s *VendorService) FulfilledOrders(ctx context.Context, vendorID string) ([]domain.OrderRecord, error) {
	return s.orders.List(ctx, vendorID, domain.OrderStatusFulfilled)
}
