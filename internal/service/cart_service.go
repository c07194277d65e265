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

// SaleRecorder получает каждую зафиксированную продажу (аудит-журнал)
type SaleRecorder interface {
	RecordSale(ctx context.Context, s domain.Sale) error
}

// CartItem строка запроса на оформление
type CartItem struct {
	MedicineID string `json:"identifier"`
	Quantity   int64  `json:"quantity"`
}

// CartService оформляет корзины: проверяет склад, списывает и пишет продажу в журнал
type CartService struct {
	medicines repository.MedicineRepository
	stock     repository.StockRepository
	sales     *SalesService
	tx        repository.TxManager
	recorder  SaleRecorder
	log       *zap.Logger
	tracer    trace.Tracer
}

func NewCartService(
	medicines repository.MedicineRepository,
	stock repository.StockRepository,
	sales *SalesService,
	tx repository.TxManager,
	log *zap.Logger,
) *CartService {
	return &CartService{
		medicines: medicines,
		stock:     stock,
		sales:     sales,
		tx:        tx,
		log:       log,
		tracer:    observability.Tracer(),
	}
}

// WithRecorder подключает аудит-журнал продаж
func (s *CartService) WithRecorder(r SaleRecorder) *CartService {
	s.recorder = r
	return s
}

func (s *CartService) NewCart() *domain.Cart {
	return domain.NewCart()
}

// CartFromItems собирает корзину из пар {identifier, quantity} по каталогу
func (s *CartService) CartFromItems(ctx context.Context, items []CartItem) (*domain.Cart, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: cart has no items", domain.ErrInvalidArgument)
	}
	cart := domain.NewCart()
	for _, it := range items {
		m, err := s.medicines.GetByID(ctx, it.MedicineID)
		if err != nil {
			return nil, err
		}
		if err := cart.AddItem(m, it.Quantity); err != nil {
			return nil, err
		}
	}
	return cart, nil
}

// Checkout атомарно оформляет корзину: сначала проверяются все позиции,
// затем списываются все, и продажа попадает в журнал. При любой ошибке склад не меняется.
func (s *CartService) Checkout(ctx context.Context, cart *domain.Cart) (*domain.Receipt, error) {
	ctx, span := s.tracer.Start(ctx, "cart.checkout")
	var err error
	defer func() { endSpan(span, err) }()

	if cart == nil || cart.Len() == 0 {
		err = fmt.Errorf("%w: cart is empty", domain.ErrInvalidArgument)
		return nil, err
	}
	lines := cart.Lines()
	span.SetAttributes(attribute.Int("cart.lines", len(lines)))

	var sale domain.Sale
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		// pass 1: validate all
		for _, l := range lines {
			if l.Quantity <= 0 {
				return fmt.Errorf("%w: quantity of %s must be greater than 0", domain.ErrInvalidArgument, l.Medicine.Name)
			}
			q, err := s.stock.Quantity(ctx, l.Medicine.ID)
			if errors.Is(err, domain.ErrNotFound) {
				q = 0
			} else if err != nil {
				return err
			}
			if q < l.Quantity {
				return fmt.Errorf("%w: not enough stock for %s (have %d, need %d)",
					domain.ErrInsufficientStock, l.Medicine.Name, q, l.Quantity)
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		// pass 2: commit all
		sale = domain.Sale{Lines: make([]domain.SaleLine, 0, len(lines))}
		for _, l := range lines {
			if _, err := s.stock.Remove(ctx, l.Medicine.ID, l.Quantity); err != nil {
				return err
			}
			sale.Lines = append(sale.Lines, domain.SaleLine{
				MedicineID: l.Medicine.ID,
				Name:       l.Medicine.Name,
				Quantity:   l.Quantity,
				UnitPrice:  l.Medicine.Price,
			})
			sale.Total += l.Medicine.Price * float64(l.Quantity)
		}
		return s.sales.AddSale(ctx, &sale)
	})
	if err != nil {
		s.log.Info("checkout rejected", zap.Error(err))
		return nil, err
	}

	span.SetAttributes(attribute.String("sale.id", sale.ID), attribute.Float64("sale.total", sale.Total))
	s.log.Info("checkout committed",
		zap.String("sale_id", sale.ID),
		zap.Int("lines", len(sale.Lines)),
		zap.Float64("total", sale.Total))

	if s.recorder != nil {
		if jerr := s.recorder.RecordSale(context.WithoutCancel(ctx), sale); jerr != nil {
			s.log.Error("sale journal write failed", zap.String("sale_id", sale.ID), zap.Error(jerr))
		}
	}
	receipt := sale.Receipt()
	return &receipt, nil
}
