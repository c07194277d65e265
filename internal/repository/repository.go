package repository

import (
	"context"
	"strings"

	"medsupply/internal/domain"
)

// MedicineFilter параметры фильтрации каталога
type MedicineFilter struct {
	NameSubstring string
	VendorID      string
}

// BatchRepository реестр партий. Номера партий не обязаны быть уникальными.
type BatchRepository interface {
	Create(ctx context.Context, b domain.Batch) error
	GetByNumber(ctx context.Context, number string) (*domain.Batch, error)
	List(ctx context.Context) ([]domain.Batch, error)
}

// VendorRepository реестр поставщиков
type VendorRepository interface {
	Create(ctx context.Context, v domain.Vendor) error
	GetByID(ctx context.Context, id string) (*domain.Vendor, error)
	List(ctx context.Context) ([]domain.Vendor, error)
	Delete(ctx context.Context, id string) error
}

// OrderRepository почтовый ящик заявок поставщика: pending и fulfilled
type OrderRepository interface {
	AddPending(ctx context.Context, o *domain.OrderRecord) error
	GetPending(ctx context.Context, vendorID, orderID string) (*domain.OrderRecord, error)
	MarkFulfilled(ctx context.Context, vendorID, orderID string) (*domain.OrderRecord, error)
	DeletePending(ctx context.Context, vendorID, orderID string) error
	List(ctx context.Context, vendorID string, status domain.OrderStatus) ([]domain.OrderRecord, error)
}

// MedicineRepository каталог лекарств
type MedicineRepository interface {
	Create(ctx context.Context, m domain.Medicine) error
	GetByID(ctx context.Context, id string) (*domain.Medicine, error)
	Update(ctx context.Context, m domain.Medicine) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f MedicineFilter) ([]domain.Medicine, error)
}

// StockLevel остаток по идентификатору лекарства
type StockLevel struct {
	MedicineID string
	Quantity   int64
}

// StockRepository складские остатки; нулевые записи не хранятся
type StockRepository interface {
	Add(ctx context.Context, medicineID string, qty int64) (int64, error)
	Remove(ctx context.Context, medicineID string, qty int64) (int64, error)
	Quantity(ctx context.Context, medicineID string) (int64, error)
	List(ctx context.Context) ([]StockLevel, error)
}

// SalesRepository журнал продаж, только дописывание
type SalesRepository interface {
	Append(ctx context.Context, s *domain.Sale) error
	List(ctx context.Context) ([]domain.Sale, error)
}

// TxManager абстракция транзакции. Для in-memory это глобальная блокировка записи.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	// WithReadTransaction согласованный снимок под блокировкой чтения; fn не должна писать
	WithReadTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// helper: case-insensitive contains
func containsIgnoreCase(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// ordered map with insertion-order iteration
type ordered[V any] struct {
	keys []string
	m    map[string]V
}

func newOrdered[V any]() *ordered[V] {
	return &ordered[V]{m: make(map[string]V)}
}

func (o *ordered[V]) get(k string) (V, bool) {
	v, ok := o.m[k]
	return v, ok
}

func (o *ordered[V]) set(k string, v V) {
	if _, ok := o.m[k]; !ok {
		o.keys = append(o.keys, k)
	}
	o.m[k] = v
}

func (o *ordered[V]) remove(k string) bool {
	if _, ok := o.m[k]; !ok {
		return false
	}
	delete(o.m, k)
	for i, key := range o.keys {
		if key == k {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

func (o *ordered[V]) values() []V {
	out := make([]V, 0, len(o.keys))
	for _, k := range o.keys {
		out = append(out, o.m[k])
	}
	return out
}
