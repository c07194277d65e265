package repository

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"medsupply/internal/domain"
)

// mailbox заявки одного поставщика
type mailbox struct {
	pending   *ordered[domain.OrderRecord]
	fulfilled *ordered[domain.OrderRecord]
}

// MemoryStore объединённое in-memory хранилище всех реестров, склада и журнала продаж
type MemoryStore struct {
	mu        sync.RWMutex
	batches   []domain.Batch
	vendors   *ordered[domain.Vendor]
	mailboxes map[string]*mailbox
	medicines *ordered[domain.Medicine]
	stock     *ordered[int64]
	sales     []domain.Sale
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		vendors:   newOrdered[domain.Vendor](),
		mailboxes: make(map[string]*mailbox),
		medicines: newOrdered[domain.Medicine](),
		stock:     newOrdered[int64](),
	}
}

// transaction-aware locking helpers
type txKey struct{}

func isTx(ctx context.Context) bool {
	v := ctx.Value(txKey{})
	if v == nil {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

func (m *MemoryStore) rlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RLock()
	}
}
func (m *MemoryStore) runlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RUnlock()
	}
}
func (m *MemoryStore) wlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Lock()
	}
}
func (m *MemoryStore) wunlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Unlock()
	}
}

// Ensure interfaces
var _ MedicineRepository = (*MemoryStore)(nil)

// MedicineRepository implementation
func (m *MemoryStore) Create(ctx context.Context, med domain.Medicine) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if _, ok := m.medicines.get(med.ID); ok {
		return fmt.Errorf("%w: medicine %s already exists", domain.ErrInvalidArgument, med.ID)
	}
	m.medicines.set(med.ID, med)
	return nil
}

func (m *MemoryStore) GetByID(ctx context.Context, id string) (*domain.Medicine, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	med, ok := m.medicines.get(id)
	if !ok {
		return nil, fmt.Errorf("%w: medicine %s", domain.ErrNotFound, id)
	}
	// return copy
	cp := med
	return &cp, nil
}

func (m *MemoryStore) Update(ctx context.Context, med domain.Medicine) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if _, ok := m.medicines.get(med.ID); !ok {
		return fmt.Errorf("%w: medicine %s", domain.ErrNotFound, med.ID)
	}
	m.medicines.set(med.ID, med)
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if !m.medicines.remove(id) {
		return fmt.Errorf("%w: medicine %s", domain.ErrNotFound, id)
	}
	return nil
}

func (m *MemoryStore) List(ctx context.Context, f MedicineFilter) ([]domain.Medicine, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := make([]domain.Medicine, 0)
	for _, med := range m.medicines.values() {
		if !containsIgnoreCase(med.Name, f.NameSubstring) {
			continue
		}
		if f.VendorID != "" && med.VendorID != f.VendorID {
			continue
		}
		out = append(out, med)
	}
	return out, nil
}

// BatchRepository implementation on wrapper type
type MemoryBatches struct{ store *MemoryStore }

func NewMemoryBatches(store *MemoryStore) *MemoryBatches { return &MemoryBatches{store: store} }

var _ BatchRepository = (*MemoryBatches)(nil)

func (mb *MemoryBatches) Create(ctx context.Context, b domain.Batch) error {
	mb.store.wlock(ctx)
	defer mb.store.wunlock(ctx)
	mb.store.batches = append(mb.store.batches, b)
	return nil
}

// GetByNumber возвращает первую зарегистрированную партию с таким номером
func (mb *MemoryBatches) GetByNumber(ctx context.Context, number string) (*domain.Batch, error) {
	mb.store.rlock(ctx)
	defer mb.store.runlock(ctx)
	for _, b := range mb.store.batches {
		if b.Number == number {
			cp := b
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("%w: batch %s", domain.ErrNotFound, number)
}

func (mb *MemoryBatches) List(ctx context.Context) ([]domain.Batch, error) {
	mb.store.rlock(ctx)
	defer mb.store.runlock(ctx)
	out := make([]domain.Batch, len(mb.store.batches))
	copy(out, mb.store.batches)
	return out, nil
}

// VendorRepository implementation on wrapper type
type MemoryVendors struct{ store *MemoryStore }

func NewMemoryVendors(store *MemoryStore) *MemoryVendors { return &MemoryVendors{store: store} }

var _ VendorRepository = (*MemoryVendors)(nil)

func (mv *MemoryVendors) Create(ctx context.Context, v domain.Vendor) error {
	mv.store.wlock(ctx)
	defer mv.store.wunlock(ctx)
	if _, ok := mv.store.vendors.get(v.ID); ok {
		return fmt.Errorf("%w: vendor %s already exists", domain.ErrInvalidArgument, v.ID)
	}
	mv.store.vendors.set(v.ID, v)
	mv.store.mailboxes[v.ID] = &mailbox{
		pending:   newOrdered[domain.OrderRecord](),
		fulfilled: newOrdered[domain.OrderRecord](),
	}
	return nil
}

func (mv *MemoryVendors) GetByID(ctx context.Context, id string) (*domain.Vendor, error) {
	mv.store.rlock(ctx)
	defer mv.store.runlock(ctx)
	v, ok := mv.store.vendors.get(id)
	if !ok {
		return nil, fmt.Errorf("%w: vendor %s", domain.ErrNotFound, id)
	}
	cp := v
	return &cp, nil
}

func (mv *MemoryVendors) List(ctx context.Context) ([]domain.Vendor, error) {
	mv.store.rlock(ctx)
	defer mv.store.runlock(ctx)
	return mv.store.vendors.values(), nil
}

// Delete удаляет поставщика вместе с его заявками
func (mv *MemoryVendors) Delete(ctx context.Context, id string) error {
	mv.store.wlock(ctx)
	defer mv.store.wunlock(ctx)
	if !mv.store.vendors.remove(id) {
		return fmt.Errorf("%w: vendor %s", domain.ErrNotFound, id)
	}
	delete(mv.store.mailboxes, id)
	return nil
}

// OrderRepository implementation on wrapper type
type MemoryOrders struct{ store *MemoryStore }

func NewMemoryOrders(store *MemoryStore) *MemoryOrders { return &MemoryOrders{store: store} }

var _ OrderRepository = (*MemoryOrders)(nil)

// caller holds the lock
func (mo *MemoryOrders) mailbox(vendorID string) (*mailbox, error) {
	mb, ok := mo.store.mailboxes[vendorID]
	if !ok {
		return nil, fmt.Errorf("%w: vendor %s", domain.ErrNotFound, vendorID)
	}
	return mb, nil
}

func (mo *MemoryOrders) AddPending(ctx context.Context, o *domain.OrderRecord) error {
	mo.store.wlock(ctx)
	defer mo.store.wunlock(ctx)
	mb, err := mo.mailbox(o.VendorID)
	if err != nil {
		return err
	}
	o.OrderID = uuid.NewString()
	o.Status = domain.OrderStatusPending
	o.CreatedAt = time.Now().UTC()
	o.FulfilledAt = nil
	mb.pending.set(o.OrderID, *o)
	return nil
}

func (mo *MemoryOrders) GetPending(ctx context.Context, vendorID, orderID string) (*domain.OrderRecord, error) {
	mo.store.rlock(ctx)
	defer mo.store.runlock(ctx)
	mb, err := mo.mailbox(vendorID)
	if err != nil {
		return nil, err
	}
	o, ok := mb.pending.get(orderID)
	if !ok {
		return nil, fmt.Errorf("%w: pending order %s", domain.ErrNotFound, orderID)
	}
	cp := o
	return &cp, nil
}

// MarkFulfilled переносит заявку из pending в fulfilled за одну операцию
func (mo *MemoryOrders) MarkFulfilled(ctx context.Context, vendorID, orderID string) (*domain.OrderRecord, error) {
	mo.store.wlock(ctx)
	defer mo.store.wunlock(ctx)
	mb, err := mo.mailbox(vendorID)
	if err != nil {
		return nil, err
	}
	o, ok := mb.pending.get(orderID)
	if !ok {
		return nil, fmt.Errorf("%w: pending order %s", domain.ErrNotFound, orderID)
	}
	now := time.Now().UTC()
	o.Status = domain.OrderStatusFulfilled
	o.FulfilledAt = &now
	mb.pending.remove(orderID)
	mb.fulfilled.set(orderID, o)
	return &o, nil
}

func (mo *MemoryOrders) DeletePending(ctx context.Context, vendorID, orderID string) error {
	mo.store.wlock(ctx)
	defer mo.store.wunlock(ctx)
	mb, err := mo.mailbox(vendorID)
	if err != nil {
		return err
	}
	if !mb.pending.remove(orderID) {
		return fmt.Errorf("%w: pending order %s", domain.ErrNotFound, orderID)
	}
	return nil
}

func (mo *MemoryOrders) List(ctx context.Context, vendorID string, status domain.OrderStatus) ([]domain.OrderRecord, error) {
	mo.store.rlock(ctx)
	defer mo.store.runlock(ctx)
	mb, err := mo.mailbox(vendorID)
	if err != nil {
		return nil, err
	}
	if status == domain.OrderStatusFulfilled {
		return mb.fulfilled.values(), nil
	}
	return mb.pending.values(), nil
}

// StockRepository implementation on wrapper type
type MemoryStock struct{ store *MemoryStore }

func NewMemoryStock(store *MemoryStore) *MemoryStock { return &MemoryStock{store: store} }

var _ StockRepository = (*MemoryStock)(nil)

func (ms *MemoryStock) Add(ctx context.Context, medicineID string, qty int64) (int64, error) {
	if qty <= 0 {
		return 0, fmt.Errorf("%w: quantity must be greater than 0", domain.ErrInvalidArgument)
	}
	ms.store.wlock(ctx)
	defer ms.store.wunlock(ctx)
	cur, _ := ms.store.stock.get(medicineID)
	if qty > math.MaxInt64-cur {
		return cur, fmt.Errorf("%w: quantity of %s overflows", domain.ErrInvalidArgument, medicineID)
	}
	cur += qty
	ms.store.stock.set(medicineID, cur)
	return cur, nil
}

// Remove при полном исчерпании удаляет запись, ноль не хранится
func (ms *MemoryStock) Remove(ctx context.Context, medicineID string, qty int64) (int64, error) {
	if qty <= 0 {
		return 0, fmt.Errorf("%w: quantity must be greater than 0", domain.ErrInvalidArgument)
	}
	ms.store.wlock(ctx)
	defer ms.store.wunlock(ctx)
	cur, ok := ms.store.stock.get(medicineID)
	if !ok {
		return 0, fmt.Errorf("%w: medicine %s not in inventory", domain.ErrNotFound, medicineID)
	}
	if cur < qty {
		return cur, fmt.Errorf("%w: medicine %s has %d, requested %d", domain.ErrInsufficientStock, medicineID, cur, qty)
	}
	cur -= qty
	if cur == 0 {
		ms.store.stock.remove(medicineID)
		return 0, nil
	}
	ms.store.stock.set(medicineID, cur)
	return cur, nil
}

func (ms *MemoryStock) Quantity(ctx context.Context, medicineID string) (int64, error) {
	ms.store.rlock(ctx)
	defer ms.store.runlock(ctx)
	cur, ok := ms.store.stock.get(medicineID)
	if !ok {
		return 0, fmt.Errorf("%w: medicine %s not in inventory", domain.ErrNotFound, medicineID)
	}
	return cur, nil
}

func (ms *MemoryStock) List(ctx context.Context) ([]StockLevel, error) {
	ms.store.rlock(ctx)
	defer ms.store.runlock(ctx)
	out := make([]StockLevel, 0, len(ms.store.stock.keys))
	for _, id := range ms.store.stock.keys {
		out = append(out, StockLevel{MedicineID: id, Quantity: ms.store.stock.m[id]})
	}
	return out, nil
}

// SalesRepository implementation on wrapper type
type MemorySales struct{ store *MemoryStore }

func NewMemorySales(store *MemoryStore) *MemorySales { return &MemorySales{store: store} }

var _ SalesRepository = (*MemorySales)(nil)

func (ms *MemorySales) Append(ctx context.Context, s *domain.Sale) error {
	ms.store.wlock(ctx)
	defer ms.store.wunlock(ctx)
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	cp := *s
	cp.Lines = append([]domain.SaleLine(nil), s.Lines...)
	ms.store.sales = append(ms.store.sales, cp)
	return nil
}

// List продажи в хронологическом порядке
func (ms *MemorySales) List(ctx context.Context) ([]domain.Sale, error) {
	ms.store.rlock(ctx)
	defer ms.store.runlock(ctx)
	out := make([]domain.Sale, len(ms.store.sales))
	copy(out, ms.store.sales)
	return out, nil
}

// Tx manager using write lock to emulate transaction boundary
type MemoryTx struct{ store *MemoryStore }

func NewMemoryTx(store *MemoryStore) *MemoryTx { return &MemoryTx{store: store} }

func (tx *MemoryTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	// Для in-memory используем блокировку записи и помечаем контекст, чтобы репозитории пропускали внутренние локи
	if isTx(ctx) {
		return fn(ctx)
	}
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	ctx = context.WithValue(ctx, txKey{}, true)
	return fn(ctx)
}

func (tx *MemoryTx) WithReadTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if isTx(ctx) {
		return fn(ctx)
	}
	tx.store.mu.RLock()
	defer tx.store.mu.RUnlock()
	ctx = context.WithValue(ctx, txKey{}, true)
	return fn(ctx)
}
