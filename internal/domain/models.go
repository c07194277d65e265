package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// DateLayout формат дат сроков годности (ISO, YYYY-MM-DD)
const DateLayout = "2006-01-02"

// ParseDate проверяет дату в формате YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be in YYYY-MM-DD format", ErrInvalidArgument, s)
	}
	return t, nil
}

// Batch производственная партия со сроком годности. Неизменяема после создания.
type Batch struct {
	Number     string `json:"batch_number"`
	ExpiryDate string `json:"expiry_date"`
}

func NewBatch(number, expiryDate string) (Batch, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return Batch{}, fmt.Errorf("%w: batch number cannot be empty", ErrInvalidArgument)
	}
	if _, err := ParseDate(expiryDate); err != nil {
		return Batch{}, err
	}
	return Batch{Number: number, ExpiryDate: expiryDate}, nil
}

// ExpiredBefore сравнивает даты лексикографически, формат у обеих одинаковый
func (b Batch) ExpiredBefore(referenceDate string) bool {
	return b.ExpiryDate < referenceDate
}

// Vendor поставщик лекарств
type Vendor struct {
	ID          string `json:"vendor_id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

func NewVendor(id, name, contactInfo string) (Vendor, error) {
	if id == "" || name == "" || contactInfo == "" {
		return Vendor{}, fmt.Errorf("%w: vendor id, name and contact info are required", ErrInvalidArgument)
	}
	return Vendor{ID: id, Name: name, ContactInfo: contactInfo}, nil
}

// OrderStatus состояние заявки поставщику
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusFulfilled OrderStatus = "Fulfilled"
)

// OrderRecord заявка на пополнение запаса
type OrderRecord struct {
	OrderID      string      `json:"order_id"`
	VendorID     string      `json:"vendor_id"`
	MedicineID   string      `json:"identifier"`
	MedicineName string      `json:"name"`
	Quantity     int64       `json:"quantity"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	FulfilledAt  *time.Time  `json:"fulfilled_at,omitempty"`
}

// Medicine позиция каталога, привязанная к одной партии и одному поставщику.
// Срок годности берётся только из партии.
type Medicine struct {
	ID       string  `json:"identifier"`
	Name     string  `json:"name"`
	Batch    Batch   `json:"batch"`
	Price    float64 `json:"price"`
	VendorID string  `json:"vendor_id"`
}

func NewMedicine(name string, batch Batch, price float64, vendorID string) (Medicine, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Medicine{}, fmt.Errorf("%w: medicine name cannot be empty", ErrInvalidArgument)
	}
	if batch.Number == "" {
		return Medicine{}, fmt.Errorf("%w: batch is required", ErrInvalidArgument)
	}
	if vendorID == "" {
		return Medicine{}, fmt.Errorf("%w: vendor is required", ErrInvalidArgument)
	}
	if price <= 0 {
		return Medicine{}, fmt.Errorf("%w: price must be greater than 0", ErrInvalidArgument)
	}
	return Medicine{
		ID:       Slugify(name) + "_" + uuid.NewString(),
		Name:     name,
		Batch:    batch,
		Price:    price,
		VendorID: vendorID,
	}, nil
}

// Slugify "Vitamin C 500" -> "vitamin_c_500"
func Slugify(name string) string {
	var b strings.Builder
	underscore := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			underscore = false
		case !underscore && b.Len() > 0:
			b.WriteByte('_')
			underscore = true
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

// StockEntry позиция склада
type StockEntry struct {
	Medicine Medicine `json:"medicine"`
	Quantity int64    `json:"quantity"`
}

// ExpiryAlert позиция с истёкшим к дате сроком партии
type ExpiryAlert struct {
	Medicine   Medicine `json:"medicine"`
	ExpiryDate string   `json:"expiry_date"`
	Quantity   int64    `json:"quantity"`
}

// SaleLine строка проданного чека, цена на момент продажи
type SaleLine struct {
	MedicineID string  `json:"identifier"`
	Name       string  `json:"name"`
	Quantity   int64   `json:"quantity"`
	UnitPrice  float64 `json:"price"`
}

// Sale завершённая корзина в журнале продаж
type Sale struct {
	ID        string     `json:"id"`
	Lines     []SaleLine `json:"items"`
	Total     float64    `json:"total"`
	CreatedAt time.Time  `json:"created_at"`
}

// ReceiptItem строка чека
type ReceiptItem struct {
	Name     string  `json:"name"`
	Quantity int64   `json:"quantity"`
	Price    float64 `json:"price"`
	Subtotal float64 `json:"subtotal"`
}

// Receipt чек, возвращаемый при оформлении
type Receipt struct {
	SaleID string        `json:"sale_id"`
	Items  []ReceiptItem `json:"items"`
	Total  float64       `json:"total"`
}

func (s Sale) Receipt() Receipt {
	items := make([]ReceiptItem, 0, len(s.Lines))
	for _, l := range s.Lines {
		items = append(items, ReceiptItem{
			Name:     l.Name,
			Quantity: l.Quantity,
			Price:    l.UnitPrice,
			Subtotal: l.UnitPrice * float64(l.Quantity),
		})
	}
	return Receipt{SaleID: s.ID, Items: items, Total: s.Total}
}

// SalesStat агрегат продаж по лекарству
type SalesStat struct {
	MedicineID   string  `json:"identifier"`
	Name         string  `json:"name"`
	QuantitySold int64   `json:"quantity_sold"`
	ValueSold    float64 `json:"value_sold"`
}
