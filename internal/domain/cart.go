package domain

import (
	"fmt"
	"math"
)

// CartLine позиция корзины
type CartLine struct {
	Medicine Medicine `json:"medicine"`
	Quantity int64    `json:"quantity"`
}

// Cart незавершённая продажа. Не потокобезопасна: живёт в рамках одной сессии.
type Cart struct {
	lines map[string]*CartLine
	order []string
}

func NewCart() *Cart {
	return &Cart{lines: make(map[string]*CartLine)}
}

// AddItem добавляет количество к позиции (или создаёт её)
func (c *Cart) AddItem(med *Medicine, qty int64) error {
	if med == nil {
		return fmt.Errorf("%w: medicine cannot be nil", ErrInvalidArgument)
	}
	if qty <= 0 {
		return fmt.Errorf("%w: quantity must be greater than 0", ErrInvalidArgument)
	}
	if l, ok := c.lines[med.ID]; ok {
		if qty > math.MaxInt64-l.Quantity {
			return fmt.Errorf("%w: quantity of %s overflows", ErrInvalidArgument, med.Name)
		}
		l.Quantity += qty
		return nil
	}
	c.lines[med.ID] = &CartLine{Medicine: *med, Quantity: qty}
	c.order = append(c.order, med.ID)
	return nil
}

// RemoveItem уменьшает количество; позиция с нулём удаляется
func (c *Cart) RemoveItem(medicineID string, qty int64) error {
	l, ok := c.lines[medicineID]
	if !ok {
		return fmt.Errorf("%w: medicine %s not in cart", ErrNotFound, medicineID)
	}
	if qty <= 0 {
		return fmt.Errorf("%w: quantity must be greater than 0", ErrInvalidArgument)
	}
	if l.Quantity < qty {
		return fmt.Errorf("%w: not enough quantity to remove", ErrInsufficientStock)
	}
	l.Quantity -= qty
	if l.Quantity == 0 {
		delete(c.lines, medicineID)
		for i, id := range c.order {
			if id == medicineID {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
	}
	return nil
}

// Quantity количество позиции в корзине, 0 если её нет
func (c *Cart) Quantity(medicineID string) int64 {
	if l, ok := c.lines[medicineID]; ok {
		return l.Quantity
	}
	return 0
}

func (c *Cart) Total() float64 {
	total := 0.0
	for _, id := range c.order {
		l := c.lines[id]
		total += l.Medicine.Price * float64(l.Quantity)
	}
	return total
}

// Lines копии позиций в порядке добавления
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

func (c *Cart) Len() int { return len(c.order) }
