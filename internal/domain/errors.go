package domain

import "errors"

// Виды ошибок ядра. Вызывающая сторона сравнивает через errors.Is,
// сообщение уточняется обёрткой fmt.Errorf("%w: ...").
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)
