package list

import "github.com/sirkon/errors"

// ErrEmptyCollection операция требует хотя бы одного элемента в списке.
var ErrEmptyCollection = errors.Const("collection is empty")

// ErrIndexOutOfRange позиция за пределами допустимого для операции диапазона.
var ErrIndexOutOfRange = errors.Const("index out of range")

// EmptyCollection ошибка операции op над пустым списком.
func EmptyCollection(op string) error {
	return errors.Wrap(ErrEmptyCollection, op)
}

// IndexOutOfRange ошибка операции op с позицией pos при длине списка length.
func IndexOutOfRange(op string, pos, length int) error {
	return errors.Wrap(ErrIndexOutOfRange, op).
		Int("position", pos).
		Int("length", length)
}
