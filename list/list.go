// Package list общий контракт списков, не зависящий от их внутреннего представления.
package list

import "iter"

// List абстракция списка с позиционным доступом. Реализуется как связным
// списком, так и списком поверх массива, и списки разных представлений
// можно сравнивать друг с другом через Equal.
//
// WARNING: реализации не обязаны предоставлять гарантий безопасности при многопоточном доступе.
type List[T any] interface {
	// IsEmpty проверка, что в списке нет элементов.
	IsEmpty() bool
	// Len возвращает число элементов списка.
	Len() int

	// Push добавление значения в конец списка.
	Push(v T)
	// PushFront добавление значения в начало списка.
	PushFront(v T)
	// Insert вставка значения так, чтобы оно оказалось на позиции pos.
	// Допустимы позиции от 0 до Len() включительно.
	Insert(pos int, v T) error

	// Delete удаление элемента на позиции pos.
	Delete(pos int) error
	// DeleteFirst удаление первого элемента.
	DeleteFirst() error
	// DeleteLast удаление последнего элемента.
	DeleteLast() error
	// DeleteValue удаление первого от начала элемента равного v.
	// Возвращает false, если такого элемента нет.
	DeleteValue(v T) bool

	// Get значение на позиции pos.
	Get(pos int) (T, error)
	// Set замена значения на позиции pos.
	Set(pos int, v T) error
	// First значение в начале списка.
	First() (T, error)
	// Last значение в конце списка.
	Last() (T, error)
	// Index позиция первого элемента равного v или -1.
	Index(v T) int
	// LastIndex позиция последнего элемента равного v или -1.
	LastIndex(v T) int

	// Clear удаление всех элементов.
	Clear()

	// All последовательность значений от начала к концу.
	All() iter.Seq[T]
	// Backward последовательность значений от конца к началу.
	Backward() iter.Seq[T]

	// String представление вида [1, 2, 3].
	String() string
	// ReverseString то же, что и String, но в обратном порядке.
	ReverseString() string

	// Equal проверка на равенство с другим списком произвольного представления.
	Equal(other List[T]) bool
	// Hash хэш списка.
	Hash() int
}
