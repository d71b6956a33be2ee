// Package dllist двусвязный список с позиционным доступом.
package dllist

import (
	"github.com/sirkon/seqlist/list"
	"github.com/sirkon/seqlist/logging"
)

var _ list.List[int] = &List[int]{}

// New конструктор пустого двусвязного списка сравнимых значений.
func New[T comparable](opts ...Opt) *List[T] {
	return newList(func(a, b T) bool { return a == b }, opts)
}

// NewFunc конструктор пустого двусвязного списка произвольных значений
// с заданной функцией сравнения.
func NewFunc[T any](eq func(a, b T) bool, opts ...Opt) *List[T] {
	return newList(eq, opts)
}

// Of конструктор списка из данных значений в том же порядке.
func Of[T comparable](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.Push(v)
	}

	return l
}

func newList[T any](eq func(a, b T) bool, opts []Opt) *List[T] {
	s := settings{
		log: logging.Nop(),
	}
	for _, opt := range opts {
		opt(&s, optRestriction{})
	}

	return &List[T]{
		eq:  eq,
		log: s.log,
	}
}

// List двусвязный список.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
//          Изменение списка во время итерации по нему приводит к неопределённому результату.
// Нулевое значение не готово к использованию, списки создаются конструкторами.
type List[T any] struct {
	first *node[T]
	last  *node[T]
	size  int

	eq  func(a, b T) bool
	log logging.Logger
}

// IsEmpty проверка, что список пуст.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Len возвращает число элементов списка.
func (l *List[T]) Len() int {
	return l.size
}

// Clear удаление всех элементов списка.
func (l *List[T]) Clear() {
	// Связи между узлами разрываем, чтобы висящий снаружи итератор
	// не удерживал всю цепочку.
	for n := l.first; n != nil; {
		next := n.next
		n.cleanup()
		n = next
	}

	l.first = nil
	l.last = nil
	l.size = 0
}

// Hash хэш списка. Зависит только от длины: равные списки имеют равные хэши,
// но и любые списки одной длины тоже.
func (l *List[T]) Hash() int {
	return l.size
}

func (l *List[T]) errEmpty(op string) error {
	l.log.WarningEmptyCollection(op)
	return list.EmptyCollection(op)
}

func (l *List[T]) errIndex(op string, pos int) error {
	l.log.WarningIndexOutOfRange(op, pos, l.size)
	return list.IndexOutOfRange(op, pos, l.size)
}
