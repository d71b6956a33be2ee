// Package arrlist список поверх массива с тем же контрактом, что и у dllist.
package arrlist

import (
	"iter"

	"github.com/sirkon/seqlist/internal/render"
	"github.com/sirkon/seqlist/list"
	"github.com/sirkon/seqlist/logging"
	"golang.org/x/exp/slices"
)

var _ list.List[int] = &List[int]{}

// New конструктор пустого списка сравнимых значений.
func New[T comparable](opts ...Opt) *List[T] {
	return newList(func(a, b T) bool { return a == b }, opts)
}

// NewFunc конструктор пустого списка с заданной функцией сравнения значений.
func NewFunc[T any](eq func(a, b T) bool, opts ...Opt) *List[T] {
	return newList(eq, opts)
}

// Of конструктор списка из данных значений.
func Of[T comparable](values ...T) *List[T] {
	l := New[T]()
	l.items = slices.Clone(values)
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

// List список поверх массива.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type List[T any] struct {
	items []T

	eq  func(a, b T) bool
	log logging.Logger
}

// IsEmpty проверка, что список пуст.
func (l *List[T]) IsEmpty() bool {
	return len(l.items) == 0
}

// Len возвращает число элементов.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Push добавление в конец.
func (l *List[T]) Push(v T) {
	l.items = append(l.items, v)
}

// PushFront добавление в начало.
func (l *List[T]) PushFront(v T) {
	l.items = slices.Insert(l.items, 0, v)
}

// Insert вставка значения на позицию pos, 0 <= pos <= Len().
func (l *List[T]) Insert(pos int, v T) error {
	if pos < 0 || pos > len(l.items) {
		return l.errIndex("insert", pos)
	}

	l.items = slices.Insert(l.items, pos, v)
	return nil
}

// Delete удаление элемента на позиции pos.
func (l *List[T]) Delete(pos int) error {
	return l.delete("delete", pos)
}

// DeleteFirst удаление первого элемента.
func (l *List[T]) DeleteFirst() error {
	return l.delete("delete first", 0)
}

// DeleteLast удаление последнего элемента.
func (l *List[T]) DeleteLast() error {
	return l.delete("delete last", len(l.items)-1)
}

// DeleteValue удаление первого элемента равного v.
func (l *List[T]) DeleteValue(v T) bool {
	i := l.Index(v)
	if i < 0 {
		return false
	}

	l.cut(i)
	return true
}

// Get значение на позиции pos.
func (l *List[T]) Get(pos int) (T, error) {
	if pos < 0 || pos >= len(l.items) {
		var zero T
		return zero, l.errIndex("get", pos)
	}

	return l.items[pos], nil
}

// Set замена значения на позиции pos.
func (l *List[T]) Set(pos int, v T) error {
	if pos < 0 || pos >= len(l.items) {
		return l.errIndex("set", pos)
	}

	l.items[pos] = v
	return nil
}

// First первое значение.
func (l *List[T]) First() (T, error) {
	if len(l.items) == 0 {
		var zero T
		return zero, l.errEmpty("first")
	}

	return l.items[0], nil
}

// Last последнее значение.
func (l *List[T]) Last() (T, error) {
	if len(l.items) == 0 {
		var zero T
		return zero, l.errEmpty("last")
	}

	return l.items[len(l.items)-1], nil
}

// Rest новый список из всех элементов кроме первого.
func (l *List[T]) Rest() (*List[T], error) {
	if len(l.items) == 0 {
		return nil, l.errEmpty("rest")
	}

	return &List[T]{
		items: slices.Clone(l.items[1:]),
		eq:    l.eq,
		log:   l.log,
	}, nil
}

// Index позиция первого элемента равного v или -1.
func (l *List[T]) Index(v T) int {
	return slices.IndexFunc(l.items, func(x T) bool {
		return l.eq(x, v)
	})
}

// LastIndex позиция последнего элемента равного v или -1.
func (l *List[T]) LastIndex(v T) int {
	for i := len(l.items) - 1; i >= 0; i-- {
		if l.eq(l.items[i], v) {
			return i
		}
	}

	return -1
}

// Copy независимая копия списка.
func (l *List[T]) Copy() *List[T] {
	return &List[T]{
		items: slices.Clone(l.items),
		eq:    l.eq,
		log:   l.log,
	}
}

// Clear удаление всех элементов.
func (l *List[T]) Clear() {
	l.items = nil
}

// Slice значения списка.
func (l *List[T]) Slice() []T {
	return slices.Clone(l.items)
}

// All последовательность значений от начала к концу.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward последовательность значений от конца к началу.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(l.items) - 1; i >= 0; i-- {
			if !yield(l.items[i]) {
				return
			}
		}
	}
}

// String представление вида [1, 2, 3].
func (l *List[T]) String() string {
	return render.Seq(l.All())
}

// ReverseString представление в обратном порядке.
func (l *List[T]) ReverseString() string {
	return render.Seq(l.Backward())
}

// Equal сравнение со списком любого представления.
func (l *List[T]) Equal(other list.List[T]) bool {
	return list.EqualFunc[T](l, other, l.eq)
}

// Hash хэш списка, равен его длине.
func (l *List[T]) Hash() int {
	return len(l.items)
}

func (l *List[T]) delete(op string, pos int) error {
	if len(l.items) == 0 {
		return l.errEmpty(op)
	}
	if pos < 0 || pos >= len(l.items) {
		return l.errIndex(op, pos)
	}

	l.cut(pos)
	return nil
}

// cut удаление элемента на заведомо правильной позиции.
func (l *List[T]) cut(pos int) {
	n := len(l.items)
	l.items = slices.Delete(l.items, pos, pos+1)

	// Освободившийся хвост массива не должен удерживать значения.
	var zero T
	l.items[:n][n-1] = zero
}

func (l *List[T]) errEmpty(op string) error {
	l.log.WarningEmptyCollection(op)
	return list.EmptyCollection(op)
}

func (l *List[T]) errIndex(op string, pos int) error {
	l.log.WarningIndexOutOfRange(op, pos, len(l.items))
	return list.IndexOutOfRange(op, pos, len(l.items))
}
