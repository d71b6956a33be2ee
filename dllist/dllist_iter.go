package dllist

import (
	"iter"

	"github.com/sirkon/seqlist/internal/render"
	"github.com/sirkon/seqlist/list"
)

// Iter отдача итератора по списку от начала к концу. Каждый вызов
// даёт новый, независимый от прочих, проход.
func (l *List[T]) Iter() *Iterator[T] {
	return &Iterator[T]{
		next: l.first,
	}
}

// Iterator итератор по значениям списка.
type Iterator[T any] struct {
	cur  *node[T]
	next *node[T]
}

// Next проверка, что есть ещё непройденные узлы, с переходом к следующему из них.
func (i *Iterator[T]) Next() bool {
	if i.next == nil {
		i.cur = nil
		return false
	}

	i.cur = i.next
	i.next = i.cur.next
	return true
}

// Value значение на текущем шаге итерации.
// Вызывать можно только после Next вернувшего true.
func (i *Iterator[T]) Value() T {
	return i.cur.value
}

// All последовательность значений от начала к концу.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.first; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward последовательность значений от конца к началу.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.last; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// String представление списка вида [1, 2, 3].
func (l *List[T]) String() string {
	return render.Seq(l.All())
}

// ReverseString представление списка проходом от конца к началу.
func (l *List[T]) ReverseString() string {
	return render.Seq(l.Backward())
}

// Equal сравнение со списком любого представления.
func (l *List[T]) Equal(other list.List[T]) bool {
	return list.EqualFunc[T](l, other, l.eq)
}
