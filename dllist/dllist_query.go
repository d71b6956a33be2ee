package dllist

// Get значение на позиции pos.
func (l *List[T]) Get(pos int) (T, error) {
	if pos < 0 || pos >= l.size {
		var zero T
		return zero, l.errIndex("get", pos)
	}

	return l.nodeAt(pos).value, nil
}

// Set замена значения на позиции pos. Структура списка не меняется.
func (l *List[T]) Set(pos int, v T) error {
	if pos < 0 || pos >= l.size {
		return l.errIndex("set", pos)
	}

	l.nodeAt(pos).value = v
	return nil
}

// First значение в начале списка.
func (l *List[T]) First() (T, error) {
	if l.first == nil {
		var zero T
		return zero, l.errEmpty("first")
	}

	return l.first.value, nil
}

// Last значение в конце списка.
func (l *List[T]) Last() (T, error) {
	if l.last == nil {
		var zero T
		return zero, l.errEmpty("last")
	}

	return l.last.value, nil
}

// Rest новый независимый список из всех элементов данного кроме первого.
// Данный список не меняется.
func (l *List[T]) Rest() (*List[T], error) {
	if l.size == 0 {
		return nil, l.errEmpty("rest")
	}

	res := l.Copy()
	res.unlink(res.first)
	return res, nil
}

// Index позиция первого от начала элемента равного v или -1, если такого нет.
func (l *List[T]) Index(v T) int {
	var i int
	for n := l.first; n != nil; n = n.next {
		if l.eq(n.value, v) {
			return i
		}
		i++
	}

	return -1
}

// LastIndex позиция первого от конца элемента равного v или -1, если такого нет.
func (l *List[T]) LastIndex(v T) int {
	i := l.size - 1
	for n := l.last; n != nil; n = n.prev {
		if l.eq(n.value, v) {
			return i
		}
		i--
	}

	return -1
}

// Copy копия списка с теми же значениями в том же порядке. Копия
// никак не связана с узлами исходного списка и наследует его настройки.
func (l *List[T]) Copy() *List[T] {
	res := &List[T]{
		eq:  l.eq,
		log: l.log,
	}
	for n := l.first; n != nil; n = n.next {
		res.Push(n.value)
	}

	return res
}

// Slice значения списка от начала к концу.
func (l *List[T]) Slice() []T {
	res := make([]T, 0, l.size)
	for n := l.first; n != nil; n = n.next {
		res = append(res, n.value)
	}

	return res
}

// nodeAt поиск узла на позиции pos проходом от начала списка.
// Позиция должна быть проверена заранее.
func (l *List[T]) nodeAt(pos int) *node[T] {
	n := l.first
	for i := 0; i < pos; i++ {
		n = n.next
	}

	return n
}
