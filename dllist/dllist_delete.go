package dllist

// Delete удаление элемента на позиции pos.
func (l *List[T]) Delete(pos int) error {
	if l.size == 0 {
		return l.errEmpty("delete")
	}
	if pos < 0 || pos >= l.size {
		return l.errIndex("delete", pos)
	}

	l.unlink(l.nodeAt(pos))
	return nil
}

// DeleteFirst удаление первого элемента списка.
func (l *List[T]) DeleteFirst() error {
	if l.size == 0 {
		return l.errEmpty("delete first")
	}

	l.unlink(l.first)
	return nil
}

// DeleteLast удаление последнего элемента списка.
func (l *List[T]) DeleteLast() error {
	if l.size == 0 {
		return l.errEmpty("delete last")
	}

	l.unlink(l.last)
	return nil
}

// DeleteValue удаление первого от начала списка элемента равного v.
// Возвращает false, если такого элемента не нашлось и список не изменился.
func (l *List[T]) DeleteValue(v T) bool {
	for n := l.first; n != nil; n = n.next {
		if l.eq(n.value, v) {
			l.unlink(n)
			return true
		}
	}

	return false
}

// unlink удаление данного узла из списка.
func (l *List[T]) unlink(n *node[T]) {
	switch {
	case n.prev == nil && n.next == nil:
		// в списке был только один элемент
		l.first = nil
		l.last = nil
	case n.prev == nil:
		l.first = n.next
		l.first.prev = nil
	case n.next == nil:
		l.last = n.prev
		l.last.next = nil
	default:
		n.prev.next = n.next
		n.next.prev = n.prev
	}

	l.size--
	n.cleanup() // для упрощения работы GC
}
