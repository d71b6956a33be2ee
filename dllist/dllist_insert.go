package dllist

// Push добавление нового значения в конец списка.
func (l *List[T]) Push(v T) {
	n := &node[T]{
		next:  nil,
		prev:  l.last,
		value: v,
	}

	if l.first == nil {
		l.first = n
		l.last = n
		l.size++
		return
	}

	l.last.next = n
	l.last = n
	l.size++
}

// PushFront добавление нового значения в начало списка.
func (l *List[T]) PushFront(v T) {
	n := &node[T]{
		next:  l.first,
		prev:  nil,
		value: v,
	}

	if l.first == nil {
		l.first = n
		l.last = n
		l.size++
		return
	}

	l.first.prev = n
	l.first = n
	l.size++
}

// Insert вставка значения так, чтобы оно оказалось на позиции pos.
// Позиция должна быть в пределах от 0 до Len() включительно.
func (l *List[T]) Insert(pos int, v T) error {
	if pos < 0 || pos > l.size {
		return l.errIndex("insert", pos)
	}

	switch pos {
	case 0:
		l.PushFront(v)
		return nil
	case l.size:
		l.Push(v)
		return nil
	}

	// Здесь 0 < pos < size, поэтому у вытесняемого узла гарантированно
	// есть предшественник.
	at := l.nodeAt(pos)
	n := &node[T]{
		prev:  at.prev,
		next:  at,
		value: v,
	}
	at.prev.next = n
	at.prev = n
	l.size++

	return nil
}
