package dllist

import (
	"github.com/sirkon/errors"
)

// checkLinks проверка целостности связей списка.
func checkLinks[T any](l *List[T]) error {
	if l.size < 0 {
		return errors.New("negative size").Int("size", l.size)
	}

	if l.size == 0 {
		if l.first != nil || l.last != nil {
			return errors.New("empty list must have neither first nor last node").
				Bool("has-first", l.first != nil).
				Bool("has-last", l.last != nil)
		}
		return nil
	}

	if l.first == nil || l.last == nil {
		return errors.New("non-empty list must have both first and last node").
			Int("size", l.size).
			Bool("has-first", l.first != nil).
			Bool("has-last", l.last != nil)
	}

	if l.first.prev != nil {
		return errors.New("first node has a predecessor")
	}
	if l.last.next != nil {
		return errors.New("last node has a successor")
	}

	var count int
	var prev *node[T]
	for n := l.first; n != nil; n = n.next {
		if n.prev != prev {
			return errors.New("broken back link").Int("position", count)
		}
		if count == l.size-1 && n != l.last {
			return errors.New("forward walk does not end at last node").Int("size", l.size)
		}

		prev = n
		count++
		if count > l.size {
			return errors.New("forward walk is longer than size").Int("size", l.size)
		}
	}
	if count != l.size {
		return errors.New("size mismatch on forward walk").
			Int("size", l.size).
			Int("walked", count)
	}

	count = 0
	for n := l.last; n != nil; n = n.prev {
		count++
		if count > l.size {
			return errors.New("backward walk is longer than size").Int("size", l.size)
		}
		if count == l.size && n != l.first {
			return errors.New("backward walk does not end at first node").Int("size", l.size)
		}
	}
	if count != l.size {
		return errors.New("size mismatch on backward walk").
			Int("size", l.size).
			Int("walked", count)
	}

	return nil
}
