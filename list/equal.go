package list

import "iter"

// EqualFunc сравнение двух списков через их общий интерфейс: списки равны,
// если у них одинаковая длина и попарно равные с точки зрения eq значения
// в одном и том же порядке. Внутреннее представление роли не играет.
func EqualFunc[T any](a, b List[T], eq func(x, y T) bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if a.Len() != b.Len() {
		return false
	}

	next, stop := iter.Pull(b.All())
	defer stop()

	for v := range a.All() {
		w, ok := next()
		if !ok || !eq(v, w) {
			return false
		}
	}

	_, ok := next()
	return !ok
}
