package dllist

// node узел содержащий данное значение в связанном списке.
// Узлы никогда не покидают пределов списка которому принадлежат.
type node[T any] struct {
	prev *node[T]
	next *node[T]

	value T
}

func (n *node[T]) cleanup() {
	n.prev = nil
	n.next = nil
}
