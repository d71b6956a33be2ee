package dllist_test

import (
	"fmt"

	"github.com/sirkon/errors"
	"github.com/sirkon/seqlist/dllist"
	"github.com/sirkon/seqlist/list"
)

func ExampleList() {
	l := dllist.New[int]()
	l.Push(2)
	l.Push(3)
	l.PushFront(1)
	if err := l.Insert(3, 4); err != nil {
		panic(errors.Wrap(err, "insert at the end"))
	}
	fmt.Println(l, l.ReverseString())

	rest, err := l.Rest()
	if err != nil {
		panic(errors.Wrap(err, "get rest of the list"))
	}
	fmt.Println(rest, l.Len())

	_, err = l.Get(10)
	fmt.Println(errors.Is(err, list.ErrIndexOutOfRange))

	// output:
	// [1, 2, 3, 4] [4, 3, 2, 1]
	// [2, 3, 4] 4
	// true
}
