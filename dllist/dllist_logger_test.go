package dllist

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirkon/seqlist/internal/mocks"
	"github.com/sirkon/seqlist/internal/tlog"
	"github.com/sirkon/seqlist/list"
)

func TestLogger(t *testing.T) {
	t.Run("rejected-operations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mocks.NewLoggerMock(ctrl)

		gomock.InOrder(
			m.EXPECT().WarningEmptyCollection("first"),
			m.EXPECT().WarningEmptyCollection("delete"),
			m.EXPECT().WarningIndexOutOfRange("get", 0, 0),
			m.EXPECT().WarningIndexOutOfRange("insert", 5, 1),
			m.EXPECT().WarningIndexOutOfRange("delete", -1, 1),
		)

		l := New[int](WithLogger(m))
		_, err := l.First()
		tlog.ExpectIs(t, err, list.ErrEmptyCollection)
		tlog.ExpectIs(t, l.Delete(0), list.ErrEmptyCollection)
		_, err = l.Get(0)
		tlog.ExpectIs(t, err, list.ErrIndexOutOfRange)

		l.Push(1)
		tlog.ExpectIs(t, l.Insert(5, 2), list.ErrIndexOutOfRange)
		tlog.ExpectIs(t, l.Delete(-1), list.ErrIndexOutOfRange)
	})

	t.Run("successful-operations-are-silent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mocks.NewLoggerMock(ctrl)

		l := New[string](WithLogger(m))
		l.Push("a")
		l.PushFront("b")
		if tlog.Check(t, l.Insert(1, "c")) {
			return
		}
		if _, err := l.Get(2); tlog.Check(t, err) {
			return
		}
		if tlog.Check(t, l.DeleteLast()) {
			return
		}
		l.DeleteValue("missing")
	})

	t.Run("copies-inherit-logger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mocks.NewLoggerMock(ctrl)
		m.EXPECT().WarningEmptyCollection("delete last").Times(2)

		l := New[int](WithLogger(m))
		l.Push(1)

		rest, err := l.Rest()
		if tlog.Check(t, err) {
			return
		}
		tlog.ExpectIs(t, rest.DeleteLast(), list.ErrEmptyCollection)

		c := rest.Copy()
		tlog.ExpectIs(t, c.DeleteLast(), list.ErrEmptyCollection)
	})

	t.Run("nil-logger", func(t *testing.T) {
		l := New[int](WithLogger(nil))
		tlog.ExpectIs(t, l.DeleteFirst(), list.ErrEmptyCollection)
	})
}
