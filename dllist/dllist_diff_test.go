package dllist

import (
	"math/rand"
	"testing"

	"github.com/sirkon/deepequal"
	"github.com/sirkon/errors"
	"github.com/sirkon/seqlist/arrlist"
	"github.com/sirkon/seqlist/internal/tlog"
)

// TestAgainstArray прогон случайной последовательности операций одновременно
// над связным списком и списком на массиве с проверкой целостности после
// каждого шага.
func TestAgainstArray(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	l := New[int]()
	a := arrlist.New[int]()

	for step := 0; step < 5000; step++ {
		v := rnd.Intn(10)
		pos := rnd.Intn(l.Len()+3) - 1

		var op string
		var errL, errA error
		switch rnd.Intn(10) {
		case 0:
			op = "push"
			l.Push(v)
			a.Push(v)
		case 1:
			op = "push-front"
			l.PushFront(v)
			a.PushFront(v)
		case 2:
			op = "insert"
			errL = l.Insert(pos, v)
			errA = a.Insert(pos, v)
		case 3:
			op = "delete"
			errL = l.Delete(pos)
			errA = a.Delete(pos)
		case 4:
			op = "delete-first"
			errL = l.DeleteFirst()
			errA = a.DeleteFirst()
		case 5:
			op = "delete-last"
			errL = l.DeleteLast()
			errA = a.DeleteLast()
		case 6:
			op = "delete-value"
			if l.DeleteValue(v) != a.DeleteValue(v) {
				t.Errorf("step %d: delete value %d results differ", step, v)
				return
			}
		case 7:
			op = "set"
			errL = l.Set(pos, v)
			errA = a.Set(pos, v)
		case 8:
			op = "index"
			if l.Index(v) != a.Index(v) || l.LastIndex(v) != a.LastIndex(v) {
				t.Errorf("step %d: index of %d differs", step, v)
				return
			}
		case 9:
			op = "get"
			gl, el := l.Get(pos)
			ga, ea := a.Get(pos)
			errL, errA = el, ea
			if el == nil && gl != ga {
				t.Errorf("step %d: get %d returned %d and %d", step, pos, gl, ga)
				return
			}
		}

		if (errL == nil) != (errA == nil) {
			tlog.Error(t, errors.New("operation outcomes differ").
				Str("operation", op).
				Int("step", step).
				Int("position", pos).
				Any("linked-error", errL).
				Any("array-error", errA))
			return
		}

		if err := checkLinks(l); err != nil {
			tlog.Error(t, errors.Wrap(err, "check links").Str("operation", op).Int("step", step))
			return
		}

		if !l.Equal(a) || !a.Equal(l) {
			t.Errorf("step %d (%s): %s != %s", step, op, l, a)
			return
		}
	}

	deepequal.SideBySide(t, "final state", a.Slice(), l.Slice())
	if l.ReverseString() != a.ReverseString() {
		t.Errorf("reverse rendering differs: %s != %s", l.ReverseString(), a.ReverseString())
	}
}
