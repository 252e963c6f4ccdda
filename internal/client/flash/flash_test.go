package flash

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue_AddKeepsOrder(t *testing.T) {
	q := NewQueue()
	q.Add("one")
	q.Add("two")
	q.Add("three")

	assert.Equal(t, []string{"one", "two", "three"}, q.List())
	assert.Equal(t, 3, q.Len())
}

func TestQueue_RemoveByPosition(t *testing.T) {
	tests := []struct {
		name   string
		idx    int
		ok     bool
		remain []string
	}{
		{name: "first", idx: 0, ok: true, remain: []string{"b", "c"}},
		{name: "middle", idx: 1, ok: true, remain: []string{"a", "c"}},
		{name: "last", idx: 2, ok: true, remain: []string{"a", "b"}},
		{name: "negative", idx: -1, ok: false, remain: []string{"a", "b", "c"}},
		{name: "past end", idx: 3, ok: false, remain: []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQueue()
			for _, m := range []string{"a", "b", "c"} {
				q.Add(m)
			}
			assert.Equal(t, tt.ok, q.Remove(tt.idx))
			assert.Equal(t, tt.remain, q.List())
		})
	}
}

func TestQueue_RemoveDuplicateTextOnlyRemovesOne(t *testing.T) {
	q := NewQueue()
	q.Add("You have logged out.")
	q.Add("You have logged out.")

	assert.True(t, q.Remove(0))
	assert.Equal(t, []string{"You have logged out."}, q.List())
}

func TestQueue_ListIsACopy(t *testing.T) {
	q := NewQueue()
	q.Add("a")
	l := q.List()
	l[0] = "changed"

	assert.Equal(t, []string{"a"}, q.List())
}

func TestQueue_ConcurrentAdd(t *testing.T) {
	q := NewQueue()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			q.Add(fmt.Sprint(i))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, q.Len())
}
