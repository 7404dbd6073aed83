package pool

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFloorsWorkersAtOne(t *testing.T) {
	assert.Equal(t, 1, New(0).Workers())
	assert.Equal(t, 1, New(-3).Workers())
	assert.Equal(t, 4, New(4).Workers())
}

func TestDefaultReturnsSamePoolEveryTime(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestGroupRunsAllScheduledTasks(t *testing.T) {
	p := New(4)
	g := p.NewGroup()

	var count int64
	for i := 0; i < 100; i++ {
		g.Go(func() { atomic.AddInt64(&count, 1) })
	}
	g.Wait()

	assert.Equal(t, int64(100), count)
}

func TestGroupRePanicsFirstRecoveredPanic(t *testing.T) {
	p := New(4)
	g := p.NewGroup()

	g.Go(func() { panic("boom") })
	g.Go(func() {})

	assert.PanicsWithValue(t, "boom", func() { g.Wait() })
}

func TestGroupWaitIsANoOpWithNoTasks(t *testing.T) {
	p := New(2)
	g := p.NewGroup()
	assert.NotPanics(t, func() { g.Wait() })
}
