package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPool_RunsEveryJob(t *testing.T) {
	for _, workers := range []int{0, 1, 4} {
		pool := Start(workers)

		var count atomic.Int64
		for i := range 100 {
			pool.Do(func() { count.Add(int64(i)) })
		}
		pool.Wait()

		assert.Equal(t, int64(4950), count.Load(), "workers=%d", workers)
	}
}

func TestPool_SingleWorkerRunsInline(t *testing.T) {
	pool := Start(1)

	ran := false
	pool.Do(func() { ran = true })
	assert.True(t, ran)

	pool.Wait()
	pool.Wait()
}

func TestPool_WaitIsIdempotent(t *testing.T) {
	pool := Start(3)
	pool.Do(func() {})
	pool.Wait()
	pool.Wait()
}
