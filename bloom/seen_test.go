package bloom_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/pagemd/bloom"
	"github.com/stretchr/testify/assert"
)

func TestSeenSet(t *testing.T) {
	t.Parallel()

	t.Run("first mark succeeds and repeat marks fail", func(t *testing.T) {
		t.Parallel()

		s := bloom.NewSeenSet(100, 0.01)

		assert.True(t, s.MarkSeen("https://example.com/a"))
		assert.False(t, s.MarkSeen("https://example.com/a"))
		assert.True(t, s.Seen("https://example.com/a"))
		assert.False(t, s.Seen("https://example.com/never"))
	})

	t.Run("fragment-only variations are the same URL", func(t *testing.T) {
		t.Parallel()

		s := bloom.NewSeenSet(100, 0.01)

		assert.True(t, s.MarkSeen("https://example.com/page#intro"))
		assert.False(t, s.MarkSeen("https://example.com/page#usage"))
		assert.False(t, s.MarkSeen("https://example.com/page"))
	})

	t.Run("estimated count tracks inserts", func(t *testing.T) {
		t.Parallel()

		s := bloom.NewSeenSet(1000, 0.01)
		for i := 0; i < 50; i++ {
			s.MarkSeen(fmt.Sprintf("https://example.com/%d", i))
		}

		count := s.EstimatedCount()
		assert.InDelta(t, 50, count, 5)
	})

	t.Run("safe for concurrent use", func(t *testing.T) {
		t.Parallel()

		s := bloom.NewSeenSet(1000, 0.01)

		var wg sync.WaitGroup
		for g := 0; g < 8; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 100; i++ {
					s.MarkSeen(fmt.Sprintf("https://example.com/%d", i))
					s.Seen(fmt.Sprintf("https://example.com/%d", i))
				}
			}()
		}
		wg.Wait()

		assert.True(t, s.Seen("https://example.com/0"))
	})
}
