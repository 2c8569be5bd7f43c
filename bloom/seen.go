// Package bloom provides probabilistic URL deduplication for batch runs.
package bloom

import (
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// SeenSet tracks URLs that have already been queued or converted.
// URL fragments are stripped before membership checks, so URLs that
// differ only by fragment count as duplicates. False positives are
// possible (a never-seen URL may be reported seen); false negatives
// are not. Safe for concurrent use.
type SeenSet struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewSeenSet creates a SeenSet sized for n expected URLs with the given
// false positive rate.
func NewSeenSet(n uint, fpRate float64) *SeenSet {
	return &SeenSet{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// MarkSeen records a URL. It returns false if the URL was already seen.
func (s *SeenSet) MarkSeen(url string) bool {
	key := stripFragment(url)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f.TestString(key) {
		return false
	}
	s.f.AddString(key)
	return true
}

// Seen reports whether the URL might already have been recorded.
func (s *SeenSet) Seen(url string) bool {
	key := stripFragment(url)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.TestString(key)
}

// EstimatedCount returns the approximate number of recorded URLs.
func (s *SeenSet) EstimatedCount() uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return uint(s.f.ApproximatedSize())
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
