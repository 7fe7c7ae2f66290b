package lib

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderNumberPattern = regexp.MustCompile(`^ORD-\d+-[A-Z0-9]{4}$`)

func TestGenerateOrderNumberFormat(t *testing.T) {
	num, err := GenerateOrderNumber()
	require.NoError(t, err)
	assert.Regexp(t, orderNumberPattern, num)
}

func TestGenerateOrderNumberConcurrentUniqueness(t *testing.T) {
	const n = 200

	var mu sync.Mutex
	var wg sync.WaitGroup
	seen := make(map[string]bool, n)

	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			num, err := GenerateOrderNumber()
			assert.NoError(t, err)

			mu.Lock()
			defer mu.Unlock()
			assert.False(t, seen[num], "duplicate order number: %s", num)
			seen[num] = true
		}()
	}
	wg.Wait()

	assert.Len(t, seen, n)
}
