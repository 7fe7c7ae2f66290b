package lib

import (
	"crypto/rand"
	"fmt"
	"time"
)

const orderNumberChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateOrderNumber produces an order number in the format
// ORD-<millis>-<XXXX>. The random suffix keeps numbers collision-free when
// multiple orders land within the same millisecond.
func GenerateOrderNumber() (string, error) {
	const suffixLength = 4

	suffix := make([]byte, suffixLength)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("failed to generate order number suffix: %w", err)
	}
	for i := range suffix {
		suffix[i] = orderNumberChars[int(suffix[i])%len(orderNumberChars)]
	}

	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), string(suffix)), nil
}
