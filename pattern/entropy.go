package pattern

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// EntropySource yields values in [0, 1). Implementations used by a shared
// Selector must be safe for concurrent use.
type EntropySource interface {
	Float64() float64
}

// cryptoSource reads 53 bits from the operating system per draw.
type cryptoSource struct{}

func (cryptoSource) Float64() float64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return rand.Float64()
	}

	return float64(binary.BigEndian.Uint64(buf[:])>>11) / (1 << 53)
}

// CryptoSource returns the default ambient entropy source. It is safe for
// concurrent use.
func CryptoSource() EntropySource { return cryptoSource{} }

// seededSource is a reproducible PCG stream guarded by a mutex so one
// instance can feed several workers.
type seededSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededSource returns a reproducible, concurrency-safe source. Use it in
// tests and when a whole run has to be replayed.
func NewSeededSource(seed uint64) EntropySource {
	return &seededSource{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.r.Float64()
}
