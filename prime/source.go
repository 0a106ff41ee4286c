package prime

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/hkdf"
)

// Source produces uniformly distributed 64-bit values. It has the same method
// set as math/rand/v2.Source, so any generator from that package can be used.
type Source interface {
	Uint64() uint64
}

var (
	_ Source = (*SecureSource)(nil)
	_ Source = RuntimeSource{}
	_ Source = (*rand.ChaCha8)(nil)
)

// SecureSource draws candidates from the system CSPRNG through memguard,
// keeping unread entropy in locked memory. It is not safe for concurrent use.
type SecureSource struct {
	buf *memguard.LockedBuffer
	off int
}

// NewSecureSource returns a SecureSource. Call Destroy when done.
func NewSecureSource() *SecureSource {
	return &SecureSource{}
}

// Uint64 returns the next 8 bytes of locked entropy, refilling as needed.
func (s *SecureSource) Uint64() uint64 {
	if s.buf == nil || s.off+8 > s.buf.Size() {
		s.Destroy()
		s.buf = memguard.NewBufferRandom(secureBlockSize)
		s.off = 0
	}
	v := binary.LittleEndian.Uint64(s.buf.Bytes()[s.off:])
	s.off += 8
	return v
}

// Destroy wipes and releases any buffered entropy.
func (s *SecureSource) Destroy() {
	if s.buf != nil {
		s.buf.Destroy()
		s.buf = nil
	}
}

// RuntimeSource uses the process-wide math/rand/v2 generator.
type RuntimeSource struct{}

// Uint64 implements Source.
func (RuntimeSource) Uint64() uint64 {
	return rand.Uint64()
}

// NewSeededSource returns a deterministic source keyed by seed. The same seed
// always yields the same sequence.
func NewSeededSource(seed []byte) (*rand.ChaCha8, error) {
	if len(seed) == 0 {
		return nil, errors.New("seed must not be empty")
	}
	var key [32]byte
	h := hkdf.New(sha256.New, seed, nil, []byte(seedLabel))
	if _, err := io.ReadFull(h, key[:]); err != nil {
		return nil, fmt.Errorf("expand seed: %w", err)
	}
	return rand.NewChaCha8(key), nil
}
