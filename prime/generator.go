package prime

import (
	"errors"
	"fmt"
	"math/big"

	"go.uber.org/zap"
)

// ErrAttemptsExhausted is returned when too many consecutive candidates are
// rejected while searching for one qualifying prime.
var ErrAttemptsExhausted = errors.New("attempts exhausted")

// Option configures a Generator.
type Option func(*Generator)

// WithMaxAttempts bounds the consecutive rejected candidates per value.
// Values <= 0 select DefaultMaxAttempts.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n <= 0 {
			n = DefaultMaxAttempts
		}
		g.maxAttempts = n
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Stats counts the work done by a Generator.
type Stats struct {
	Candidates uint64
	Accepted   uint64
}

// Generator draws random candidates, advances each to the next prime and keeps
// those that pass the digit pattern predicates. It is not safe for concurrent use.
type Generator struct {
	src         Source
	maxAttempts int
	logger      *zap.Logger
	stats       Stats
}

// NewGenerator creates a Generator reading candidates from src.
func NewGenerator(src Source, opts ...Option) *Generator {
	g := &Generator{
		src:         src,
		maxAttempts: DefaultMaxAttempts,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Stats returns the counters accumulated so far.
func (g *Generator) Stats() Stats {
	return g.stats
}

// Next returns the next qualifying prime. Each rejected candidate is
// discarded and a fresh one drawn.
func (g *Generator) Next() (*big.Int, error) {
	candidate := new(big.Int)
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		candidate.SetUint64(g.src.Uint64())
		g.stats.Candidates++
		p := NextPrime(candidate)
		if !Qualifies(p) {
			continue
		}
		g.stats.Accepted++
		g.logger.Debug("prime accepted",
			zap.String("value", FormatHex(p)),
			zap.Int("attempts", attempt))
		return p, nil
	}
	g.logger.Warn("no qualifying prime found",
		zap.Int("max_attempts", g.maxAttempts),
		zap.Uint64("candidates", g.stats.Candidates))
	return nil, fmt.Errorf("%w: no qualifying prime after %d candidates", ErrAttemptsExhausted, g.maxAttempts)
}

// Generate collects n qualifying primes in discovery order. emit, when not
// nil, is called with each value as soon as it is accepted; an emit error
// stops generation. On error the values accepted so far are returned.
func (g *Generator) Generate(n int, emit func(*big.Int) error) ([]*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid count %d", n)
	}
	results := make([]*big.Int, 0, n)
	for len(results) < n {
		p, err := g.Next()
		if err != nil {
			return results, err
		}
		results = append(results, p)
		if emit != nil {
			if err := emit(p); err != nil {
				return results, fmt.Errorf("emit %s: %w", FormatHex(p), err)
			}
		}
	}
	return results, nil
}

// FormatHex renders x as lowercase hexadecimal with a 0x prefix.
func FormatHex(x *big.Int) string {
	if x.Sign() < 0 {
		return "-0x" + new(big.Int).Neg(x).Text(16)
	}
	return "0x" + x.Text(16)
}
