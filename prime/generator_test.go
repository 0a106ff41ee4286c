package prime

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// sequenceSource replays a fixed list of values, cycling when exhausted.
type sequenceSource struct {
	values []uint64
	pos    int
}

func (s *sequenceSource) Uint64() uint64 {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

func hexStrings(values []*big.Int) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = FormatHex(v)
	}
	return out
}

// TestGenerateFixedSequence verifies rejection, fresh draws and discovery order.
func TestGenerateFixedSequence(t *testing.T) {
	src := &sequenceSource{values: []uint64{
		0,                  // next prime 2, rejected by the bit-run check
		0x4e39b752c62ad210, // next prime 0x4e39b752c62ad251
		0x4e39b752c62ad250, // composite with a trailing zero run; advances to 0x...251
		0x4e39b752c62ad251, // prime itself, advances to 0x...267
	}}
	g := NewGenerator(src)

	var emitted []string
	got, err := g.Generate(3, func(p *big.Int) error {
		emitted = append(emitted, FormatHex(p))
		return nil
	})
	require.NoError(t, err)
	want := []string{"0x4e39b752c62ad251", "0x4e39b752c62ad251", "0x4e39b752c62ad267"}
	require.Equal(t, want, hexStrings(got))
	require.Equal(t, want, emitted)
	require.Equal(t, Stats{Candidates: 4, Accepted: 3}, g.Stats())
}

func TestGenerateDeterministic(t *testing.T) {
	run := func() []string {
		src, err := NewSeededSource([]byte("reproducible"))
		require.NoError(t, err)
		got, err := NewGenerator(src).Generate(2, nil)
		require.NoError(t, err)
		return hexStrings(got)
	}
	first := run()
	require.Equal(t, first, run())
	require.Len(t, first, 2)
}

// TestGenerateResultsQualify checks every produced value against all checks.
func TestGenerateResultsQualify(t *testing.T) {
	src, err := NewSeededSource([]byte("qualify"))
	require.NoError(t, err)
	got, err := NewGenerator(src).Generate(3, nil)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, p := range got {
		r := Inspect(p)
		require.True(t, r.Qualifies(), "%s: %+v", FormatHex(p), r)
		require.GreaterOrEqual(t, p.BitLen(), 62)
	}
}

func TestGenerateZero(t *testing.T) {
	src := &sequenceSource{values: []uint64{0}}
	got, err := NewGenerator(src).Generate(0, nil)
	require.NoError(t, err)
	require.Empty(t, got)
	require.Zero(t, src.pos)
}

func TestGenerateNegative(t *testing.T) {
	_, err := NewGenerator(RuntimeSource{}).Generate(-1, nil)
	require.Error(t, err)
}

// TestGenerateAttemptsExhausted ensures a degenerate source fails instead of looping.
func TestGenerateAttemptsExhausted(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	src := &sequenceSource{values: []uint64{0x4e39b752c62ad210, 0, 0, 0, 0, 0, 0, 0, 0}}
	g := NewGenerator(src, WithMaxAttempts(5), WithLogger(zap.New(core)))

	got, err := g.Generate(2, nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrAttemptsExhausted))
	require.Equal(t, []string{"0x4e39b752c62ad251"}, hexStrings(got))
	require.Equal(t, Stats{Candidates: 6, Accepted: 1}, g.Stats())
	require.Equal(t, 1, logs.FilterMessage("no qualifying prime found").Len())
}

func TestGenerateEmitError(t *testing.T) {
	src := &sequenceSource{values: []uint64{0x4e39b752c62ad210}}
	boom := errors.New("sink closed")
	calls := 0
	got, err := NewGenerator(src).Generate(3, func(*big.Int) error {
		calls++
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, calls)
	require.Len(t, got, 1)
}

func TestWithMaxAttemptsDefault(t *testing.T) {
	g := NewGenerator(RuntimeSource{}, WithMaxAttempts(0))
	require.Equal(t, DefaultMaxAttempts, g.maxAttempts)
	g = NewGenerator(RuntimeSource{}, WithMaxAttempts(10), WithLogger(nil))
	require.Equal(t, 10, g.maxAttempts)
	require.NotNil(t, g.logger)
}

func TestNextLogsAcceptance(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	src := &sequenceSource{values: []uint64{0, 0x4e39b752c62ad210}}
	p, err := NewGenerator(src, WithLogger(zap.New(core))).Next()
	require.NoError(t, err)
	require.Equal(t, "0x4e39b752c62ad251", FormatHex(p))

	entries := logs.FilterMessage("prime accepted").AllUntimed()
	require.Len(t, entries, 1)
	require.Equal(t, "0x4e39b752c62ad251", entries[0].ContextMap()["value"])
	require.EqualValues(t, 2, entries[0].ContextMap()["attempts"])
}
