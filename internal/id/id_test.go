package id

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimestampID(t *testing.T) {
	tests := []struct {
		ms   int64
		seq  uint64
		want string
	}{
		{1735689600000, 1, "1735689600000-1"},
		{1735689600000, 42, "1735689600000-42"},
		{0, 7, "0-7"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTimestampID(tt.ms, tt.seq))
	}
}

func TestParseTimestampID(t *testing.T) {
	ms, seq, err := ParseTimestampID("1735689600000-42")
	require.NoError(t, err)
	assert.Equal(t, int64(1735689600000), ms)
	assert.Equal(t, uint64(42), seq)
}

func TestParseTimestampID_Errors(t *testing.T) {
	badInputs := []string{
		"",
		"1735689600000",
		"abc-1",
		"1735689600000-x",
		"1735689600000--1",
	}
	for _, input := range badInputs {
		_, _, err := ParseTimestampID(input)
		assert.Error(t, err, "expected error for input: %s", input)
	}
}

func TestTimestampSource_SameInstant(t *testing.T) {
	src := NewTimestampSource()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	first := src.NewID(now)
	second := src.NewID(now)
	assert.NotEqual(t, first, second)

	ms1, seq1, err := ParseTimestampID(first)
	require.NoError(t, err)
	ms2, seq2, err := ParseTimestampID(second)
	require.NoError(t, err)
	assert.Equal(t, now.UnixMilli(), ms1)
	assert.Equal(t, ms1, ms2)
	assert.Equal(t, seq1+1, seq2)
}

func TestTimestampSource_Concurrent(t *testing.T) {
	src := NewTimestampSource()
	now := time.Now()

	const workers, perWorker = 8, 250
	var mu sync.Mutex
	seen := make(map[string]bool, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := src.NewID(now)
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}

func TestUUIDSource(t *testing.T) {
	var src UUIDSource
	a := src.NewID(time.Time{})
	b := src.NewID(time.Time{})
	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}

func TestForStrategy(t *testing.T) {
	src, err := ForStrategy("")
	require.NoError(t, err)
	assert.IsType(t, &TimestampSource{}, src)

	src, err = ForStrategy("UUID")
	require.NoError(t, err)
	assert.IsType(t, UUIDSource{}, src)

	_, err = ForStrategy("snowflake")
	assert.Error(t, err)
}
