package id

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Source produces transaction ids. Implementations must return a distinct id
// on every call, including calls made in the same instant.
type Source interface {
	NewID(now time.Time) string
}

// TimestampSource formats ids as "<unix-ms>-<seq>". The sequence number is a
// process-wide counter, so two calls in the same millisecond never collide.
type TimestampSource struct {
	seq atomic.Uint64
}

// NewTimestampSource returns a TimestampSource starting at sequence 1.
func NewTimestampSource() *TimestampSource {
	return &TimestampSource{}
}

// NewID returns the next timestamp id.
func (s *TimestampSource) NewID(now time.Time) string {
	return FormatTimestampID(now.UnixMilli(), s.seq.Add(1))
}

// UUIDSource returns random v4 UUIDs.
type UUIDSource struct{}

// NewID returns a new random UUID. now is ignored.
func (UUIDSource) NewID(time.Time) string {
	return uuid.NewString()
}

// ForStrategy returns the Source for a configured strategy name.
func ForStrategy(strategy string) (Source, error) {
	switch strings.ToLower(strategy) {
	case "", "timestamp":
		return NewTimestampSource(), nil
	case "uuid":
		return UUIDSource{}, nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}

// FormatTimestampID returns an id like "1735689600000-7".
func FormatTimestampID(unixMilli int64, seq uint64) string {
	return strconv.FormatInt(unixMilli, 10) + "-" + strconv.FormatUint(seq, 10)
}

// ParseTimestampID parses "1735689600000-7" into its millisecond and sequence parts.
func ParseTimestampID(id string) (unixMilli int64, seq uint64, err error) {
	ms, rest, ok := strings.Cut(id, "-")
	if !ok {
		return 0, 0, fmt.Errorf("invalid timestamp id format: %q", id)
	}

	unixMilli, err = strconv.ParseInt(ms, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid timestamp in id %q: %w", id, err)
	}

	seq, err = strconv.ParseUint(rest, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid sequence in id %q: %w", id, err)
	}

	return unixMilli, seq, nil
}
