package domain

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Stream is an append-only, oldest-first line history. Once Saturated it
// holds a single capped line and never grows again.
type Stream struct {
	Lines     []string `json:"lines"`
	Saturated bool     `json:"saturated"`
}

func (s Stream) Joined() string {
	return strings.Join(s.Lines, " ")
}

func (s Stream) JoinedLen() int {
	return utf8.RuneCountInString(s.Joined())
}

func (s Stream) Last() string {
	if len(s.Lines) == 0 {
		return ""
	}
	return s.Lines[len(s.Lines)-1]
}

func (s Stream) Clone() Stream {
	return Stream{Lines: slices.Clone(s.Lines), Saturated: s.Saturated}
}

// Append adds line and enforces limit. It reports whether this call
// saturated the stream. Appending to a saturated stream is a no-op.
func (s *Stream) Append(line string, limit int) bool {
	if s == nil || s.Saturated {
		return false
	}

	s.Lines = append(s.Lines, line)
	return s.enforceCap(limit)
}

func (s *Stream) enforceCap(limit int) bool {
	joined := s.Joined()
	if utf8.RuneCountInString(joined) < limit {
		return false
	}

	s.Lines = []string{truncateRunes(joined, limit)}
	s.Saturated = true
	return true
}

func truncateRunes(value string, limit int) string {
	if limit <= 0 {
		return ""
	}

	count := 0
	for i := range value {
		if count == limit {
			return value[:i]
		}
		count++
	}

	return value
}
