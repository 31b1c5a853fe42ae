package video

import (
	"fmt"
	"strconv"
	"strings"
)

// Quality is the minimum acceptable vertical resolution.
type Quality int

const (
	Q720  Quality = 720
	Q1080 Quality = 1080
	Q1440 Quality = 1440
	Q2160 Quality = 2160
)

// DefaultQuality is preselected in every front end.
const DefaultQuality = Q720

// Qualities lists the selectable thresholds in ascending order.
var Qualities = []Quality{Q720, Q1080, Q1440, Q2160}

// Label is the human-readable name of the threshold.
func (q Quality) Label() string {
	if q == Q2160 {
		return "4K"
	}
	return fmt.Sprintf("%dp", q)
}

func (q Quality) String() string {
	return strconv.Itoa(int(q))
}

// Valid reports whether q is one of Qualities.
func (q Quality) Valid() bool {
	for _, v := range Qualities {
		if v == q {
			return true
		}
	}
	return false
}

// ParseQuality accepts a number ("1080"), a label ("1080p", "4K") or "2160p".
func ParseQuality(s string) (Quality, error) {
	s = strings.TrimSpace(s)
	for _, q := range Qualities {
		if strings.EqualFold(s, q.Label()) || s == q.String() || strings.EqualFold(s, q.String()+"p") {
			return q, nil
		}
	}
	return 0, fmt.Errorf("unknown quality %q, expected one of 720, 1080, 1440, 2160", s)
}

// leadingInt parses the leading decimal integer of s after optional whitespace
// and sign, ignoring anything that follows. "720p" is 720, "abc" is not a number.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
