package rankcheck

import (
	"strconv"
	"strings"
)

// positionSeparator joins positions in a stored SearchRecord.
const positionSeparator = ","

// MatchPositions returns the 1-based positions of every link whose URL
// contains target, compared case-insensitively. Positions are ascending.
func MatchPositions(links []ResultLink, target string) []int {
	if len(links) == 0 {
		return nil
	}

	lowerTarget := strings.ToLower(target)

	var positions []int
	for i, link := range links {
		if strings.Contains(strings.ToLower(link.URL), lowerTarget) {
			positions = append(positions, i+1)
		}
	}
	return positions
}

// FormatPositions renders positions as decimal strings.
func FormatPositions(positions []int) []string {
	out := make([]string, len(positions))
	for i, p := range positions {
		out[i] = strconv.Itoa(p)
	}
	return out
}

// JoinPositions encodes positions for storage on a SearchRecord.
func JoinPositions(positions []string) string {
	return strings.Join(positions, positionSeparator)
}

// SplitPositions decodes a stored positions string.
// The empty string decodes to an empty list.
func SplitPositions(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, positionSeparator)
}

// ParsePositions decodes a stored positions string into integers.
// Returns EINVALID if any element is not a positive integer.
func ParsePositions(s string) ([]int, error) {
	parts := SplitPositions(s)
	positions := make([]int, 0, len(parts))
	for _, part := range parts {
		p, err := strconv.Atoi(part)
		if err != nil || p < 1 {
			return nil, Errorf(EINVALID, "invalid position %q", part)
		}
		positions = append(positions, p)
	}
	return positions, nil
}
