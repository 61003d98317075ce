package services

import (
	"fmt"
	"strconv"
	"strings"
)

// VersionKey is a game version reduced to (major, minor, patch).
type VersionKey [3]int

// ParseVersion never fails. Each dot separated part contributes its leading
// digits ("20-pre1" is 20); parts without leading digits count as 0. Missing
// parts are 0 and anything past the third part is ignored.
func ParseVersion(raw string) VersionKey {
	var key VersionKey
	for i, part := range strings.SplitN(raw, ".", len(key)+1) {
		if i == len(key) {
			break
		}
		key[i] = leadingInt(part)
	}
	return key
}

func leadingInt(part string) int {
	part = strings.TrimSpace(part)
	end := 0
	for end < len(part) && part[end] >= '0' && part[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(part[:end])
	if err != nil {
		return 0
	}
	return n
}

func (k VersionKey) Major() int { return k[0] }
func (k VersionKey) Minor() int { return k[1] }
func (k VersionKey) Patch() int { return k[2] }

// Compare returns -1, 0 or 1 comparing major, then minor, then patch.
func (k VersionKey) Compare(other VersionKey) int {
	for i := range k {
		switch {
		case k[i] < other[i]:
			return -1
		case k[i] > other[i]:
			return 1
		}
	}
	return 0
}

func (k VersionKey) AtLeast(threshold VersionKey) bool {
	return k.Compare(threshold) >= 0
}

func (k VersionKey) String() string {
	return fmt.Sprintf("%d.%d.%d", k[0], k[1], k[2])
}

// CompareVersions parses both strings and compares the results.
func CompareVersions(a, b string) int {
	return ParseVersion(a).Compare(ParseVersion(b))
}

type VersionType string

const (
	VersionModern  VersionType = "modern"
	VersionStable  VersionType = "stable"
	VersionClassic VersionType = "classic"
	VersionRelease VersionType = "release"
)

// ClassifyVersion buckets 1.x releases by age for display.
func ClassifyVersion(version string) VersionType {
	key := ParseVersion(version)
	if key.Major() != 1 {
		return VersionRelease
	}
	switch {
	case key.Minor() >= 17:
		return VersionModern
	case key.Minor() >= 9:
		return VersionStable
	default:
		return VersionClassic
	}
}
