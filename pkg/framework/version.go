package framework

import (
	"strconv"
	"strings"
)

// Version is a four part framework version. Missing parts are zero.
type Version struct {
	Major    int
	Minor    int
	Build    int
	Revision int
}

// EmptyVersion is the 0.0 version carried by unversioned frameworks
var EmptyVersion = Version{}

// V builds a version from up to four parts
func V(parts ...int) Version {
	var v Version
	fields := []*int{&v.Major, &v.Minor, &v.Build, &v.Revision}
	for i, p := range parts {
		if i >= len(fields) {
			break
		}
		*fields[i] = p
	}
	return v
}

// ParseVersion parses a dotted version such as "4.7.2" or "v3.1".
// It accepts one to four non-negative numeric parts.
func ParseVersion(s string) (Version, bool) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "v"), "V")
	if s == "" {
		return EmptyVersion, false
	}

	parts := strings.Split(s, ".")
	if len(parts) > 4 {
		return EmptyVersion, false
	}

	nums := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || p == "" || p[0] == '+' {
			return EmptyVersion, false
		}
		nums = append(nums, n)
	}
	return V(nums...), true
}

// parseCompactVersion parses the dot-less form used by folder names such
// as net472, where every digit is one version part.
func parseCompactVersion(digits string) (Version, bool) {
	if digits == "" || len(digits) > 4 {
		return EmptyVersion, false
	}

	nums := make([]int, 0, len(digits))
	for _, r := range digits {
		if r < '0' || r > '9' {
			return EmptyVersion, false
		}
		nums = append(nums, int(r-'0'))
	}
	return V(nums...), true
}

// IsEmpty reports whether this is the 0.0 version
func (v Version) IsEmpty() bool {
	return v == EmptyVersion
}

// Compare returns -1, 0 or 1 comparing v with o part by part
func (v Version) Compare(o Version) int {
	for _, pair := range [][2]int{
		{v.Major, o.Major},
		{v.Minor, o.Minor},
		{v.Build, o.Build},
		{v.Revision, o.Revision},
	} {
		switch {
		case pair[0] < pair[1]:
			return -1
		case pair[0] > pair[1]:
			return 1
		}
	}
	return 0
}

// String renders the version with at least two parts, e.g. "6.0" or "4.7.2"
func (v Version) String() string {
	parts := []int{v.Major, v.Minor}
	if v.Build != 0 || v.Revision != 0 {
		parts = append(parts, v.Build)
	}
	if v.Revision != 0 {
		parts = append(parts, v.Revision)
	}

	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strconv.Itoa(p)
	}
	return strings.Join(out, ".")
}

// compact renders the dot-less folder form ("472", "45"). It falls back to
// the dotted form when a part does not fit in a single digit.
func (v Version) compact() string {
	parts := []int{v.Major, v.Minor}
	if v.Build != 0 || v.Revision != 0 {
		parts = append(parts, v.Build)
	}
	if v.Revision != 0 {
		parts = append(parts, v.Revision)
	}

	var b strings.Builder
	for _, p := range parts {
		if p > 9 {
			return v.String()
		}
		b.WriteString(strconv.Itoa(p))
	}
	return b.String()
}
