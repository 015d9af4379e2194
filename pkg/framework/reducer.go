package framework

import "strings"

// Identifier precedence used when two compatible candidates differ in
// identifier. Lower is nearer.
const (
	rankSameIdentifier = iota
	rankOther
	rankStandard
	rankPlatform
	rankAgnostic
	rankAny
)

// GetNearest returns the candidate nearest to target among those compatible
// with it. When several candidates are equally near, the first one in the
// slice wins.
func GetNearest(target Framework, candidates []Framework) (Framework, bool) {
	var best Framework
	found := false
	for _, c := range candidates {
		if !IsCompatible(target, c) {
			continue
		}
		if !found || nearer(target, c, best) < 0 {
			best = c
			found = true
		}
	}
	return best, found
}

// CompareNearest compares two candidate frameworks against a reference:
// -1 when a is nearer, 1 when b is nearer, 0 when neither is clearly
// nearer (equal candidates, both incompatible, or an exact tie).
// CompareNearest(r, a, b) == -CompareNearest(r, b, a) always holds.
func CompareNearest(reference, a, b Framework) int {
	if a.Equals(b) {
		return 0
	}

	ca, cb := IsCompatible(reference, a), IsCompatible(reference, b)
	switch {
	case !ca && !cb:
		return 0
	case ca && !cb:
		return -1
	case !ca && cb:
		return 1
	}
	return nearer(reference, a, b)
}

// nearer orders two candidates that are both compatible with target
func nearer(target, a, b Framework) int {
	if c := compareInt(rank(target, a), rank(target, b)); c != 0 {
		return c
	}
	if !strings.EqualFold(a.Identifier, b.Identifier) {
		return 0
	}

	// higher versions are nearer
	if c := b.Version.Compare(a.Version); c != 0 {
		return c
	}

	if pa, pb := a.Platform != "", b.Platform != ""; pa != pb {
		if pa {
			return -1
		}
		return 1
	}
	if c := b.PlatformVersion.Compare(a.PlatformVersion); c != 0 {
		return c
	}

	ma := strings.EqualFold(a.Profile, target.Profile)
	mb := strings.EqualFold(b.Profile, target.Profile)
	switch {
	case ma && !mb:
		return -1
	case mb && !ma:
		return 1
	}
	return 0
}

func rank(target, candidate Framework) int {
	tier, _ := compatibleTier(target, candidate)
	chain := append([]Framework{target.Primary()}, target.Fallback...)
	return tier*10 + identifierRank(chain[tier], candidate)
}

func identifierRank(target, candidate Framework) int {
	switch {
	case candidate.IsAny():
		return rankAny
	case candidate.IsAgnostic():
		return rankAgnostic
	case strings.EqualFold(target.Identifier, candidate.Identifier):
		return rankSameIdentifier
	case strings.EqualFold(candidate.Identifier, NetStandard):
		return rankStandard
	case strings.EqualFold(candidate.Identifier, NetPlatform):
		return rankPlatform
	}
	return rankOther
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
