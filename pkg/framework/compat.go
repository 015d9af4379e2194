package framework

import "strings"

// standardSupport returns the highest .NETStandard version a framework can
// consume, if any.
func standardSupport(f Framework) (Version, bool) {
	id := canonicalIdentifier(f.Identifier)
	v := f.Version
	switch id {
	case NetStandard:
		return v, true
	case NetCoreApp:
		switch {
		case v.Compare(V(2, 1)) >= 0:
			return V(2, 1), true
		case v.Compare(V(2, 0)) >= 0:
			return V(2, 0), true
		case v.Compare(V(1, 0)) >= 0:
			return V(1, 7), true
		}
	case NetFramework:
		switch {
		case v.Compare(V(4, 6, 1)) >= 0:
			return V(2, 0), true
		case v.Compare(V(4, 6)) >= 0:
			return V(1, 3), true
		case v.Compare(V(4, 5, 1)) >= 0:
			return V(1, 2), true
		case v.Compare(V(4, 5)) >= 0:
			return V(1, 1), true
		}
	case UAP:
		switch {
		case v.Compare(V(10, 0, 16299)) >= 0:
			return V(2, 0), true
		case v.Compare(V(10, 0)) >= 0:
			return V(1, 4), true
		}
	case Tizen:
		switch {
		case v.Compare(V(4, 0)) >= 0:
			return V(2, 0), true
		case v.Compare(V(3, 0)) >= 0:
			return V(1, 6), true
		}
	case Windows:
		switch {
		case v.Compare(V(8, 1)) >= 0:
			return V(1, 2), true
		case v.Compare(V(8, 0)) >= 0:
			return V(1, 1), true
		}
	case WindowsPhoneApp:
		if v.Compare(V(8, 1)) >= 0 {
			return V(1, 2), true
		}
	case MonoAndroid, XamarinIOS, XamarinMac, MonoTouch, MonoMac:
		return V(2, 1), true
	}
	return EmptyVersion, false
}

// IsCompatible reports whether assets built for candidate can be used by a
// project targeting target. Fallback targets try their primary framework
// first and then each fallback in order.
func IsCompatible(target, candidate Framework) bool {
	_, ok := compatibleTier(target, candidate)
	return ok
}

// compatibleTier returns the index of the first framework in the target's
// primary-then-fallback chain that accepts candidate.
func compatibleTier(target, candidate Framework) (int, bool) {
	chain := append([]Framework{target.Primary()}, target.Fallback...)
	for i, t := range chain {
		if isCompatibleCore(t, candidate) {
			return i, true
		}
	}
	return 0, false
}

func isCompatibleCore(target, candidate Framework) bool {
	switch {
	case target.IsUnsupported() || candidate.IsUnsupported():
		return false
	case candidate.IsAgnostic() || candidate.IsAny():
		return true
	case target.IsAny() || target.IsAgnostic():
		return false
	}

	if isPortable(target) || isPortable(candidate) {
		return portableCompatible(target, candidate)
	}

	if strings.EqualFold(target.Identifier, candidate.Identifier) {
		return target.Version.Compare(candidate.Version) >= 0 &&
			profileCompatible(target, candidate) &&
			platformCompatible(target, candidate)
	}

	switch canonicalIdentifier(candidate.Identifier) {
	case NetStandard:
		highest, ok := standardSupport(target)
		return ok && candidate.Profile == "" && highest.Compare(candidate.Version) >= 0
	case NetPlatform:
		_, ok := standardSupport(target)
		return ok
	}
	return false
}

func profileCompatible(target, candidate Framework) bool {
	return candidate.Profile == "" || strings.EqualFold(target.Profile, candidate.Profile)
}

func platformCompatible(target, candidate Framework) bool {
	if candidate.Platform == "" {
		return true
	}
	return strings.EqualFold(target.Platform, candidate.Platform) &&
		target.PlatformVersion.Compare(candidate.PlatformVersion) >= 0
}

func isPortable(f Framework) bool {
	return strings.EqualFold(f.Identifier, NetPortable)
}

// portableFrameworks expands a "net45+win8" style profile. Numbered
// profiles such as Profile259 expand to nothing.
func portableFrameworks(f Framework) []Framework {
	var frameworks []Framework
	for _, part := range strings.Split(f.Profile, "+") {
		fw := ParseFolder(part)
		if fw.IsUnsupported() || isPortable(fw) {
			continue
		}
		frameworks = append(frameworks, fw)
	}
	return frameworks
}

// portableCompatible expands portable frameworks on either side. Every
// target framework must accept at least one candidate framework.
func portableCompatible(target, candidate Framework) bool {
	targets := []Framework{target}
	if isPortable(target) {
		targets = portableFrameworks(target)
	}
	candidates := []Framework{candidate}
	if isPortable(candidate) {
		candidates = portableFrameworks(candidate)
	}
	if len(targets) == 0 || len(candidates) == 0 {
		return false
	}

	for _, t := range targets {
		accepted := false
		for _, c := range candidates {
			if isCompatibleCore(t, c) {
				accepted = true
				break
			}
		}
		if !accepted {
			return false
		}
	}
	return true
}
