package framework

import (
	"regexp"
	"strings"
)

// shortNames maps folder short names to framework identifiers
var shortNames = map[string]string{
	"net":         NetFramework,
	"netcoreapp":  NetCoreApp,
	"netstandard": NetStandard,
	"dotnet":      NetPlatform,
	"netcore":     NetCore,
	"netmf":       NetMicro,
	"uap":         UAP,
	"win":         Windows,
	"wp":          WindowsPhone,
	"wpa":         WindowsPhoneApp,
	"sl":          Silverlight,
	"monoandroid": MonoAndroid,
	"monotouch":   MonoTouch,
	"monomac":     MonoMac,
	"xamarinios":  XamarinIOS,
	"xamarinmac":  XamarinMac,
	"tizen":       Tizen,
	"native":      Native,
}

// dottedVersions lists short names whose versions are written with dots
var dottedVersions = map[string]bool{
	"netcoreapp":  true,
	"netstandard": true,
	"dotnet":      true,
	"uap":         true,
	"tizen":       true,
}

var (
	folderPattern   = regexp.MustCompile(`^([a-z]+)([0-9][0-9.]*)?$`)
	platformPattern = regexp.MustCompile(`^([a-z]+)([0-9][0-9.]*)?$`)
)

func shortNameFor(identifier string) (string, bool) {
	for short, id := range shortNames {
		if strings.EqualFold(id, identifier) {
			return short, true
		}
	}
	return "", false
}

func canonicalIdentifier(identifier string) string {
	for _, id := range shortNames {
		if strings.EqualFold(id, identifier) {
			return id
		}
	}
	for _, id := range []string{NetPortable, AnyIdentifier, AgnosticIdentifier, UnsupportedIdentifier} {
		if strings.EqualFold(id, identifier) {
			return id
		}
	}
	return identifier
}

// Parse parses a folder name, then a long framework name. Anything else
// becomes an opaque framework whose identifier is the name itself, so Parse
// never fails.
func Parse(name string) Framework {
	if fw := ParseFolder(name); !fw.IsUnsupported() {
		return fw
	}
	if fw := ParseFrameworkName(name); !fw.IsUnsupported() {
		return fw
	}
	return New(name, EmptyVersion)
}

// ParseFolder parses a short folder name such as "net472", "netstandard2.0"
// or "net6.0-windows10.0.19041". It returns Unsupported for anything else.
func ParseFolder(name string) Framework {
	s := strings.ToLower(strings.TrimSpace(name))
	switch s {
	case "":
		return Unsupported
	case "any":
		return Any
	case "agnostic":
		return Agnostic
	case "unsupported":
		return Unsupported
	}

	if rest, ok := strings.CutPrefix(s, "portable-"); ok {
		if rest == "" {
			return Unsupported
		}
		return Framework{Identifier: NetPortable, Profile: rest}
	}

	main, suffix, hasSuffix := strings.Cut(s, "-")
	m := folderPattern.FindStringSubmatch(main)
	if m == nil {
		return Unsupported
	}

	identifier, ok := shortNames[m[1]]
	if !ok {
		return Unsupported
	}

	version := EmptyVersion
	if m[2] != "" {
		if strings.Contains(m[2], ".") {
			version, ok = ParseVersion(m[2])
		} else {
			version, ok = parseCompactVersion(m[2])
		}
		if !ok {
			return Unsupported
		}
	}

	switch {
	case identifier == NetFramework && version.Major >= 5:
		identifier = NetCoreApp
	case identifier == NetPlatform && version.IsEmpty():
		version = DotNet.Version
	}

	fw := Framework{Identifier: identifier, Version: version}
	if !hasSuffix {
		return fw
	}
	if suffix == "" {
		return Unsupported
	}

	if fw.isNet5Era() {
		pm := platformPattern.FindStringSubmatch(suffix)
		if pm == nil {
			return Unsupported
		}
		fw.Platform = pm[1]
		if pm[2] != "" {
			pv, ok := ParseVersion(pm[2])
			if !ok {
				return Unsupported
			}
			fw.PlatformVersion = pv
		}
		return fw
	}

	fw.Profile = suffix
	return fw
}

// ParseFrameworkName parses the long form
// "Identifier,Version=vX.Y[,Profile=Name]". It returns Unsupported when the
// name is not in that form.
func ParseFrameworkName(name string) Framework {
	parts := strings.Split(name, ",")
	identifier := strings.TrimSpace(parts[0])
	if identifier == "" || len(parts) < 2 {
		return Unsupported
	}

	fw := Framework{Identifier: canonicalIdentifier(identifier)}
	hasVersion := false
	for _, part := range parts[1:] {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return Unsupported
		}
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "version":
			v, ok := ParseVersion(strings.TrimSpace(value))
			if !ok {
				return Unsupported
			}
			fw.Version = v
			hasVersion = true
		case "profile":
			fw.Profile = strings.TrimSpace(value)
		default:
			return Unsupported
		}
	}

	if !hasVersion {
		return Unsupported
	}
	return fw
}
