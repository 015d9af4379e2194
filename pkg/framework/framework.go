package framework

import (
	"strings"
)

// Well-known framework identifiers
const (
	NetFramework    = ".NETFramework"
	NetCoreApp      = ".NETCoreApp"
	NetStandard     = ".NETStandard"
	NetPlatform     = ".NETPlatform"
	NetCore         = ".NETCore"
	NetPortable     = ".NETPortable"
	NetMicro        = ".NETMicroFramework"
	UAP             = "UAP"
	Windows         = "Windows"
	WindowsPhone    = "WindowsPhone"
	WindowsPhoneApp = "WindowsPhoneApp"
	Silverlight     = "Silverlight"
	MonoAndroid     = "MonoAndroid"
	MonoTouch       = "MonoTouch"
	MonoMac         = "MonoMac"
	XamarinIOS      = "Xamarin.iOS"
	XamarinMac      = "Xamarin.Mac"
	Tizen           = "Tizen"
	Native          = "native"

	AnyIdentifier         = "Any"
	AgnosticIdentifier    = "Agnostic"
	UnsupportedIdentifier = "Unsupported"
)

// Framework identifies a target framework. A Framework with a non-empty
// Fallback list is a fallback framework: the fields describe the primary
// framework and Fallback lists the frameworks tried after it.
type Framework struct {
	Identifier      string
	Version         Version
	Profile         string
	Platform        string
	PlatformVersion Version
	Fallback        []Framework
}

var (
	// Any is the wildcard framework; it is also the explicit "any" marker
	// used for assets that apply to every framework.
	Any = Framework{Identifier: AnyIdentifier}

	// Agnostic marks framework-independent assets
	Agnostic = Framework{Identifier: AgnosticIdentifier}

	// Unsupported is returned when a name does not describe a framework
	Unsupported = Framework{Identifier: UnsupportedIdentifier}

	// DotNet is the generation-based "dotnet" framework
	DotNet = Framework{Identifier: NetPlatform, Version: V(5, 0)}
)

// New creates a framework with the given identifier and version
func New(identifier string, version Version) Framework {
	return Framework{Identifier: identifier, Version: version}
}

// NewFallback creates a fallback framework. Fallback lists of the inputs
// are flattened so the result is never nested.
func NewFallback(primary Framework, fallbacks ...Framework) Framework {
	fw := primary.Primary()
	for _, f := range append(primary.Fallback, fallbacks...) {
		fw.Fallback = append(fw.Fallback, f.Primary())
		fw.Fallback = append(fw.Fallback, f.Fallback...)
	}
	return fw
}

// Primary returns the framework without its fallback list
func (f Framework) Primary() Framework {
	p := f
	p.Fallback = nil
	return p
}

// IsFallback reports whether f is a fallback (composite) framework
func (f Framework) IsFallback() bool {
	return len(f.Fallback) > 0
}

// IsAny reports whether f is the wildcard framework, of any version
func (f Framework) IsAny() bool {
	return strings.EqualFold(f.Identifier, AnyIdentifier)
}

// IsAgnostic reports whether f is the agnostic framework
func (f Framework) IsAgnostic() bool {
	return strings.EqualFold(f.Identifier, AgnosticIdentifier)
}

// IsUnsupported reports whether f is the unsupported framework
func (f Framework) IsUnsupported() bool {
	return strings.EqualFold(f.Identifier, UnsupportedIdentifier)
}

// IsSpecific reports whether f names a concrete framework
func (f Framework) IsSpecific() bool {
	return !f.IsAny() && !f.IsAgnostic() && !f.IsUnsupported()
}

// Equals compares two frameworks. Identifiers, profiles and platforms
// compare case-insensitively.
func (f Framework) Equals(o Framework) bool {
	if !strings.EqualFold(f.Identifier, o.Identifier) ||
		f.Version != o.Version ||
		!strings.EqualFold(f.Profile, o.Profile) ||
		!strings.EqualFold(f.Platform, o.Platform) ||
		f.PlatformVersion != o.PlatformVersion ||
		len(f.Fallback) != len(o.Fallback) {
		return false
	}
	for i := range f.Fallback {
		if !f.Fallback[i].Equals(o.Fallback[i]) {
			return false
		}
	}
	return true
}

// isNet5Era reports whether f is .NETCoreApp 5.0 or later, which uses the
// "net" short name and may carry a platform.
func (f Framework) isNet5Era() bool {
	return strings.EqualFold(f.Identifier, NetCoreApp) && f.Version.Major >= 5
}

// String renders the short folder name, e.g. "net6.0" or "net472".
// Fallback lists are not rendered.
func (f Framework) String() string {
	switch {
	case f.IsAny():
		return "any"
	case f.IsAgnostic():
		return "agnostic"
	case f.IsUnsupported():
		return "unsupported"
	case strings.EqualFold(f.Identifier, NetPlatform):
		if f.Version == DotNet.Version {
			return "dotnet"
		}
		return "dotnet" + f.Version.String()
	case strings.EqualFold(f.Identifier, NetPortable):
		return "portable-" + f.Profile
	case f.isNet5Era():
		name := "net" + f.Version.String()
		if f.Platform != "" {
			name += "-" + strings.ToLower(f.Platform)
			if !f.PlatformVersion.IsEmpty() {
				name += f.PlatformVersion.String()
			}
		}
		return name
	}

	short, ok := shortNameFor(f.Identifier)
	if !ok {
		if f.Version.IsEmpty() {
			return f.Identifier
		}
		return f.Identifier + f.Version.String()
	}

	name := short
	switch {
	case f.Version.IsEmpty() && !dottedVersions[short]:
	case dottedVersions[short]:
		name += f.Version.String()
	default:
		name += f.Version.compact()
	}
	if f.Profile != "" {
		name += "-" + strings.ToLower(f.Profile)
	}
	return name
}

// FullName renders the long form, e.g. ".NETCoreApp,Version=v3.1"
func (f Framework) FullName() string {
	name := f.Identifier + ",Version=v" + f.Version.String()
	if f.Profile != "" {
		name += ",Profile=" + f.Profile
	}
	return name
}
