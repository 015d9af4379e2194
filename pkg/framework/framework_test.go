package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFolder(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Framework
	}{
		{"net5 era", "net6.0", New(NetCoreApp, V(6, 0))},
		{"classic net", "net472", New(NetFramework, V(4, 7, 2))},
		{"netstandard", "netstandard2.0", New(NetStandard, V(2, 0))},
		{"netcoreapp", "netcoreapp3.1", New(NetCoreApp, V(3, 1))},
		{"upper case", "NET6.0", New(NetCoreApp, V(6, 0))},
		{"unversioned net", "net", New(NetFramework, EmptyVersion)},
		{"dotnet", "dotnet", DotNet},
		{"dotnet versioned", "dotnet5.4", New(NetPlatform, V(5, 4))},
		{"native", "native", New(Native, EmptyVersion)},
		{"any", "any", Any},
		{"agnostic", "agnostic", Agnostic},
		{"platform", "net5.0-windows10.0.19041", Framework{
			Identifier: NetCoreApp, Version: V(5, 0),
			Platform: "windows", PlatformVersion: V(10, 0, 19041),
		}},
		{"platform without version", "net6.0-android", Framework{
			Identifier: NetCoreApp, Version: V(6, 0), Platform: "android",
		}},
		{"profile", "net40-client", Framework{Identifier: NetFramework, Version: V(4, 0), Profile: "client"}},
		{"portable", "portable-net45+win8", Framework{Identifier: NetPortable, Profile: "net45+win8"}},
		{"plain word", "lib", Unsupported},
		{"file name", "Tool.dll", Unsupported},
		{"empty", "", Unsupported},
		{"dangling dash", "net6.0-", Unsupported},
		{"bad version", "net6..0", Unsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFolder(tt.in)
			assert.True(t, tt.want.Equals(got), "ParseFolder(%q) = %+v, want %+v", tt.in, got, tt.want)
		})
	}
}

func TestParseFrameworkName(t *testing.T) {
	got := ParseFrameworkName(".NETCoreApp,Version=v3.1")
	assert.True(t, New(NetCoreApp, V(3, 1)).Equals(got), "%+v", got)

	got = ParseFrameworkName(".netframework, Version=v4.0, Profile=Client")
	assert.Equal(t, NetFramework, got.Identifier)
	assert.Equal(t, "Client", got.Profile)

	assert.True(t, ParseFrameworkName("Tool.dll").IsUnsupported())
	assert.True(t, ParseFrameworkName(".NETFramework,Profile=Client").IsUnsupported())
	assert.True(t, ParseFrameworkName(".NETFramework,Flavor=Vanilla,Version=v4.0").IsUnsupported())
}

func TestParse(t *testing.T) {
	assert.True(t, New(NetCoreApp, V(6, 0)).Equals(Parse("net6.0")))
	assert.True(t, New(NetStandard, V(2, 1)).Equals(Parse(".NETStandard,Version=v2.1")))

	opaque := Parse("mystery")
	assert.Equal(t, "mystery", opaque.Identifier)
	assert.True(t, opaque.Version.IsEmpty())
	assert.False(t, opaque.IsUnsupported())
}

func TestString(t *testing.T) {
	for _, name := range []string{
		"net6.0", "net472", "net45", "netstandard2.0", "netcoreapp3.1",
		"net5.0-windows10.0.19041", "net6.0-android", "dotnet", "dotnet5.4",
		"any", "agnostic", "net40-client", "portable-net45+win8", "native", "net",
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, name, ParseFolder(name).String())
		})
	}

	assert.Equal(t, "mystery", Parse("mystery").String())
	assert.Equal(t, "Custom1.5", New("Custom", V(1, 5)).String())
}

func TestFullName(t *testing.T) {
	assert.Equal(t, ".NETCoreApp,Version=v6.0", ParseFolder("net6.0").FullName())
	assert.Equal(t, ".NETFramework,Version=v4.0,Profile=client", ParseFolder("net40-client").FullName())
}

func TestEquals(t *testing.T) {
	assert.True(t, New(".netcoreapp", V(6)).Equals(New(NetCoreApp, V(6, 0))))
	assert.False(t, New(NetCoreApp, V(6)).Equals(New(NetCoreApp, V(7))))

	fb1 := NewFallback(ParseFolder("net6.0"), ParseFolder("net472"))
	fb2 := NewFallback(ParseFolder("net6.0"), ParseFolder("net472"))
	assert.True(t, fb1.Equals(fb2))
	assert.False(t, fb1.Equals(ParseFolder("net6.0")))
}

func TestNewFallback(t *testing.T) {
	inner := NewFallback(ParseFolder("net6.0"), ParseFolder("net472"))
	outer := NewFallback(inner, ParseFolder("net461"))

	assert.True(t, outer.IsFallback())
	assert.False(t, outer.Primary().IsFallback())
	assert.Len(t, outer.Fallback, 2)
	assert.Equal(t, "net472", outer.Fallback[0].String())
	assert.Equal(t, "net461", outer.Fallback[1].String())
	assert.Equal(t, "net6.0", outer.String())
}

func TestSpecialFrameworks(t *testing.T) {
	assert.True(t, Any.IsAny())
	assert.True(t, New("any", V(1)).IsAny())
	assert.False(t, Any.IsSpecific())
	assert.True(t, Agnostic.IsAgnostic())
	assert.True(t, Unsupported.IsUnsupported())
	assert.True(t, ParseFolder("net6.0").IsSpecific())
}
