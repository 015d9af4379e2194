package criteria

import (
	"testing"

	"github.com/arthur-debert/assetsel/pkg/errors"
	"github.com/arthur-debert/assetsel/pkg/framework"
	"github.com/arthur-debert/assetsel/pkg/properties"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T) *properties.Registry {
	t.Helper()
	reg, err := properties.NewRegistry(
		properties.New(properties.TargetFramework, properties.KindFramework),
		properties.New(properties.RuntimeIdentifier, properties.KindRuntime),
		properties.New(properties.Locale, properties.KindLocale),
	)
	require.NoError(t, err)
	return reg
}

func net6(t *testing.T) framework.Framework {
	t.Helper()
	return framework.Parse("net6.0")
}

func TestForFrameworkAndRuntime(t *testing.T) {
	f, err := NewFactory(testRegistry(t))
	require.NoError(t, err)

	tests := []struct {
		name    string
		rid     string
		entries []string
	}{
		{"with runtime", "win-x64", []string{"tfm=net6.0, rid=win-x64", "tfm=net6.0, rid=<unset>"}},
		{"without runtime", "", []string{"tfm=net6.0, rid=<unset>"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := f.ForFrameworkAndRuntime(net6(t), tt.rid)
			require.NoError(t, err)
			require.Equal(t, len(tt.entries), c.Len())
			for i, want := range tt.entries {
				assert.Equal(t, want, c.Entries[i].String())
			}
		})
	}
}

func TestForFramework_RejectsFallback(t *testing.T) {
	f, err := NewFactory(testRegistry(t))
	require.NoError(t, err)

	fallback := framework.NewFallback(net6(t), framework.Parse("net472"))
	_, err = f.ForFramework(fallback)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedFrameworkKind))

	_, err = f.ForFrameworkAndRuntime(fallback, "win-x64")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedFrameworkKind))
}

func TestForRuntime(t *testing.T) {
	f, err := NewFactory(testRegistry(t))
	require.NoError(t, err)

	c, err := f.ForRuntime("linux-x64")
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, "rid=linux-x64", c.Entries[0].String())

	_, err = f.ForRuntime("")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestNewFactory_MissingProperty(t *testing.T) {
	reg, err := properties.NewRegistry(properties.New(properties.TargetFramework, properties.KindFramework))
	require.NoError(t, err)

	_, err = NewFactory(reg)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownProperty))
}

func TestBuilder_UnknownProperty(t *testing.T) {
	_, err := NewBuilder(testRegistry(t)).
		Add(Set("tfmx", properties.TextValue("x"))).
		Add(Unset(properties.Locale)).
		Build()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownProperty))
}

func TestBuilder_KindMismatch(t *testing.T) {
	_, err := NewBuilder(testRegistry(t)).
		Add(Set(properties.TargetFramework, properties.TextValue("net6.0"))).
		Build()
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestSatisfies(t *testing.T) {
	reg := testRegistry(t)
	c, err := NewBuilder(reg).
		Add(
			Set(properties.TargetFramework, properties.FrameworkValue(net6(t))),
			Unset(properties.RuntimeIdentifier),
		).
		Build()
	require.NoError(t, err)
	entry := c.Entries[0]

	tests := []struct {
		name  string
		props map[string]properties.Value
		want  bool
	}{
		{
			name:  "compatible framework",
			props: map[string]properties.Value{"tfm": properties.FrameworkValue(framework.Parse("netstandard2.0"))},
			want:  true,
		},
		{
			name:  "incompatible framework",
			props: map[string]properties.Value{"tfm": properties.FrameworkValue(framework.Parse("net7.0"))},
			want:  false,
		},
		{
			name:  "missing framework",
			props: map[string]properties.Value{},
			want:  false,
		},
		{
			name: "unset property present",
			props: map[string]properties.Value{
				"tfm": properties.FrameworkValue(net6(t)),
				"rid": properties.RuntimeValue("win-x64"),
			},
			want: false,
		},
		{
			name: "unmentioned property ignored",
			props: map[string]properties.Value{
				"tfm":    properties.FrameworkValue(net6(t)),
				"locale": properties.LocaleValue("fr"),
			},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, entry.Satisfies(tt.props))
		})
	}
}
