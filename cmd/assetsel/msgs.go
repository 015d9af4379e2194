package assetsel

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Select the package assets that apply to a target"
	MsgResolveShort    = "Resolve the assets of a package listing"
	MsgCategoriesShort = "Describe asset categories and their patterns"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "User config file (default $XDG_CONFIG_HOME/assetsel/config.toml)"
	MsgFlagFramework = "Target framework (net6.0, netstandard2.0, .NETFramework,Version=v4.7.2, ...)"
	MsgFlagRuntime   = "Target runtime identifier (win-x64, linux-arm64, ...)"
	MsgFlagLocale    = "Target locale for resource assemblies (fr-FR, de, ...)"
	MsgFlagCategory  = "Category to resolve, repeatable (default all)"
	MsgFlagDir       = "Read the listing by walking a directory"
	MsgFlagGraph     = "Runtime graph file (runtime.json)"
	MsgFlagNoGraph   = "Compare runtime identifiers by equality only"
	MsgFlagFormat    = "Output format: auto, term, text, json, xml, toml"
	MsgFlagRaw       = "Print markdown without terminal rendering"

	// Status messages
	MsgVersionFormat = "assetsel version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrListingSource = "a listing argument and --dir are mutually exclusive"
	MsgErrNoFramework   = "no target framework: pass --framework or set target.framework"
	MsgErrGraphFlags    = "--graph and --no-graph are mutually exclusive"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/resolve-long.txt
	msgResolveLongRaw string
	MsgResolveLong    = strings.TrimSpace(msgResolveLongRaw)

	//go:embed msgs/resolve-example.txt
	msgResolveExampleRaw string
	MsgResolveExample    = strings.TrimRight(msgResolveExampleRaw, "\n")

	//go:embed msgs/categories-long.txt
	msgCategoriesLongRaw string
	MsgCategoriesLong    = strings.TrimSpace(msgCategoriesLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
