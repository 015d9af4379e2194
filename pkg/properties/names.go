package properties

// Names of the standard managed-code properties
const (
	TargetFramework   = "tfm"
	RuntimeIdentifier = "rid"
	Locale            = "locale"
	AnyValue          = "any"
	ManagedAssembly   = "assembly"
	MSBuild           = "msbuild"
	SatelliteAssembly = "satelliteAssembly"
	CodeLanguage      = "codeLanguage"
)

// EmptyFolder is the placeholder file name packages use to mark a folder
// that is intentionally empty.
const EmptyFolder = "_._"
