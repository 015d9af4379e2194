// Package config loads the assetsel configuration.
//
// Layers, lowest priority first:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. user config, $XDG_CONFIG_HOME/assetsel/config.toml
//  3. project config, .assetsel.toml in the working directory
//  4. ASSETSEL_* environment variables, "_" separating key parts
//     (ASSETSEL_TARGET_FRAMEWORK sets target.framework)
//  5. explicit overrides, usually command line flags
package config
