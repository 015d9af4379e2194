// Package framework models target framework identifiers as they appear in
// package folder names (net6.0, net472, netstandard2.0, net5.0-windows) and
// in long form (.NETCoreApp,Version=v3.1).
//
// It provides the general compatibility relation between a project
// framework and an asset framework, and the reducer that picks the nearest
// asset framework for a project.
//
// # Special frameworks
//
//   - Any: the wildcard framework. Assets declared for Any are usable by
//     every concrete framework.
//   - Agnostic: assets that do not depend on a framework at all.
//   - Unsupported: the result of parsing something that is not a framework.
//   - Fallback: a composite of a primary framework and an ordered list of
//     fallback frameworks, consulted in order when the primary has no
//     compatible asset.
package framework
