// Package properties defines the typed properties extracted from package
// paths: the closed set of property kinds, the tagged Value union, pattern
// tables of well-known literals, and the name-keyed property registry.
//
// Every kind implements the same four capabilities:
//
//   - Parse: turn a path segment into a value, or report that the segment
//     does not fit the property. Parse never fails loudly; a mismatch is an
//     expected outcome while probing patterns.
//   - Equals: value equality within the kind.
//   - IsCompatible: whether an available value satisfies a criteria value.
//   - CompareNearest: which of two available values is nearer a reference.
package properties
