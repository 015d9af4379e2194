// Package conventions defines the managed-code package layout: the
// standard properties, the literal tables, and the asset categories with
// their presence and enumeration templates.
//
// A Conventions value is immutable once built and safe to share between
// goroutines when it uses the default concurrent framework cache.
package conventions
