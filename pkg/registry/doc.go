// Package registry provides a generic, thread-safe registry that stores
// named items and remembers the order they were registered in. Property
// registries and the asset category table are built on it.
package registry
