// Package criteria builds selection criteria: ordered fallback levels of
// property bindings, most specific first.
//
// A binding either sets a property to a desired value, in which case an
// item must carry a compatible value, or unsets it, in which case the item
// must not carry the property at all. The framework-only level unsets the
// runtime identifier so it never selects runtime-specific assets.
package criteria
