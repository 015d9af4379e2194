// Package resolver selects the assets of a package for a target context.
//
// For each requested category the resolver walks the selection criteria,
// most specific level first. The first level for which the category has
// any presence match is enumerated, the enumerated items are reduced to
// the group nearest the context, and the result is returned as that
// category's group. A category with no match resolves to an empty group.
package resolver
