// Package selector decides which candidate paths belong in a mod archive.
//
// Exclusion rules are an ordered list of tagged variants:
//   - Suffix rejects a path that ends with the rule value
//   - Contains rejects a path that contains the rule value anywhere
//
// Matching is case-sensitive and works on the raw path string. No
// normalization, no regex, no path-segment awareness: "build" rejects
// "src/rebuild.lua" just as it rejects "build/x.lua".
//
// Inclusion patterns are carried alongside for documentation. Traversal
// already filters by extension, so they never gate a decision.
package selector
