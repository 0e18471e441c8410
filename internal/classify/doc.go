// Package classify assigns requirement categories and priorities using
// ordered first-match-wins rule lists. Rule order is part of the contract:
// on ambiguous text the earliest matching rule determines the output, so
// the lists are explicit slices, never maps.
package classify
