// Package step defines the capability tiers a value type must satisfy to be
// stepped through by the generators in pkg/seq, together with the distance
// arithmetic used on the random-access tier.
//
// The tiers form a strict refinement chain:
//
//	Steppable ⊂ ComparableSteppable ⊂ Reversible ⊂ RandomAccess
//
// They are constraint interfaces: generic code states the tier it needs as a
// type-parameter bound, and a value type that does not satisfy that tier
// cannot instantiate the code at all. There is no runtime representation of a
// tier and no runtime capability check anywhere in this package.
package step
