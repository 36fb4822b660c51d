// Package factor finds, for every term of a list of integers, the other list
// members that divide it exactly.
//
// A [Finder] owns an immutable copy of the subject list. [Finder.ComputeFactors]
// walks the list once per term, so the cost is quadratic in the list length;
// nothing is deduplicated, sorted or cached. [Finder.Render] formats the
// result as
//
//	{10: [5, 2], 5: [], 2: [], 20: [10, 5, 2]}
//
// # Self exclusion
//
// A candidate equal in value to the term is never reported, so for [4, 4, 2]
// neither 4 lists the other. Every other equal-valued duplicate is still
// scanned and reported once per occurrence.
//
// # Zero candidates
//
// A zero candidate divisor is handled by the finder's [ZeroPolicy]. The
// default, [ZeroPolicyError], fails with an errors.DivisionByZeroError as soon
// as a zero is met; [ZeroPolicySkip] leaves zero candidates out. The check
// runs before the self-exclusion test, so under the error policy any
// non-empty list that contains 0 fails.
//
// Skipping drops only the zero candidate. Other members still divide a zero
// term, so [0, 5] renders as {0: [5], 5: []} rather than {0: [], 5: []};
// this is intentional.
package factor
