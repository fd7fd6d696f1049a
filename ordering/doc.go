// Package ordering provides interchangeable in-place sorting algorithms for
// sequences of [sortable.Sortable] values.
//
// # Strategy Interface
//
// Every algorithm implements [Strategy]. Sort reorders the slice it is given
// into non-decreasing order and nothing else: the same elements are present
// afterwards, none are added, removed or duplicated. Sequences of length 0 or
// 1 are left untouched. Elements that compare equal may end up in any
// relative order; no algorithm here is stable.
//
// Two reference algorithms are provided, chosen because their costs differ:
//
//   - [Insertion]: shifts each element left past strictly greater
//     predecessors using single-slot moves. O(N²) comparisons in the worst
//     case, N-1 when the input is already sorted.
//   - [Selection]: finds the minimum of each suffix and swaps it into place.
//     Always O(N²) comparisons and exactly N-1 swaps.
//
// Both produce the same key sequence for the same input.
//
// # Instrumentation
//
// Pass [WithStats] to count comparisons, moves and swaps:
//
//	var stats ordering.Stats
//	sorter := ordering.NewSelection[sortable.Int](ordering.WithStats(&stats))
//	sorter.Sort(values)
//	fmt.Println(stats.Swaps) // len(values) - 1
//
// # Thread Safety
//
// Strategies hold no per-call state and may be shared between owners, but a
// Stats value is not synchronized; give each concurrently used strategy its
// own Stats, or none.
package ordering
