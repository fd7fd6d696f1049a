// Package coordinator owns a sequence of orderable values together with the
// ordering and presentation strategies currently applied to it.
//
// # Overview
//
// A [Coordinator] is built with one [ordering.Strategy] and one
// [presentation.Strategy]; both can be replaced at any time with
// RebindOrdering and RebindPresentation. ApplyOrdering and ApplyPresentation
// always delegate to whatever is bound at the moment of the call, so the
// coordinator never needs to know which algorithm it is running.
//
//	coord, err := coordinator.New[*entity.Entity]("J.K. Rowling",
//	    ordering.NewInsertion[*entity.Entity](),
//	    presentation.Forward[*entity.Entity]{},
//	)
//	if err != nil {
//	    return err
//	}
//
//	coord.AddEntity(entity.New("Harry Potter", "1770893083"))
//	coord.ApplyOrdering()
//	coord.ApplyPresentation()
//
// # Errors
//
// Construction and rebinding fail with [errors.ErrInvalidConfiguration] when
// a strategy is absent (a nil interface or a typed nil pointer). Nothing else
// returns an error.
//
// # Ownership
//
// The sequence is never handed out: Snapshot returns a copy. Strategies do
// not hold a reference back to the coordinator.
//
// # Thread Safety
//
// A Coordinator is not safe for concurrent use. Confine each instance to a
// single goroutine.
package coordinator
