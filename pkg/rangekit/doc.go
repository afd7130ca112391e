// Package rangekit presents several independently typed ranges as a single forward sequence.
//
// # Summary
//
// A Range pairs two positions of the same source sequence.
// A traversal walks from the beginning of the first range to the end of the last one,
// moving on to the next range whenever the active one is exhausted,
// and exposes every element under one unified element type.
//
// The package offers three traversal strategies with the same iteration protocol
// (Begin, End, Next, Get, Equal):
//
//   - MultiRange: every range shares the same position type.
//   - Chain: every stage may have its own position type,
//     and the active stage is driven by a heap allocated StageHandler.
//   - Tuple1 .. Tuple4: the stage types are fixed at the call site,
//     and the active stage lives inline in the iterator as a tagged union,
//     so moving from one stage to the next does not allocate.
//
// Iterators settle eagerly: after Begin and after every Next,
// an iterator that sits at the end of a non-last stage is moved onto the next stage.
// As a result, Begin equals End if and only if every stage is empty.
//
// MultiIterator and TupleIterator are plain values, an assigned copy moves independently.
// A ChainIterator copy shares the heap allocated StageHandler with the iterator it was copied from,
// so use Clone when two ChainIterators need to move independently.
//
// Advancing or dereferencing the terminal iterator is a caller error and panics with ErrExhausted.
// Comparing iterators of different traversals is not supported.
//
// A traversal shares its ranges with every iterator derived from it,
// and it must outlive them. Mutating the underlying sequences while iterators are in use
// invalidates them, just like it would invalidate the positions of the sequences themselves.
// Nothing in this package is safe for concurrent use.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://en.wikipedia.org/wiki/Tagged_union
package rangekit
