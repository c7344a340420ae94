// Package parcel provides the domain model for the unit of custody: the
// Parcel aggregate root, its Status state machine, and the transition
// rejection taxonomy.
//
// A parcel moves through a fixed sequence of custody states:
//
//	searching_rider ──> picked_up ──> at_warehouse ──> out_for_delivery ──> delivered
//
// cancelled is an alternate terminal state reachable from any non-terminal
// state. No other regression is possible.
//
// Key business rules:
//   - The collection rider is bound exactly once, when accepting collection
//   - The delivery rider is bound exactly once, at the warehouse, and only
//     when the rider's home zone matches the delivery zone (admins may override)
//   - High-value parcels carry two independent handoff codes; the warehouse
//     and delivery handoffs are gated by an exact, case-sensitive code match
//   - Verified flags move false -> true exactly once and never revert
//   - Every guard failure is a TransitionRejectedError carrying the specific
//     reason; a failed call never partially mutates the aggregate
//
// The package follows Domain-Driven Design principles: private fields,
// constructor validation, and transition methods that enforce invariants.
package parcel
