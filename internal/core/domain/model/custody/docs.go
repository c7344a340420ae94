// Package custody provides the append-only chain-of-custody model for parcels.
//
// Every state transition and verification performed on a parcel produces one
// immutable Entry. The sequence of entries for a parcel, ordered by creation
// time, is the audit evidence reconstructing the parcel's full history
// including actors and locations. Entries are created exactly once and are
// never mutated or deleted.
package custody
