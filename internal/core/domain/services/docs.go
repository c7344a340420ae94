// Package services contains stateless domain services used at parcel
// creation: the fee calculator and the credential generator. Both are pure
// with respect to the aggregate; the state machine consumes their outputs
// exactly once, when a parcel is created.
package services
