// Package kernel provides shared value objects used across the domain model:
// UUID identifiers, delivery zones, and actor roles.
//
// All types in this package are immutable value objects. Zero values are
// invalid and fail Validate; instances must be created through the provided
// constructors or parsed from trusted external representations.
package kernel
