// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence. A transition and its custody
// ledger append always share one transaction.
package commands

import (
	"context"

	"github.com/chiefroqa/baruk-app/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// RiderRepoFactory provides access to the rider repository within a transaction.
	RiderRepoFactory interface {
		RiderRepository() ports.RiderRepository
	}

	// CustodyRepoFactory provides access to the custody ledger within a transaction.
	CustodyRepoFactory interface {
		CustodyLogRepository() ports.CustodyLogRepository
	}

	// ParcelUoW manages transactions for operations touching a parcel and
	// its custody ledger but no rider data.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
		CustodyRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// RiderUoW manages transactions for rider-only operations.
	RiderUoW interface {
		TxManager
		RiderRepoFactory
	}

	// RiderUoWFactory creates new rider unit of work instances.
	RiderUoWFactory interface {
		Create() RiderUoW
	}

	// UoW manages transactions across parcel, rider, and custody data.
	// Used by commands that consult rider records while mutating a parcel.
	UoW interface {
		TxManager
		ParcelRepoFactory
		RiderRepoFactory
		CustodyRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
