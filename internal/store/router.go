// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Operation is the kind of work a query performs; it is the only input to the
// routing policy.
type Operation int

const (
	// OpRead is a plain lookup or listing; served by the replica pool.
	OpRead Operation = iota

	// OpWrite is a mutation (insert, update, delete); served by the primary
	// pool.
	OpWrite

	// OpUniquenessCheck is a pre-condition probe for a mutation. Routed to
	// the primary pool so a row written earlier in the same request is
	// visible to the probe regardless of replica lag.
	OpUniquenessCheck
)

func (op Operation) String() string {
	switch op {
	case OpWrite:
		return "write"
	case OpUniquenessCheck:
		return "uniqueness-check"
	default:
		return "read"
	}
}

// routeRole is the routing policy: pure, stateless, and with no failure modes
// of its own. Mutations and their uniqueness probes go to the primary pool,
// everything else to the replica pool.
func routeRole(op Operation) PoolRole {
	switch op {
	case OpWrite, OpUniquenessCheck:
		return PoolWrite
	default:
		return PoolRead
	}
}

// Route returns the pool that must serve the given operation kind.
func (p *Pools) Route(op Operation) *DB {
	if routeRole(op) == PoolWrite {
		return p.Write
	}

	return p.Read
}
