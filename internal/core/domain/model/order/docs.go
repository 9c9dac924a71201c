// Package order implements the order aggregate and its lifecycle state
// machine for the marketplace domain.
//
// The package provides:
//   - Order: the aggregate root, created at checkout and mutated only
//     through state-machine-approved transitions
//   - Status: the lifecycle state machine with its transition table and
//     per-edge actor authorization
//   - LineItem: immutable priced dish entries fixed at checkout
//   - StatusChange: append-only status history entries
//
// All status mutation flows through Order.TransitionTo, which enforces the
// transition table, actor authorization and the exclusive delivery partner
// claim, and records a history entry for every change. The ordered history
// of an order therefore always reconstructs a valid walk through the state
// machine starting at pending.
package order
