// Package services provides domain services that implement business rules
// spanning multiple aggregates of the ordering system.
//
// The package includes:
//   - AccessPolicy: the pure role/action/resource authorization predicate
//     gating every cart and order entry point
//
// Domain services here are side-effect free: they look only at the values
// passed in, never at a store, which keeps them independently testable.
package services
