// Package order provides the order side of the domain model: the immutable
// snapshot an Order takes of a cart at checkout, and the status lifecycle
// that follows.
//
// The package includes:
//   - Order: the aggregate root owning its Item snapshots exclusively
//   - Item: one immutable snapshot row per distinct menu item at checkout
//   - Status: the two-state lifecycle (pending, delivery)
//
// Key business rules:
//   - Orders are created only from a non-empty set of cart lines
//   - Total, placement time, and item snapshots are fixed at creation;
//     only status and the delivery crew assignment mutate afterwards
//   - Who may perform which mutation is decided by the access policy in
//     the services package, not here
package order
