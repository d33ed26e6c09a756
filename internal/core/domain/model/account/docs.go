// Package account provides the user directory side of the domain model:
// accounts, their group memberships, and the closed set of roles derived
// from those memberships.
//
// Key business rules:
//   - Roles form a closed enum: Customer, Manager, DeliveryCrew.
//   - A role is resolved once per request from the account's groups and then
//     passed around explicitly as an Actor; it is never re-queried ad hoc.
//   - Staff accounts are managers regardless of group membership, and the
//     manager group takes precedence over the delivery crew group if an
//     account somehow belongs to both.
//   - Adding an account to a group it already belongs to is an error;
//     removal reports whether the account was actually a member.
package account
