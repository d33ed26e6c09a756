// Package kernel contains the shared value objects of the domain model:
// UUID for entity identity and Money for prices and totals.
//
// Both types are immutable, validate themselves, and make their zero value
// detectable so aggregates can refuse unconstructed input.
package kernel
