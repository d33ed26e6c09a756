// Package errs provides the standardized error types used across the
// ordering backend.
//
// The taxonomy maps directly onto the HTTP boundary:
//   - ObjectNotFoundError: a menu item, order, account, or group is absent (404)
//   - PermissionDeniedError: the access policy rejected the action (403)
//   - ValueIsInvalidError / ValueIsRequiredError / ValueIsOutOfRangeError:
//     bad input at a boundary (400)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Authorization failures are never downgraded: anything unwrapping to
// ErrPermissionDenied must surface as a 403-equivalent at the edge.
package errs
