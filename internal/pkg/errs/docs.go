// Package errs provides the standardized error taxonomy for the relay.
//
// The taxonomy mirrors how failures propagate through the orchestration layer:
//   - ValueIsRequiredError / ValueIsInvalidError: malformed input, caught before
//     any external call
//   - ConflictError: duplicate business key (e.g. merchant order id)
//   - ObjectNotFoundError: local lookup miss
//   - GatewayError: transport failure or non-success status from the external
//     shipping aggregator
//   - UnauthorizedError: missing/invalid session token or failed credential
//     exchange
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify by sentinel
//
// HTTP handlers map sentinels to status codes; handlers and jobs never inspect
// error strings.
package errs
