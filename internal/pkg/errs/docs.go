// Package errs provides standardized error types for the marketplace
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package covers two groups of error scenarios:
//
// Validation errors raised while constructing domain objects:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or unacceptable
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//
// Domain outcome errors raised by operations:
//   - ObjectNotFoundError: a referenced product/order/user does not exist
//   - ConflictError: a state guard refused the operation (e.g. a delivery
//     job already claimed by another rider)
//   - OutOfStockError: a product had insufficient stock for an order
//   - PermissionDeniedError: the caller's role does not allow the operation
//
// Each error type follows the same pattern: a sentinel error variable for
// errors.Is classification, a struct with the error details, constructor
// functions with and without cause, an Error() method, and an Unwrap()
// method. The HTTP adapter maps each sentinel to a status code, so domain
// code never deals in transport concerns.
package errs
