// Package diagnostic provides structured warnings and errors collected while
// registering vector functions.
//
// Key capabilities:
//   - Confusable-name warnings (names normalizing to the same identifier)
//   - Registration failure reports with a stable code per failure class
//   - Aggregation into a single error for batch registration
package diagnostic
