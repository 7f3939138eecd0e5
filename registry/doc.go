// Package registry keeps the catalog of wrapped vector functions.
//
// Key capabilities:
//   - Registering a function together with its erased adapter
//   - Resolving argument and result descriptors at registration time
//   - Lookup by name with close-match suggestions for typos
//   - Collecting confusable-name warnings across registrations
package registry
