// Package diagnostic provides the violation records produced by validation.
//
// Key types:
//   - Code: the violation taxonomy (SchemaNotFound, DuplicateKey, ...)
//   - Severity: fatal or warning, derived from the code
//   - Path: keys and indices locating a node in the source document
//   - Report: the ordered violation list returned to callers
package diagnostic
