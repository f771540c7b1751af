// Package validate checks platform blocks against the schema registry.
//
// Validation of one document runs in three steps:
//
//  1. Look up the PlatformSchema by the block's domain and "platform" field.
//  2. Expand include markers in the collection field.
//  3. Check every collection entry against the item schema.
//
// The result is the complete, ordered list of violations: entries in
// document order, fields of an entry in schema order, then unknown fields
// in document order. Only SchemaNotFound, DuplicateKey, CircularInclude and
// UnresolvedInclude stop early; every other violation accumulates.
//
// Expected schema mismatches never surface as errors. Validate returns an
// error only when called without a document.
package validate
