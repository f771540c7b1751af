// Package schema describes the configuration grammar of platform blocks and
// holds the process-wide registry of known platforms.
//
// Schemas are plain data built once at package initialisation and never
// mutated afterwards, so any number of goroutines may read them without
// locking.
//
// # Composition
//
// A PlatformSchema is not derived by inheritance. Its top-level object is
// composed at construction from the base platform record (the "platform"
// field every block has) and the platform-specific record (the collection
// field), merged by key with the specific record winning:
//
//	base:     platform (string, required)
//	specific: platform (string, required), sensors (mapping of item)
//	result:   platform, sensors
//
// # Descriptive metadata
//
// Description and DocURL on descriptors exist for help text only
// (see HelpText). Validation never reads them.
package schema
