// Package include expands include markers in platform collections.
//
// A marker standing in a collection is replaced by the named entries of the
// fragment it references:
//
//	sensors:
//	  kitchen_heat:
//	    value_template: "{{ true }}"
//	  upstairs: !include_dir_named sensors/upstairs
//
// becomes kitchen_heat followed by every entry of sensors/upstairs, in
// place. The marker's own key is dropped. Fragments may include further
// fragments; a chain that comes back to a fragment already being expanded
// is a CircularIncludeError. Keys must stay unique across the whole
// collection, a collision is a DuplicateKeyError rather than a silent
// overwrite.
//
// Resolution itself never touches the filesystem: fragments come from a
// Source: a Table built in memory, or the Fragments a Loader reads up front.
package include
