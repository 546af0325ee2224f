// Package registry holds the registry document: the mapping from API
// identifier to definition record that a downstream client reads to
// validate calls and render help.
//
// A Document keeps its keys in insertion order so that generated output is
// reviewable, and it keeps records copied from a previously persisted
// document as their original JSON bytes. Those records are emitted again
// verbatim (only whitespace is normalised), which is what makes a rebuild
// non-destructive even for fields this program does not know about.
//
// The package also owns the JSON codec, the identifier validity rule used to
// screen keys of an existing document, and a few read-only queries.
package registry
