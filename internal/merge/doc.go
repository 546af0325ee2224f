// Package merge combines the category index with a previously persisted
// registry document into a new, complete document.
//
// Every indexed identifier ends up with a record: an existing record is
// copied verbatim, otherwise one is synthesized from templates. Valid keys
// of the existing document that the index does not mention are retained;
// keys that fail the identifier validity rule are dropped. The inputs are
// never modified.
package merge
