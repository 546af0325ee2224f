// Package model defines the format-agnostic data model shared by every
// stage of a registry build: definition records, the category index, and
// the synthesis templates.
//
// Nothing in this package performs I/O. Loaders (built-in catalog, HCL
// files, the persisted JSON registry) translate into these types and the
// merger and synthesizer operate on them.
package model
