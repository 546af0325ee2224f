// Package catalog holds the static inputs of a registry build: the
// hand-maintained category index and the default synthesis templates.
//
// The index is edited by hand and compiled in. The templates are declared
// in templates.hcl, embedded into the binary, and decoded by the hcl
// package at startup.
package catalog
