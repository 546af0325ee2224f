// Package hcl loads the declarative inputs of a registry build from HCL:
// category index files and synthesis template files. It is responsible for
// file discovery, parsing, block decoding and the translation of HCL values
// (through go-cty) into the format-agnostic model package.
package hcl
