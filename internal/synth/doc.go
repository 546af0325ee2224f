// Package synth produces minimal definition records for identifiers that
// have no enriched entry yet.
//
// A record starts from a template chosen by an ordered rule table (first
// match wins, with the "stock" template as the fallback) and is then
// extended with the hand-authored specs registered for that one identifier,
// if any. Every record gets its own copies of the template slices.
package synth
