// Package descriptor parses marketplace extension descriptors. A descriptor is
// an arbitrary JSON object with a required "identifier" and optional
// "meta.tags"; every other field is carried through untouched. The package
// also validates descriptors against a JSON Schema, either the embedded
// default or one supplied by the project.
package descriptor
