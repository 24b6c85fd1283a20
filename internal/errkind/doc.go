// Package errkind classifies application failures into a small set of kinds
// (usage, transport, decode, filesystem, transcode) and maps each kind
// to a distinct process exit code.
package errkind
