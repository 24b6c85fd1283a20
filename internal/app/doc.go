// Package app wires the catalog client, the file fetcher, the FLAC assembler and the verifier
// into the resolution service and runs it for a single scope.
package app
