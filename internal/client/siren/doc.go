// Package siren provides a Go client for the Monster Siren catalog API.
// It fetches the album catalog, album details with their song lists and song details
// holding the download URL of the raw audio, and streams arbitrary remote assets.
// Failures are classified with errkind: network and status problems as transport errors,
// malformed or incomplete payloads as decode errors.
package siren
