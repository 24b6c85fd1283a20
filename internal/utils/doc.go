// Package utils provides small helpers shared across the application:
// filename sanitization, extension handling, file existence checks,
// content-type detection and the User-Agent provider used by the HTTP transport.
package utils
