// Package http provides http.RoundTripper decorators used by the catalog client:
// request/response dumping at debug level and User-Agent header injection.
package http
