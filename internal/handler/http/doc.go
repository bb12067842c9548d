// Package http implements the forwarding gateway transport.
//
// Every inbound request is validated, traced and logged, then relayed to a
// single fixed upstream origin by a reverse proxy. Request and response
// bodies are streamed untouched; only the routing headers (Host, Origin,
// Referer) are rewritten to the upstream origin. The gateway performs no
// authentication and no retries.
package http
