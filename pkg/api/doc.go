// Package api is the JSON-over-string transport boundary: every exported
// function takes and returns plain strings so a host (CLI, WASM bridge,
// test harness) never has to import the engine's Go types directly. Every
// call is tagged with a uuid correlation id and logged at debug level via
// zerolog; failures are reported as a JSON error envelope rather than a Go
// error, since the boundary itself cannot fail partway through encoding.
package api
