// Package api defines the wire messages of the billsplit.v1.TipService
// Connect service and the JSON codec used to carry them.
//
// Field names on the wire are snake_case, matching the Connect JSON
// conventions used by the browser client.
package api
