// Package queries contains the read-only fleet operations.
//
// Handlers obtain repositories from a fresh unit of work without beginning a
// transaction, so reads never hold drone locks. A handler that combines
// several reads begins a read-only unit of work to see one snapshot. Every handler returns plain
// read models; domain aggregates do not leave the package.
package queries
