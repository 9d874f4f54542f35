// Package services provides domain services spanning the drone, medication and
// event log models.
//
// The package includes:
//   - Loader: performs the IDLE -> LOADING transition and produces its audit entry
//   - LoadLedger: replays event log entries into loaded items and per-drone amounts
package services
