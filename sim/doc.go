// Package sim provides the core discrete-event simulation engine for
// polling places.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - voter.go: Voter lifecycle (arrived → voting → departed, or left unvoted)
//   - booths.go: BoothPool, the occupancy tracker ordered by departure time
//   - precinct.go: PrecinctConfig and the admission/wait/rejection loop
//
// Arrivals come from arrival.go, a seeded generator that reproduces the
// same voter sequence for the same seed. search.go layers two
// convergence searches on top of the engine, each reducing many trials
// to a lower median. summary.go aggregates an outcome list for
// reporting; the CLI in cmd/ is its only consumer.
//
// The engine advances time lazily: booths are never proactively
// vacated, a departure is discovered only when a later arrival needs
// the slot. There is no global event clock.
package sim
