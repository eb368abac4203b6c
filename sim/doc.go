// Package sim provides the core discrete-event simulation engine for the
// grocery checkout simulator.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - store.go / line.go: the checkout area state machine (routing, capacity, closure)
//   - event.go: the event kinds that drive the simulation (Arrival, CheckoutComplete, CloseLine)
//   - simulation.go: the event loop, clock, and statistics accumulation
//
// Events are drained from a stable PriorityQueue (pqueue.go): soonest
// timestamp first, FIFO among equal timestamps. That tie-break is what makes
// runs deterministic, so the same config and event log always produce the
// same statistics.
//
// The external surfaces are adapters around the core: config.go loads the
// store configuration (JSON or YAML), eventlog.go parses the text command
// log, workload.go generates synthetic logs, and sim/trace records
// per-customer checkouts to SQLite behind the CheckoutObserver hook.
package sim
