// sim/simulation.go
package sim

import (
	"github.com/sirupsen/logrus"
)

// CheckoutObserver receives a notification for every customer rung up.
// Implementations must not mutate the customer. Used by the optional trace
// recorder; a nil observer disables observation.
type CheckoutObserver interface {
	ObserveCheckout(c *Customer, line int)
}

// Simulation is the core object that holds simulation time, the store, and
// the event loop. A Simulation runs once: seed events via Run, let the queue
// drain, then read Stats.
type Simulation struct {
	// Clock is the timestamp of the event currently being applied. It never
	// decreases during a run.
	Clock int64
	// Store is the checkout area every event operates on.
	Store *GroceryStore
	// EventQueue holds pending events, soonest first, FIFO among equal
	// timestamps. The FIFO tie-break is what makes runs reproducible.
	EventQueue *PriorityQueue[Event]
	// Stats accumulates the run's aggregate statistics.
	Stats Stats

	observer CheckoutObserver
}

// NewSimulation creates a simulation over a store built from cfg.
func NewSimulation(cfg StoreConfig) *Simulation {
	return &Simulation{
		Store: NewGroceryStore(cfg),
		EventQueue: NewPriorityQueue[Event](func(a, b Event) bool {
			return a.Timestamp() < b.Timestamp()
		}),
	}
}

// SetObserver installs a checkout observer. Must be called before Run.
func (sim *Simulation) SetObserver(obs CheckoutObserver) {
	sim.observer = obs
}

// Schedule pushes an event into the event queue.
//
// Precondition: ev's timestamp is not before the current clock. Scheduling
// into the past would break causality and panics.
func (sim *Simulation) Schedule(ev Event) {
	if ev.Timestamp() < sim.Clock {
		logrus.Panicf("event scheduled at %d, before current clock %d", ev.Timestamp(), sim.Clock)
	}
	sim.EventQueue.Add(ev)
}

// Run seeds the queue with the initial events and drains it. Events execute
// in timestamp order; events with equal timestamps execute in the order they
// were scheduled. The run ends when the queue is empty, and TotalTime is the
// timestamp of the last event applied.
func (sim *Simulation) Run(initial []Event) {
	for _, ev := range initial {
		sim.Schedule(ev)
	}

	for !sim.EventQueue.IsEmpty() {
		ev := sim.EventQueue.Remove()
		sim.Clock = ev.Timestamp()
		logrus.Debugf("[t=%06d] executing %T", sim.Clock, ev)
		ev.Execute(sim)
		sim.Stats.TotalTime = sim.Clock
	}
	logrus.Debugf("[t=%06d] simulation ended", sim.Clock)
}

// recordCheckout folds one served customer into the run statistics and
// notifies the observer, if any.
func (sim *Simulation) recordCheckout(c *Customer, line int) {
	sim.Stats.NumCustomers++
	if wait := c.Wait(); wait > sim.Stats.MaxWait {
		sim.Stats.MaxWait = wait
	}
	if sim.observer != nil {
		sim.observer.ObserveCheckout(c, line)
	}
}
