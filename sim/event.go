package sim

import "github.com/sirupsen/logrus"

// Event defines the interface for all simulation events.
// Each event has a Timestamp (in seconds of simulated time) and an Execute
// method that advances simulation state when invoked. Follow-up events are
// scheduled through sim.Schedule and must not be earlier than the event's
// own timestamp.
type Event interface {
	Timestamp() int64
	Execute(sim *Simulation)
}

// ArrivalEvent represents a customer reaching the checkout area and trying
// to join a line. The same event kind is reused for retries after a
// rejection and for customers displaced by a line closure.
type ArrivalEvent struct {
	time     int64
	Customer *Customer
}

// NewArrivalEvent creates an arrival of customer at the given time.
func NewArrivalEvent(time int64, customer *Customer) *ArrivalEvent {
	return &ArrivalEvent{time: time, Customer: customer}
}

// Timestamp returns the scheduled time of the ArrivalEvent.
func (e *ArrivalEvent) Timestamp() int64 {
	return e.time
}

// Execute routes the customer into a line. The arrival timestamp is stamped
// on the first attempt only, so a customer who has to retry still accrues
// wait from their original arrival. If the customer lands at the front of
// their line, their checkout is scheduled immediately; if no line can take
// them, the arrival is re-scheduled one tick later.
func (e *ArrivalEvent) Execute(sim *Simulation) {
	logrus.Debugf("<< Arrival: %s at %d", e.Customer.Name, e.time)

	if e.Customer.ArrivalTime == TimeUnset {
		e.Customer.ArrivalTime = e.time
	}

	idx, err := sim.Store.EnterLine(e.Customer)
	if err != nil {
		if !sim.Store.AnyLineCouldAccept(e.Customer) {
			// No line will ever take this customer (all closed, or every
			// open line is express and the basket is over the ceiling);
			// retrying would never terminate.
			logrus.Warnf("dropping %s at %d: no line can ever accept them", e.Customer.Name, e.time)
			return
		}
		// Saturated. Try again next tick; the wait clock keeps running.
		logrus.Debugf("no line for %s at %d, retrying at %d", e.Customer.Name, e.time, e.time+1)
		sim.Schedule(NewArrivalEvent(e.time+1, e.Customer))
		return
	}

	if sim.Store.Line(idx).Len() == 1 {
		sim.Schedule(NewCheckoutCompleteEvent(e.time+sim.Store.NextCheckoutTime(idx), idx))
	}
}

// CheckoutCompleteEvent represents the front customer of a line finishing
// their checkout.
type CheckoutCompleteEvent struct {
	time int64
	Line int
}

// NewCheckoutCompleteEvent creates a checkout completion on line at time.
func NewCheckoutCompleteEvent(time int64, line int) *CheckoutCompleteEvent {
	return &CheckoutCompleteEvent{time: time, Line: line}
}

// Timestamp returns the scheduled time of the CheckoutCompleteEvent.
func (e *CheckoutCompleteEvent) Timestamp() int64 {
	return e.time
}

// Execute records the departing customer's statistics, removes them from the
// line, and schedules the next customer's checkout if the line is not empty.
func (e *CheckoutCompleteEvent) Execute(sim *Simulation) {
	customer := sim.Store.FirstInLine(e.Line)
	if customer == nil {
		panic("CheckoutCompleteEvent on an empty line")
	}
	logrus.Debugf("<< CheckoutComplete: %s on line %d at %d", customer.Name, e.Line, e.time)

	customer.CheckoutTime = e.time
	sim.recordCheckout(customer, e.Line)

	if sim.Store.RemoveFrontCustomer(e.Line) > 0 {
		sim.Schedule(NewCheckoutCompleteEvent(e.time+sim.Store.NextCheckoutTime(e.Line), e.Line))
	}
}

// CloseLineEvent represents a line closing mid-run. The customer currently
// being served stays; everyone behind them is sent back to re-enter a line.
type CloseLineEvent struct {
	time int64
	Line int
}

// NewCloseLineEvent creates a closure of line at time.
func NewCloseLineEvent(time int64, line int) *CloseLineEvent {
	return &CloseLineEvent{time: time, Line: line}
}

// Timestamp returns the scheduled time of the CloseLineEvent.
func (e *CloseLineEvent) Timestamp() int64 {
	return e.time
}

// Execute closes the line and re-submits each evicted customer as a fresh
// arrival at the same timestamp, in their original line order. The FIFO
// tie-break in the event queue keeps that order through re-routing.
func (e *CloseLineEvent) Execute(sim *Simulation) {
	logrus.Debugf("<< CloseLine: line %d at %d", e.Line, e.time)

	for _, customer := range sim.Store.CloseLine(e.Line) {
		sim.Schedule(NewArrivalEvent(e.time, customer))
	}
}
