// Defines the Customer and Item types that flow through the simulation.
// A customer carries its basket plus the timestamps needed for wait statistics.

package sim

import "fmt"

// TimeUnset marks a timestamp that has not been recorded yet.
const TimeUnset int64 = -1

// Item is a single basket entry. Time is the number of seconds a cashier
// needs to ring it up; always positive.
type Item struct {
	Name string
	Time int64
}

// Customer models one shopper's trip through the checkout area.
//
// ArrivalTime is stamped the first time the customer tries to join a line,
// whether or not a line accepts them; CheckoutTime is stamped when they are
// rung up. Both start at TimeUnset. Customers are never discarded once
// created, so completed runs can be inspected after the fact.
type Customer struct {
	Name         string // unique identifier within a run
	ArrivalTime  int64
	CheckoutTime int64

	items []Item
}

// NewCustomer creates a customer holding a copy of items.
func NewCustomer(name string, items []Item) *Customer {
	c := &Customer{
		Name:         name,
		ArrivalTime:  TimeUnset,
		CheckoutTime: TimeUnset,
		items:        make([]Item, len(items)),
	}
	copy(c.items, items)
	return c
}

// NumItems returns the number of items in the customer's basket.
func (c *Customer) NumItems() int {
	return len(c.items)
}

// ItemTime returns the summed item times: the service time at a regular or
// express line. Self-serve lines scale this up.
func (c *Customer) ItemTime() int64 {
	var total int64
	for _, item := range c.items {
		total += item.Time
	}
	return total
}

// Items returns the customer's basket for iteration. Callers must not
// modify the returned slice.
func (c *Customer) Items() []Item {
	return c.items
}

// Wait returns how long the customer waited between first arriving at the
// checkout area and being rung up, or 0 if either timestamp is unset.
func (c *Customer) Wait() int64 {
	if c.ArrivalTime == TimeUnset || c.CheckoutTime == TimeUnset {
		return 0
	}
	return c.CheckoutTime - c.ArrivalTime
}

func (c *Customer) String() string {
	return fmt.Sprintf("%s (%d items, %ds)", c.Name, c.NumItems(), c.ItemTime())
}
