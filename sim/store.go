// Implements the GroceryStore: the set of checkout lines plus the routing
// rule that picks a line for an arriving customer.

package sim

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrNoAvailableLine is returned by EnterLine when no open line can take the
// customer. It signals store saturation, an expected condition; the arrival
// event decides what to do with the rejected customer.
var ErrNoAvailableLine = errors.New("no line available")

// GroceryStore owns the checkout lines. Lines are ordered: regular lines
// first, then express, then self-serve, exactly as the configuration counts
// them, and that order is what line indices refer to for the whole run.
type GroceryStore struct {
	lines []CheckoutLine
}

// NewGroceryStore builds a store from cfg. cfg must have passed Validate.
func NewGroceryStore(cfg StoreConfig) *GroceryStore {
	lines := make([]CheckoutLine, 0, cfg.NumLines())
	for i := 0; i < cfg.RegularCount; i++ {
		lines = append(lines, NewRegularLine(cfg.LineCapacity))
	}
	for i := 0; i < cfg.ExpressCount; i++ {
		lines = append(lines, NewExpressLine(cfg.LineCapacity))
	}
	for i := 0; i < cfg.SelfServeCount; i++ {
		lines = append(lines, NewSelfServeLine(cfg.LineCapacity))
	}
	return &GroceryStore{lines: lines}
}

// NumLines returns how many checkout lines the store has.
func (gs *GroceryStore) NumLines() int {
	return len(gs.lines)
}

// Line returns the line at index i.
//
// Precondition: 0 <= i < NumLines().
func (gs *GroceryStore) Line(i int) CheckoutLine {
	return gs.lines[i]
}

// EnterLine routes customer to the eligible line with the fewest customers
// and appends them there, returning the chosen line's index. The scan runs
// in index order and only switches on a strictly shorter line, so the lowest
// index wins ties. Returns ErrNoAvailableLine if no line can accept the
// customer; the customer is then not enqueued anywhere.
func (gs *GroceryStore) EnterLine(c *Customer) (int, error) {
	best := -1
	bestLen := 0
	for i, line := range gs.lines {
		if !line.CanAccept(c) {
			continue
		}
		if best == -1 || line.Len() < bestLen {
			best = i
			bestLen = line.Len()
		}
	}
	if best == -1 {
		return 0, ErrNoAvailableLine
	}
	gs.lines[best].Accept(c)
	logrus.Debugf("routed %s to line %d (len %d)", c.Name, best, gs.lines[best].Len())
	return best, nil
}

// AnyLineOpen reports whether at least one line is still open.
func (gs *GroceryStore) AnyLineOpen() bool {
	for _, line := range gs.lines {
		if line.IsOpen() {
			return true
		}
	}
	return false
}

// AnyLineCouldAccept reports whether some line could take customer once it
// has room: open and within its variant ceiling. False means no amount of
// waiting helps — every open line is permanently ineligible for c.
func (gs *GroceryStore) AnyLineCouldAccept(c *Customer) bool {
	for _, line := range gs.lines {
		if line.CanEverAccept(c) {
			return true
		}
	}
	return false
}

// NextCheckoutTime returns the service time for the front customer of line i,
// or 0 if that line is empty.
//
// Precondition: 0 <= i < NumLines().
func (gs *GroceryStore) NextCheckoutTime(i int) int64 {
	return gs.lines[i].NextCheckoutTime()
}

// RemoveFrontCustomer removes the front customer of line i, if any, and
// returns how many customers remain there.
//
// Precondition: 0 <= i < NumLines().
func (gs *GroceryStore) RemoveFrontCustomer(i int) int {
	return gs.lines[i].RemoveFrontCustomer()
}

// CloseLine closes line i and returns the evicted customers in their
// original order. The front customer, if any, stays to finish checking out.
//
// Precondition: 0 <= i < NumLines().
func (gs *GroceryStore) CloseLine(i int) []*Customer {
	return gs.lines[i].Close()
}

// FirstInLine peeks at the front customer of line i, or nil if empty.
//
// Precondition: 0 <= i < NumLines().
func (gs *GroceryStore) FirstInLine(i int) *Customer {
	return gs.lines[i].FirstInLine()
}

func (gs *GroceryStore) String() string {
	var sb strings.Builder
	for i, line := range gs.lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%d %v", i, line)
	}
	return sb.String()
}
