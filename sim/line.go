// Implements the checkout line variants. All variants share the same
// capacity-bounded FIFO behavior; they differ only in service speed and,
// for express lines, an item ceiling checked at acceptance time.

package sim

import (
	"fmt"
	"strings"
)

// ExpressLimit is the maximum number of items a customer may have to be
// accepted into an express line.
const ExpressLimit = 7

// CheckoutLine is one line in the checkout area.
//
// The queue is FIFO with the front customer being served. Len never exceeds
// the line's capacity.
type CheckoutLine interface {
	// CanAccept reports whether the line would take customer right now:
	// open, below capacity, and within any variant-specific ceiling.
	CanAccept(c *Customer) bool
	// CanEverAccept reports whether the line could take customer at some
	// point: open and within any variant-specific ceiling, ignoring current
	// occupancy. A full line may empty out; a closed line or an over-ceiling
	// basket never becomes acceptable.
	CanEverAccept(c *Customer) bool
	// Accept appends customer to the back of the queue if CanAccept holds.
	// Returns whether the customer was accepted; a refusal leaves the line
	// untouched.
	Accept(c *Customer) bool
	// NextCheckoutTime returns how long ringing up the front customer takes
	// at this line's service rate, or 0 if the line is empty.
	NextCheckoutTime() int64
	// RemoveFrontCustomer drops the front customer if any and returns the
	// number of customers remaining. Calling it on an empty line is fine
	// and returns 0.
	RemoveFrontCustomer() int
	// Close marks the line closed and evicts every customer except the one
	// currently being served. The evicted customers are returned in their
	// original relative order so the caller can re-route them.
	Close() []*Customer
	// FirstInLine peeks at the front customer without removing them.
	// Returns nil if the line is empty.
	FirstInLine() *Customer
	// Len returns the number of customers currently in the line.
	Len() int
	// IsOpen reports whether the line is accepting customers.
	IsOpen() bool
}

// lineState carries the queue behavior shared by every line variant.
type lineState struct {
	capacity int
	open     bool
	queue    []*Customer
}

func newLineState(capacity int) lineState {
	if capacity <= 0 {
		panic(fmt.Sprintf("checkout line capacity must be positive, got %d", capacity))
	}
	return lineState{capacity: capacity, open: true}
}

func (ls *lineState) Len() int {
	return len(ls.queue)
}

func (ls *lineState) IsOpen() bool {
	return ls.open
}

// hasRoom is the acceptance check common to all variants.
func (ls *lineState) hasRoom() bool {
	return ls.open && len(ls.queue) < ls.capacity
}

func (ls *lineState) enqueue(c *Customer) {
	ls.queue = append(ls.queue, c)
}

func (ls *lineState) FirstInLine() *Customer {
	if len(ls.queue) == 0 {
		return nil
	}
	return ls.queue[0]
}

func (ls *lineState) RemoveFrontCustomer() int {
	if len(ls.queue) == 0 {
		return 0
	}
	ls.queue = ls.queue[1:]
	return len(ls.queue)
}

func (ls *lineState) Close() []*Customer {
	ls.open = false
	if len(ls.queue) <= 1 {
		return nil
	}
	evicted := make([]*Customer, len(ls.queue)-1)
	copy(evicted, ls.queue[1:])
	ls.queue = ls.queue[:1]
	return evicted
}

func (ls *lineState) render(tag string) string {
	names := make([]string, len(ls.queue))
	for i, c := range ls.queue {
		names[i] = c.Name
	}
	return fmt.Sprintf("[%s] open=%t [%s]", tag, ls.open, strings.Join(names, " "))
}

// RegularLine is a cashier line serving customers at 1x their item time.
type RegularLine struct {
	lineState
}

// NewRegularLine creates an open regular line with the given capacity.
func NewRegularLine(capacity int) *RegularLine {
	return &RegularLine{lineState: newLineState(capacity)}
}

func (l *RegularLine) CanAccept(c *Customer) bool {
	return l.hasRoom()
}

func (l *RegularLine) CanEverAccept(c *Customer) bool {
	return l.open
}

func (l *RegularLine) Accept(c *Customer) bool {
	if !l.CanAccept(c) {
		return false
	}
	l.enqueue(c)
	return true
}

func (l *RegularLine) NextCheckoutTime() int64 {
	front := l.FirstInLine()
	if front == nil {
		return 0
	}
	return front.ItemTime()
}

func (l *RegularLine) String() string { return l.render("Reg") }

// ExpressLine is a cashier line restricted to customers with at most
// ExpressLimit items. Service rate matches a regular line.
type ExpressLine struct {
	lineState
}

// NewExpressLine creates an open express line with the given capacity.
func NewExpressLine(capacity int) *ExpressLine {
	return &ExpressLine{lineState: newLineState(capacity)}
}

func (l *ExpressLine) CanAccept(c *Customer) bool {
	return l.hasRoom() && c.NumItems() <= ExpressLimit
}

func (l *ExpressLine) CanEverAccept(c *Customer) bool {
	return l.open && c.NumItems() <= ExpressLimit
}

func (l *ExpressLine) Accept(c *Customer) bool {
	if !l.CanAccept(c) {
		return false
	}
	l.enqueue(c)
	return true
}

func (l *ExpressLine) NextCheckoutTime() int64 {
	front := l.FirstInLine()
	if front == nil {
		return 0
	}
	return front.ItemTime()
}

func (l *ExpressLine) String() string { return l.render("Exp") }

// SelfServeLine is an unstaffed line where customers scan their own items,
// taking twice as long as a cashier would.
type SelfServeLine struct {
	lineState
}

// NewSelfServeLine creates an open self-serve line with the given capacity.
func NewSelfServeLine(capacity int) *SelfServeLine {
	return &SelfServeLine{lineState: newLineState(capacity)}
}

func (l *SelfServeLine) CanAccept(c *Customer) bool {
	return l.hasRoom()
}

func (l *SelfServeLine) CanEverAccept(c *Customer) bool {
	return l.open
}

func (l *SelfServeLine) Accept(c *Customer) bool {
	if !l.CanAccept(c) {
		return false
	}
	l.enqueue(c)
	return true
}

func (l *SelfServeLine) NextCheckoutTime() int64 {
	front := l.FirstInLine()
	if front == nil {
		return 0
	}
	return 2 * front.ItemTime()
}

func (l *SelfServeLine) String() string { return l.render("Slf") }
