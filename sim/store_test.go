package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGroceryStore_LineOrder(t *testing.T) {
	// GIVEN a config with one line of each kind
	cfg := StoreConfig{RegularCount: 1, ExpressCount: 1, SelfServeCount: 1, LineCapacity: 2}

	// WHEN the store is built
	store := NewGroceryStore(cfg)

	// THEN lines appear in regular, express, self-serve order
	assert.Equal(t, 3, store.NumLines())
	assert.IsType(t, &RegularLine{}, store.Line(0))
	assert.IsType(t, &ExpressLine{}, store.Line(1))
	assert.IsType(t, &SelfServeLine{}, store.Line(2))
}

func TestEnterLine_PicksShortestLine(t *testing.T) {
	// GIVEN two regular lines where line 0 already has a customer
	store := NewGroceryStore(StoreConfig{RegularCount: 2, LineCapacity: 3})
	if _, err := store.EnterLine(customerWithItems("First", 1)); err != nil {
		t.Fatalf("EnterLine: %v", err)
	}

	// WHEN the next customer enters
	idx, err := store.EnterLine(customerWithItems("Second", 1))

	// THEN they are routed to the emptier line 1
	if err != nil {
		t.Fatalf("EnterLine: %v", err)
	}
	if idx != 1 {
		t.Errorf("line index: got %d, want 1", idx)
	}
}

func TestEnterLine_TieGoesToLowestIndex(t *testing.T) {
	// GIVEN two equally empty lines
	store := NewGroceryStore(StoreConfig{RegularCount: 2, LineCapacity: 1})

	// WHEN a customer enters
	idx, err := store.EnterLine(customerWithItems("Tamara", 7))

	// THEN line 0 wins the tie
	if err != nil {
		t.Fatalf("EnterLine: %v", err)
	}
	if idx != 0 {
		t.Errorf("line index: got %d, want 0", idx)
	}
}

func TestEnterLine_SkipsIneligibleLines(t *testing.T) {
	// GIVEN an express line (shorter) and a regular line
	store := NewGroceryStore(StoreConfig{RegularCount: 1, ExpressCount: 1, LineCapacity: 5})
	big := customerWithItems("Big", 1, 1, 1, 1, 1, 1, 1, 1) // over the express ceiling

	// WHEN the over-ceiling customer enters
	idx, err := store.EnterLine(big)

	// THEN they land in the regular line even though the express line is as short
	if err != nil {
		t.Fatalf("EnterLine: %v", err)
	}
	if idx != 0 {
		t.Errorf("line index: got %d, want 0 (regular)", idx)
	}
}

func TestEnterLine_Saturated_ReturnsError(t *testing.T) {
	// GIVEN a store whose only line is full
	store := NewGroceryStore(StoreConfig{RegularCount: 1, LineCapacity: 1})
	if _, err := store.EnterLine(customerWithItems("First", 1)); err != nil {
		t.Fatalf("EnterLine: %v", err)
	}

	// WHEN another customer tries to enter
	_, err := store.EnterLine(customerWithItems("Second", 1))

	// THEN they are rejected with ErrNoAvailableLine and not enqueued
	if !errors.Is(err, ErrNoAvailableLine) {
		t.Errorf("err: got %v, want ErrNoAvailableLine", err)
	}
	if store.Line(0).Len() != 1 {
		t.Errorf("rejected customer must not be enqueued, line len %d", store.Line(0).Len())
	}
}

func TestEnterLine_AllLinesClosed_ReturnsError(t *testing.T) {
	store := NewGroceryStore(StoreConfig{RegularCount: 2, LineCapacity: 5})
	store.CloseLine(0)
	store.CloseLine(1)

	_, err := store.EnterLine(customerWithItems("Late", 1))
	if !errors.Is(err, ErrNoAvailableLine) {
		t.Errorf("err: got %v, want ErrNoAvailableLine", err)
	}
	if store.AnyLineOpen() {
		t.Error("AnyLineOpen should be false with every line closed")
	}
}

func TestAnyLineCouldAccept(t *testing.T) {
	// GIVEN a store with one closed regular line and one open express line
	store := NewGroceryStore(StoreConfig{RegularCount: 1, ExpressCount: 1, LineCapacity: 1})
	store.CloseLine(0)

	small := customerWithItems("Small", 1)
	big := customerWithItems("Big", 1, 1, 1, 1, 1, 1, 1, 1)

	// THEN the express line keeps Small eligible but never Big
	if !store.AnyLineCouldAccept(small) {
		t.Error("open express line should keep a small basket eligible")
	}
	if store.AnyLineCouldAccept(big) {
		t.Error("no line can ever accept an over-ceiling basket here")
	}

	// AND closing the express line ends Small's eligibility too
	store.CloseLine(1)
	if store.AnyLineCouldAccept(small) {
		t.Error("no line can accept anyone once every line is closed")
	}
}

func TestStore_Delegation(t *testing.T) {
	// GIVEN a store with a self-serve line holding one customer
	store := NewGroceryStore(StoreConfig{SelfServeCount: 1, LineCapacity: 2})
	c := customerWithItems("Bo", 7, 3)
	if _, err := store.EnterLine(c); err != nil {
		t.Fatalf("EnterLine: %v", err)
	}

	// THEN the delegation methods reach the right line
	if got := store.NextCheckoutTime(0); got != 20 {
		t.Errorf("NextCheckoutTime: got %d, want 20", got)
	}
	if store.FirstInLine(0) != c {
		t.Error("FirstInLine should return the enqueued customer")
	}
	if got := store.RemoveFrontCustomer(0); got != 0 {
		t.Errorf("RemoveFrontCustomer: got %d remaining, want 0", got)
	}
	if store.FirstInLine(0) != nil {
		t.Error("FirstInLine should be nil after removal")
	}
}
