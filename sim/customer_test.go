package sim

import "testing"

func TestCustomer_ItemTime_SumsBasket(t *testing.T) {
	c := NewCustomer("Bo", []Item{{Name: "bananas", Time: 7}, {Name: "cheese", Time: 3}})
	if c.NumItems() != 2 {
		t.Errorf("NumItems: got %d, want 2", c.NumItems())
	}
	if c.ItemTime() != 10 {
		t.Errorf("ItemTime: got %d, want 10", c.ItemTime())
	}
}

func TestNewCustomer_CopiesItems(t *testing.T) {
	// GIVEN a basket slice reused by the caller
	items := []Item{{Name: "bananas", Time: 7}}
	c := NewCustomer("Belinda", items)

	// WHEN the caller mutates its slice
	items[0].Time = 100

	// THEN the customer's basket is unaffected
	if c.ItemTime() != 7 {
		t.Errorf("ItemTime after caller mutation: got %d, want 7", c.ItemTime())
	}
}

func TestCustomer_TimestampsStartUnset(t *testing.T) {
	c := NewCustomer("Sophia", nil)
	if c.ArrivalTime != TimeUnset || c.CheckoutTime != TimeUnset {
		t.Errorf("timestamps: got arrival=%d checkout=%d, want both unset", c.ArrivalTime, c.CheckoutTime)
	}
	if c.Wait() != 0 {
		t.Errorf("Wait with unset stamps: got %d, want 0", c.Wait())
	}
}

func TestCustomer_Wait(t *testing.T) {
	c := NewCustomer("Tamara", []Item{{Name: "bananas", Time: 7}})
	c.ArrivalTime = 10
	c.CheckoutTime = 18
	if c.Wait() != 8 {
		t.Errorf("Wait: got %d, want 8", c.Wait())
	}
}
