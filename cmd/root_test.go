package cmd

import (
	"strings"
	"testing"

	"github.com/grocery-sim/grocery-sim/sim"
)

func TestCheckLineIndices(t *testing.T) {
	log := "0 Close 1\n5 Arrive Tamara Bananas 7\n"
	events, err := sim.ReadEventLog(strings.NewReader(log))
	if err != nil {
		t.Fatalf("ReadEventLog: %v", err)
	}

	// Close 1 is valid for a two-line store but not a one-line store.
	if err := checkLineIndices(events, 2); err != nil {
		t.Errorf("two-line store: unexpected error %v", err)
	}
	if err := checkLineIndices(events, 1); err == nil {
		t.Error("one-line store: expected an out-of-range error")
	}
}
