package sim

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateEventLog_SameSeedSameLog(t *testing.T) {
	// GIVEN one workload config used twice
	cfg := WorkloadConfig{Customers: 50, Rate: 0.5, MaxItems: 5, MaxItemTime: 8, Seed: 7}

	var a, b bytes.Buffer
	if err := GenerateEventLog(&a, cfg); err != nil {
		t.Fatalf("GenerateEventLog: %v", err)
	}
	if err := GenerateEventLog(&b, cfg); err != nil {
		t.Fatalf("GenerateEventLog: %v", err)
	}

	// THEN both logs are identical
	if a.String() != b.String() {
		t.Error("same seed should produce identical logs")
	}
}

func TestGenerateEventLog_ParsesAndRuns(t *testing.T) {
	// GIVEN a generated log
	cfg := WorkloadConfig{Customers: 30, Rate: 1.0, MaxItems: 6, MaxItemTime: 5, Seed: 3}
	var buf bytes.Buffer
	if err := GenerateEventLog(&buf, cfg); err != nil {
		t.Fatalf("GenerateEventLog: %v", err)
	}

	// WHEN it is parsed with the event-log parser
	events, err := ReadEventLog(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("generated log does not parse: %v", err)
	}
	if len(events) != cfg.Customers {
		t.Fatalf("events: got %d, want %d", len(events), cfg.Customers)
	}

	// THEN timestamps are strictly increasing and baskets are in range
	prev := int64(-1)
	for i, ev := range events {
		arrive, ok := ev.(*ArrivalEvent)
		if !ok {
			t.Fatalf("events[%d]: got %T, want *ArrivalEvent", i, ev)
		}
		if arrive.Timestamp() <= prev {
			t.Errorf("events[%d]: timestamp %d not after %d", i, arrive.Timestamp(), prev)
		}
		prev = arrive.Timestamp()
		if n := arrive.Customer.NumItems(); n < 1 || n > cfg.MaxItems {
			t.Errorf("events[%d]: basket size %d out of [1,%d]", i, n, cfg.MaxItems)
		}
	}

	// AND a store with a few lines serves every generated customer
	s := NewSimulation(StoreConfig{RegularCount: 2, ExpressCount: 1, SelfServeCount: 1, LineCapacity: 10})
	s.Run(events)
	if s.Stats.NumCustomers != cfg.Customers {
		t.Errorf("served: got %d, want %d", s.Stats.NumCustomers, cfg.Customers)
	}
}

func TestWorkloadConfig_Validate(t *testing.T) {
	valid := WorkloadConfig{Customers: 1, Rate: 0.1, MaxItems: 1, MaxItemTime: 1}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	bad := []WorkloadConfig{
		{Customers: 0, Rate: 0.1, MaxItems: 1, MaxItemTime: 1},
		{Customers: 1, Rate: 0, MaxItems: 1, MaxItemTime: 1},
		{Customers: 1, Rate: 0.1, MaxItems: 0, MaxItemTime: 1},
		{Customers: 1, Rate: 0.1, MaxItems: 1, MaxItemTime: 0},
	}
	for i, cfg := range bad {
		if err := cfg.Validate(); err == nil {
			t.Errorf("bad config %d accepted", i)
		}
	}
}
