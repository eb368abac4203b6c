// Parses the text event log that drives a simulation run.
//
// Grammar, one command per line:
//
//	<timestamp> Arrive <name> [<item-name> <item-time>]...
//	<timestamp> Close <line-index>
//
// Lines need not be sorted by timestamp; the event queue orders them.

package sim

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadEventLog parses r into the initial event sequence for a run. Blank
// lines are skipped. Any malformed line fails the whole parse with an error
// naming the line number.
func ReadEventLog(r io.Reader) ([]Event, error) {
	var events []Event
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ev, err := parseCommand(strings.Fields(line))
		if err != nil {
			return nil, fmt.Errorf("event log line %d: %w", lineNo, err)
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading event log: %w", err)
	}
	return events, nil
}

func parseCommand(fields []string) (Event, error) {
	if len(fields) < 2 {
		return nil, fmt.Errorf("expected '<timestamp> <command> ...', got %q", strings.Join(fields, " "))
	}
	ts, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad timestamp %q: %w", fields[0], err)
	}
	if ts < 0 {
		return nil, fmt.Errorf("timestamp must be non-negative, got %d", ts)
	}

	switch cmd := fields[1]; cmd {
	case "Arrive":
		return parseArrive(ts, fields[2:])
	case "Close":
		return parseClose(ts, fields[2:])
	default:
		return nil, fmt.Errorf("unknown command %q", cmd)
	}
}

func parseArrive(ts int64, args []string) (Event, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("Arrive needs a customer name")
	}
	name := args[0]
	pairs := args[1:]
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("Arrive %s: items must be <name> <time> pairs, got %d trailing fields", name, len(pairs))
	}
	items := make([]Item, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		t, err := strconv.ParseInt(pairs[i+1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("Arrive %s: bad item time %q: %w", name, pairs[i+1], err)
		}
		if t <= 0 {
			return nil, fmt.Errorf("Arrive %s: item time must be positive, got %d", name, t)
		}
		items = append(items, Item{Name: pairs[i], Time: t})
	}
	return NewArrivalEvent(ts, NewCustomer(name, items)), nil
}

func parseClose(ts int64, args []string) (Event, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("Close takes exactly one line index, got %d fields", len(args))
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("bad line index %q: %w", args[0], err)
	}
	if idx < 0 {
		return nil, fmt.Errorf("line index must be non-negative, got %d", idx)
	}
	return NewCloseLineEvent(ts, idx), nil
}
