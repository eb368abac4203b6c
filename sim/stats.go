// Tracks run-wide statistics reported at the end of a simulation.

package sim

import "fmt"

// Stats aggregates statistics about the simulation for final reporting.
// All fields only grow while the run is in progress.
type Stats struct {
	NumCustomers int   // number of customers checked out
	TotalTime    int64 // timestamp of the last event applied
	MaxWait      int64 // longest arrival-to-checkout wait across all customers
}

// Print displays the aggregated statistics at the end of the simulation.
func (s Stats) Print() {
	fmt.Println("=== Simulation Statistics ===")
	fmt.Printf("Customers served : %d\n", s.NumCustomers)
	fmt.Printf("Total time       : %d\n", s.TotalTime)
	fmt.Printf("Max wait         : %d\n", s.MaxWait)
}
