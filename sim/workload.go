// Synthetic workload generation: Poisson customer arrivals with random
// baskets, emitted in the event-log grammar ReadEventLog consumes.

package sim

import (
	"fmt"
	"io"
	"math"
	"math/rand"
)

// WorkloadConfig controls synthetic event-log generation. The same seed with
// the same parameters always produces the same log.
type WorkloadConfig struct {
	Customers   int     // number of arrivals to generate (> 0)
	Rate        float64 // mean arrivals per second (> 0)
	MaxItems    int     // max items per basket (>= 1)
	MaxItemTime int64   // max seconds per item (>= 1)
	Seed        int64   // RNG seed
}

// Validate checks the generation parameters.
func (c WorkloadConfig) Validate() error {
	if c.Customers <= 0 {
		return fmt.Errorf("customers must be positive, got %d", c.Customers)
	}
	if c.Rate <= 0 {
		return fmt.Errorf("rate must be positive, got %f", c.Rate)
	}
	if c.MaxItems < 1 {
		return fmt.Errorf("max items must be at least 1, got %d", c.MaxItems)
	}
	if c.MaxItemTime < 1 {
		return fmt.Errorf("max item time must be at least 1, got %d", c.MaxItemTime)
	}
	return nil
}

// itemNames is the pool baskets are drawn from. Repeats across customers are
// fine; item names carry no semantics in the simulation.
var itemNames = []string{
	"Bananas", "Bread", "Cheese", "Milk", "Eggs", "Apples",
	"Rice", "Pasta", "Tomatoes", "Coffee", "Butter", "Onions",
}

// GenerateEventLog writes cfg.Customers Arrive commands to w with
// exponentially distributed interarrival gaps (a Poisson arrival process at
// cfg.Rate) and uniformly random baskets.
func GenerateEventLog(w io.Writer, cfg WorkloadConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	clock := int64(0)
	for i := 0; i < cfg.Customers; i++ {
		// Inverse-transform sample of the exponential interarrival gap,
		// rounded up so consecutive arrivals never collapse onto one tick.
		gap := int64(math.Ceil(rng.ExpFloat64() / cfg.Rate))
		clock += gap

		if _, err := fmt.Fprintf(w, "%d Arrive Customer%d%s\n", clock, i, randomBasket(rng, cfg)); err != nil {
			return fmt.Errorf("writing event log: %w", err)
		}
	}
	return nil
}

func randomBasket(rng *rand.Rand, cfg WorkloadConfig) string {
	n := 1 + rng.Intn(cfg.MaxItems)
	basket := ""
	for i := 0; i < n; i++ {
		name := itemNames[rng.Intn(len(itemNames))]
		time := 1 + rng.Int63n(cfg.MaxItemTime)
		basket += fmt.Sprintf(" %s %d", name, time)
	}
	return basket
}
