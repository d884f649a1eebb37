package order

import "fmt"

// Strategy selects how the sort stage of the design pipeline orders cuts.
type Strategy int

const (
	// Original keeps the design's own segment order.
	Original Strategy = iota
	// Optimized applies the Naive nearest-neighbour sort.
	Optimized
	// InnerFirst applies the Hierarchical innermost-first sort.
	InnerFirst
	// Custom pins a manually supplied order; the pipeline never
	// recomputes it.
	Custom
)

var strategyNames = map[Strategy]string{
	Original:   "original",
	Optimized:  "optimized",
	InnerFirst: "inner-first",
	Custom:     "custom",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a configuration string to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return Original, fmt.Errorf("unknown sort strategy %q", name)
}
