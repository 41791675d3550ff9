package accumulate

import "math/big"

// Aggregate reduces the command's integers. Sum of nothing is 0; Max of
// nothing is ErrEmptyMax.
func (c Command) Aggregate() (*big.Int, error) {
	if c.Aggregator == Sum {
		total := new(big.Int)
		for _, n := range c.Integers {
			total.Add(total, n)
		}
		return total, nil
	}

	if len(c.Integers) == 0 {
		return nil, ErrEmptyMax
	}
	best := c.Integers[0]
	for _, n := range c.Integers[1:] {
		if n.Cmp(best) > 0 {
			best = n
		}
	}
	return new(big.Int).Set(best), nil
}
