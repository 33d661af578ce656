package practicesession

import "fmt"

// Weights are the relative odds of drawing each tier. Empty tiers are
// dropped before the draw, so their weight is not redistributed.
type Weights struct {
	Low  float64
	Mid  float64
	High float64
}

func DefaultWeights() Weights {
	return Weights{Low: 5, Mid: 3, High: 2}
}

func (w Weights) Validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{{"low", w.Low}, {"mid", w.Mid}, {"high", w.High}} {
		if v.value <= 0 {
			return fmt.Errorf("tier weight %s must be positive, got %v", v.name, v.value)
		}
	}
	return nil
}

func (w Weights) of(t Tier) float64 {
	switch t {
	case TierLow:
		return w.Low
	case TierMid:
		return w.Mid
	default:
		return w.High
	}
}
