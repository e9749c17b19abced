package cli

import (
	"errors"
	"math"
	"strconv"

	"github.com/spf13/pflag"
)

var errBadRate = errors.New("exchange rate must be a positive number")

// rateValue is a --rate flag that only accepts a positive finite rate.
type rateValue struct {
	rate float64
	set  bool
}

var _ pflag.Value = (*rateValue)(nil)

func (v *rateValue) String() string {
	if !v.set {
		return ""
	}
	return strconv.FormatFloat(v.rate, 'f', -1, 64)
}

func (v *rateValue) Set(s string) error {
	rate, err := parseRate(s)
	if err != nil {
		return err
	}
	v.rate, v.set = rate, true
	return nil
}

func (v *rateValue) Type() string { return "rate" }

func parseRate(s string) (float64, error) {
	rate, err := strconv.ParseFloat(s, 64)
	if err != nil || rate <= 0 || math.IsInf(rate, 0) || math.IsNaN(rate) {
		return 0, errBadRate
	}
	return rate, nil
}
