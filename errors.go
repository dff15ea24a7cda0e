package iro

import (
	"errors"
	"fmt"

	"github.com/gogpu/iro/internal/quant"
)

// ErrOutOfRange is returned by Validate when a channel lies outside its
// documented domain. Conversions themselves never fail: they clamp.
var ErrOutOfRange = errors.New("iro: channel out of range")

func checkUnit(model, channel string, v float64) error {
	if quant.InUnit(v) {
		return nil
	}
	return fmt.Errorf("iro: %s.%s = %g, want [0, 1]: %w", model, channel, v, ErrOutOfRange)
}

func checkPercent(model, channel string, v uint8) error {
	if v <= percentScale {
		return nil
	}
	return fmt.Errorf("iro: %s.%s = %d, want [0, 100]: %w", model, channel, v, ErrOutOfRange)
}

// firstError returns the first non-nil error.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
