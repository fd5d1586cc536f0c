package tier

import "errors"

var ErrInvalidMetric = errors.New("metric value out of range")
