package intake

import "errors"

var ErrIntakeNotFound = errors.New("intake not found")
