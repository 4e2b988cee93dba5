package round

import "errors"

// ErrInvalidConfig reports a round configuration rejected at construction time
// Detail is attached with %w wrapping; match with errors.Is
var ErrInvalidConfig = errors.New("invalid round configuration")
