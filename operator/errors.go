package operator

import (
	"fmt"

	"github.com/viant/conduit/vector"
)

// ErrUnknownOperator is returned by Registry.Lookup for an unregistered name.
// It matches vector.ErrInvalidArgument.
var ErrUnknownOperator = fmt.Errorf("operator: unknown operator: %w", vector.ErrInvalidArgument)
