package engine

import (
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/viant/conduit/vector"
	sqlite "modernc.org/sqlite"
)

// RegisterVectorFunctions registers vec_l2 with the driver so it is
// available on new connections opened after this call.
// Note: existing open connections will not see new functions.
func RegisterVectorFunctions(_ *sql.DB) error {
	// driver rejects duplicates; repeated registration is harmless
	_ = sqlite.RegisterDeterministicScalarFunction("vec_l2", 2, vecL2Impl)
	return nil
}

func asEmbedding(arg driver.Value) ([]float32, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return vector.DecodeEmbedding(v)
	default:
		return nil, fmt.Errorf("vec: unsupported argument type %T for embedding; want BLOB", arg)
	}
}

func vecL2Impl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("vec_l2: expected 2 arguments, got %d", len(args))
	}
	a, err := asEmbedding(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asEmbedding(args[1])
	if err != nil {
		return nil, err
	}
	if a == nil || b == nil {
		return nil, nil
	}
	return vector.L2Distance(a, b)
}
