package operator

import (
	"fmt"
	"sort"

	"github.com/viant/conduit/vector"
)

// Arity distinguishes operators driven by a scalar parameter from those that
// take none.
type Arity int

const (
	// Parametric operators consume the magnitude/progress argument.
	Parametric Arity = iota
	// Fixed operators ignore it.
	Fixed
)

func (a Arity) String() string {
	switch a {
	case Parametric:
		return "parametric"
	case Fixed:
		return "fixed"
	default:
		return fmt.Sprintf("Arity(%d)", int(a))
	}
}

// Func is the uniform operator signature.
type Func func(v vector.Vector, param float64) Result

// Operator is a named transformation with a uniform call signature.
type Operator struct {
	Name  string
	Arity Arity
	Apply Func
}

// Call applies the operator. Fixed operators are invoked without the
// parameter.
func (o Operator) Call(v vector.Vector, param float64) Result {
	if o.Arity == Fixed {
		param = 0
	}
	return o.Apply(v, param)
}

func primitive(name string, fn func(vector.Vector, float64) vector.Vector) Operator {
	return Operator{
		Name:  name,
		Arity: Parametric,
		Apply: func(v vector.Vector, m float64) Result {
			return Result{Vectors: []vector.Vector{fn(v, m)}}
		},
	}
}

func fixed(name string, fn func(vector.Vector) Result) Operator {
	return Operator{
		Name:  name,
		Arity: Fixed,
		Apply: func(v vector.Vector, _ float64) Result { return fn(v) },
	}
}

// Registered operator names.
const (
	NamePerturbBinding       = "perturb-binding"
	NameFractureIntegration  = "fracture-integration"
	NameStretchTemporalDepth = "stretch-temporal-depth"
	NameInjectEntropy        = "inject-entropy"
	NameProgression          = "progression"
	NameBifurcation          = "bifurcation"
	NameDepthGradient        = "depth-gradient"
	NameIdentity             = "identity"
	NameFlowInduction        = "flow-induction"
	NamePanicInduction       = "panic-induction"
)

// Registry maps operator names to operators.
type Registry struct {
	ops map[string]Operator
}

// NewRegistry returns a registry holding the given operators.
func NewRegistry(ops ...Operator) *Registry {
	r := &Registry{ops: make(map[string]Operator, len(ops))}
	for _, op := range ops {
		r.Register(op)
	}
	return r
}

// Default returns a registry with every built-in operator.
func Default() *Registry {
	return NewRegistry(
		primitive(NamePerturbBinding, PerturbBinding),
		primitive(NameFractureIntegration, FractureIntegration),
		primitive(NameStretchTemporalDepth, StretchTemporalDepth),
		primitive(NameInjectEntropy, InjectEntropy),
		Operator{Name: NameProgression, Arity: Parametric, Apply: Progression},
		fixed(NameBifurcation, Bifurcation),
		Operator{Name: NameDepthGradient, Arity: Parametric, Apply: DepthGradient},
		fixed(NameIdentity, Identity),
		Operator{Name: NameFlowInduction, Arity: Parametric, Apply: FlowInduction},
		Operator{Name: NamePanicInduction, Arity: Parametric, Apply: PanicInduction},
	)
}

// Register adds or replaces an operator.
func (r *Registry) Register(op Operator) {
	r.ops[op.Name] = op
}

// Lookup returns the operator registered under name.
func (r *Registry) Lookup(name string) (Operator, error) {
	op, ok := r.ops[name]
	if !ok {
		return Operator{}, fmt.Errorf("%w: %q", ErrUnknownOperator, name)
	}
	return op, nil
}

// Names returns the registered operator names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
