package buttonstate

import (
	"errors"
	"fmt"
)

// Expression engines accepted by Expression and the loading.engine option.
const (
	EngineExpr = "expr"
	EngineCEL  = "cel"
	EngineJS   = "js"
)

var (
	// ErrUnknownEngine indicates an expression engine name that is not supported.
	ErrUnknownEngine = errors.New("buttonstate: unknown expression engine")
	// ErrEngineUnavailable indicates an engine that was not compiled in.
	ErrEngineUnavailable = errors.New("buttonstate: expression engine not available")
)

func evaluatorFor(engine string, bc buttonConfig) (Evaluator, error) {
	switch engine {
	case EngineExpr:
		return NewExprEvaluator(ExprWithProgramCache(bc.programCache), ExprWithFunctionRegistry(bc.functions)), nil
	case EngineCEL:
		return NewCELEvaluator(CELWithProgramCache(bc.programCache), CELWithFunctionRegistry(bc.functions)), nil
	case EngineJS:
		evaluator := NewJSEvaluator(JSWithProgramCache(bc.programCache), JSWithFunctionRegistry(bc.functions))
		if evaluator == nil {
			return nil, ErrEngineUnavailable
		}
		return evaluator, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
}

type jsEvaluatorConfig struct {
	cache    ProgramCache
	registry *FunctionRegistry
}

// JSEvaluatorOption configures the JS evaluator.
type JSEvaluatorOption func(*jsEvaluatorConfig)

// JSWithProgramCache applies a ProgramCache to the JS evaluator.
func JSWithProgramCache(cache ProgramCache) JSEvaluatorOption {
	return func(cfg *jsEvaluatorConfig) {
		cfg.cache = cache
	}
}

// JSWithFunctionRegistry applies a FunctionRegistry to the JS evaluator.
func JSWithFunctionRegistry(registry *FunctionRegistry) JSEvaluatorOption {
	return func(cfg *jsEvaluatorConfig) {
		if registry == nil {
			return
		}
		cfg.registry = registry.Clone()
	}
}

func applyJSEvaluatorOptions(opts []JSEvaluatorOption) jsEvaluatorConfig {
	cfg := jsEvaluatorConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
