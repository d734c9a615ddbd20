//go:build js_eval

package buttonstate

import (
	"fmt"

	"github.com/dop251/goja"
)

type jsEvaluator struct {
	cache    ProgramCache
	registry *FunctionRegistry
}

// NewJSEvaluator constructs an Evaluator backed by goja.
func NewJSEvaluator(opts ...JSEvaluatorOption) Evaluator {
	cfg := applyJSEvaluatorOptions(opts)
	return &jsEvaluator{
		cache:    cfg.cache,
		registry: cfg.registry,
	}
}

func (e *jsEvaluator) Evaluate(ctx ContentContext, expression string) (any, error) {
	program, err := e.loadOrCompile(expression)
	if err != nil {
		return nil, err
	}
	return e.run(ctx, expression, program)
}

func (e *jsEvaluator) Compile(expression string) (CompiledRule, error) {
	program, err := e.loadOrCompile(expression)
	if err != nil {
		return nil, err
	}
	return &jsCompiledRule{evaluator: e, expression: expression, program: program}, nil
}

func (e *jsEvaluator) loadOrCompile(expression string) (*goja.Program, error) {
	if expression == "" {
		return nil, wrapEvaluationError(EngineJS, expression, fmt.Errorf("expression must not be empty"))
	}
	// helpers are bound per run, so programs are shared regardless of registry
	if e.cache != nil {
		if cached, ok := e.cache.Get(cacheKey(EngineJS, expression, nil)); ok {
			if program, ok := cached.(*goja.Program); ok {
				return program, nil
			}
		}
	}
	program, err := goja.Compile("", wrapJSExpression(expression), false)
	if err != nil {
		return nil, wrapEvaluationError(EngineJS, expression, err)
	}
	if e.cache != nil {
		e.cache.Set(cacheKey(EngineJS, expression, nil), program)
	}
	return program, nil
}

// run uses a fresh runtime per evaluation; goja runtimes are not reusable
// across goroutines and buttons may share a program cache.
func (e *jsEvaluator) run(ctx ContentContext, expression string, program *goja.Program) (any, error) {
	ctx = ctx.withDefaults()
	vm := goja.New()
	vm.Set("original", ctx.Original)
	vm.Set("text", ctx.Text)
	vm.Set("now", ctx.timestamp())
	vm.Set("args", ctx.Args)
	if e.registry != nil {
		vm.Set("call", func(name string, arguments ...any) (any, error) {
			return e.registry.Call(name, arguments...)
		})
		for _, name := range e.registry.Names() {
			vm.Set(name, e.registry.bind(name))
		}
	}
	value, err := vm.RunProgram(program)
	if err != nil {
		return nil, wrapEvaluationError(EngineJS, expression, err)
	}
	return value.Export(), nil
}

func wrapJSExpression(expression string) string {
	return fmt.Sprintf("(function(){ return (%s); })()", expression)
}

type jsCompiledRule struct {
	evaluator  *jsEvaluator
	expression string
	program    *goja.Program
}

func (r *jsCompiledRule) Evaluate(ctx ContentContext) (any, error) {
	return r.evaluator.run(ctx, r.expression, r.program)
}
