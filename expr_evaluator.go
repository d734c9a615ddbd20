package buttonstate

import (
	"fmt"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"
)

// ExprEvaluatorOption configures an expr evaluator instance.
type ExprEvaluatorOption func(*exprEvaluator)

// ExprWithProgramCache wires a ProgramCache into the expr evaluator.
func ExprWithProgramCache(cache ProgramCache) ExprEvaluatorOption {
	return func(e *exprEvaluator) {
		e.cache = cache
	}
}

// ExprWithFunctionRegistry wires a FunctionRegistry into the expr evaluator.
func ExprWithFunctionRegistry(registry *FunctionRegistry) ExprEvaluatorOption {
	return func(e *exprEvaluator) {
		if registry == nil {
			return
		}
		e.registry = registry.Clone()
	}
}

// exprEvaluator runs content expressions using github.com/expr-lang/expr.
type exprEvaluator struct {
	cache    ProgramCache
	registry *FunctionRegistry
}

// NewExprEvaluator constructs an Evaluator backed by expr-lang/expr.
func NewExprEvaluator(opts ...ExprEvaluatorOption) Evaluator {
	e := &exprEvaluator{}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

func (e *exprEvaluator) Evaluate(ctx ContentContext, expression string) (any, error) {
	program, err := e.loadOrCompile(expression)
	if err != nil {
		return nil, err
	}
	return e.run(ctx, expression, program)
}

func (e *exprEvaluator) Compile(expression string) (CompiledRule, error) {
	program, err := e.loadOrCompile(expression)
	if err != nil {
		return nil, err
	}
	return &exprCompiledRule{evaluator: e, program: program, expression: expression}, nil
}

func (e *exprEvaluator) loadOrCompile(expression string) (*exprvm.Program, error) {
	if expression == "" {
		return nil, wrapEvaluationError(EngineExpr, expression, fmt.Errorf("expression must not be empty"))
	}
	if e.cache != nil {
		if cached, ok := e.cache.Get(cacheKey(EngineExpr, expression, e.registry)); ok {
			if program, ok := cached.(*exprvm.Program); ok {
				return program, nil
			}
		}
	}
	options := []exprlang.Option{
		exprlang.Env(e.environment(ContentContext{}.withDefaults())),
		exprlang.AllowUndefinedVariables(),
	}
	for _, name := range e.registry.Names() {
		options = append(options, exprlang.Function(name, e.registry.bind(name)))
	}
	program, err := exprlang.Compile(expression, options...)
	if err != nil {
		return nil, wrapEvaluationError(EngineExpr, expression, err)
	}
	if e.cache != nil {
		e.cache.Set(cacheKey(EngineExpr, expression, e.registry), program)
	}
	return program, nil
}

func (e *exprEvaluator) run(ctx ContentContext, expression string, program *exprvm.Program) (any, error) {
	result, err := exprlang.Run(program, e.environment(ctx.withDefaults()))
	if err != nil {
		return nil, wrapEvaluationError(EngineExpr, expression, err)
	}
	return result, nil
}

// environment exposes the content context. Registered functions are bound
// as expr functions at compile time rather than environment entries.
func (e *exprEvaluator) environment(ctx ContentContext) map[string]any {
	env := map[string]any{
		"original": ctx.Original,
		"text":     ctx.Text,
		"now":      ctx.timestamp(),
		"args":     ctx.Args,
	}
	if e.registry != nil {
		env["call"] = func(name string, arguments ...any) (any, error) {
			return e.registry.Call(name, arguments...)
		}
	}
	return env
}

type exprCompiledRule struct {
	evaluator  *exprEvaluator
	program    *exprvm.Program
	expression string
}

func (r *exprCompiledRule) Evaluate(ctx ContentContext) (any, error) {
	return r.evaluator.run(ctx, r.expression, r.program)
}

// cacheKey identifies a compiled program. Programs that captured registry
// helpers are keyed by the registry revision as well, so buttons with
// different helpers never share them.
func cacheKey(engine, expression string, registry *FunctionRegistry) string {
	if revision := registry.currentRevision(); revision != "" {
		return engine + "@" + revision + ":" + expression
	}
	return engine + ":" + expression
}
