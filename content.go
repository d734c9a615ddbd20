package buttonstate

import (
	"fmt"
	"strings"
)

type contentKind uint8

const (
	contentNone contentKind = iota
	contentLiteral
	contentGenerator
	contentExpression
)

// Content is the source of the markup shown while loading. The zero value
// means no content is configured and the original markup is used.
type Content struct {
	kind     contentKind
	literal  string
	generate func(original string) string
	engine   string
	expr     string
}

// Literal uses markup verbatim.
func Literal(markup string) Content {
	return Content{kind: contentLiteral, literal: markup}
}

// Generator calls fn with the element's original markup. A nil fn is the
// same as no content.
func Generator(fn func(original string) string) Content {
	if fn == nil {
		return Content{}
	}
	return Content{kind: contentGenerator, generate: fn}
}

// Expression evaluates expr with the named engine. The expression sees the
// original markup as `original`, the original text as `text`, the current
// time as `now` and any configured content args as `args`.
func Expression(engine, expr string) Content {
	if strings.TrimSpace(expr) == "" {
		return Content{}
	}
	engine = strings.ToLower(strings.TrimSpace(engine))
	if engine == "" {
		engine = EngineExpr
	}
	return Content{kind: contentExpression, engine: engine, expr: expr}
}

// IsZero reports whether no content source is configured.
func (c Content) IsZero() bool {
	return c.kind == contentNone
}

// Engine returns the expression engine, or "" for non-expression content.
func (c Content) Engine() string {
	return c.engine
}

// Source returns the literal markup or expression text.
func (c Content) Source() string {
	if c.kind == contentExpression {
		return c.expr
	}
	return c.literal
}

// contentRenderer produces loading markup for a target. Expression content is
// compiled once, at construction.
type contentRenderer struct {
	content Content
	icon    string
	rule    CompiledRule
	err     error
	args    map[string]any
}

func newContentRenderer(cfg Config, bc buttonConfig) *contentRenderer {
	r := &contentRenderer{
		content: cfg.Loading.HTML,
		icon:    cfg.Loading.Icon,
		args:    bc.contentArgs,
	}
	if r.content.kind != contentExpression {
		return r
	}
	evaluator := bc.evaluator
	if evaluator == nil {
		evaluator, r.err = evaluatorFor(r.content.engine, bc)
	}
	if r.err != nil {
		r.err = wrapEvaluationError(r.content.engine, r.content.expr, r.err)
		return r
	}
	r.rule, r.err = evaluator.Compile(r.content.expr)
	if r.err != nil {
		r.err = wrapEvaluationError(r.content.engine, r.content.expr, r.err)
	}
	return r
}

// render returns the loading markup for t. Expression failures fall back to
// the original markup and are returned for logging.
func (r *contentRenderer) render(t Target, ctx ContentContext) (string, error) {
	markup := t.OriginalHTML
	var err error
	switch r.content.kind {
	case contentLiteral:
		markup = r.content.literal
	case contentGenerator:
		markup = r.content.generate(t.OriginalHTML)
	case contentExpression:
		if r.err != nil {
			err = r.err
			break
		}
		ctx.Original = t.OriginalHTML
		ctx.Text = t.OriginalText
		ctx.Args = r.args
		value, evalErr := r.rule.Evaluate(ctx)
		if evalErr != nil {
			err = wrapEvaluationError(r.content.engine, r.content.expr, evalErr)
			break
		}
		markup = stringify(value)
	}
	if r.icon != "" {
		markup += r.icon
	}
	return markup, err
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
