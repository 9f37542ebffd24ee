package expression

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/Knetic/govaluate"

	"chartleap/internal/domain"
)

// escapedName matches LaTeX-style names such as \theta.
var escapedName = regexp.MustCompile(`\\([A-Za-z]+)`)

// Parser compiles math text with govaluate.
type Parser struct{}

// New returns a Parser.
func New() *Parser { return &Parser{} }

// Parse compiles src. Failures are *domain.ParseError.
func (p *Parser) Parse(src string) (domain.Expression, error) {
	if strings.TrimSpace(src) == "" {
		return nil, &domain.ParseError{Expression: src, Err: fmt.Errorf("empty expression")}
	}
	text, calls, err := rewrite(escapedName.ReplaceAllString(src, "$1"))
	if err != nil {
		return nil, &domain.ParseError{Expression: src, Err: err}
	}
	compiled, err := govaluate.NewEvaluableExpressionWithFunctions(text, functions)
	if err != nil {
		return nil, &domain.ParseError{Expression: src, Err: err}
	}
	return &Expr{
		src:      src,
		compiled: compiled,
		symbols:  freeSymbols(compiled.Tokens()),
		calls:    calls,
	}, nil
}

func freeSymbols(tokens []govaluate.ExpressionToken) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, tok := range tokens {
		if tok.Kind != govaluate.VARIABLE {
			continue
		}
		v, _ := tok.Value.(string)
		if _, isConst := constants[v]; isConst || v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Expr is a compiled expression.
type Expr struct {
	src      string
	compiled *govaluate.EvaluableExpression
	symbols  []string
	calls    []string
}

func (e *Expr) Source() string    { return e.src }
func (e *Expr) Symbols() []string { return e.symbols }
func (e *Expr) Calls() []string   { return e.calls }

// Evaluate computes e with scope; pi and e are bound unless shadowed.
// Failures are *domain.EvalError.
func (e *Expr) Evaluate(scope map[string]float64) (float64, error) {
	v, err := e.compiled.Eval(scopeParams(scope))
	if err != nil {
		return 0, &domain.EvalError{Expression: e.src, Err: err}
	}
	f, ok := v.(float64)
	if !ok {
		return 0, &domain.EvalError{Expression: e.src, Err: fmt.Errorf("result %v (%T) is not a number", v, v)}
	}
	return f, nil
}

// scopeParams adapts a variable scope to govaluate.Parameters without
// copying it per evaluation.
type scopeParams map[string]float64

func (s scopeParams) Get(name string) (interface{}, error) {
	if v, ok := s[name]; ok {
		return v, nil
	}
	if v, ok := constants[name]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("no value bound to %q", name)
}

var (
	_ domain.Parser     = (*Parser)(nil)
	_ domain.Expression = (*Expr)(nil)
)
