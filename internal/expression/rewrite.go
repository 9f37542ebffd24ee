package expression

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokIdent
	tokOpen
	tokClose
	tokComma
	tokPow
	tokOp
)

type token struct {
	kind tokenKind
	text string
}

// twoCharOps are the govaluate operators longer than one byte that pass
// through unchanged. ** is read as ^.
var twoCharOps = []string{"<=", ">=", "==", "!=", "&&", "||", "<<", ">>", "=~", "!~", "??"}

// rewrite turns math notation into govaluate syntax and returns the names of
// the functions it calls.
//
// govaluate reads ^ as xor and its ** groups left to right below unary minus,
// so every power becomes pow(base, exponent): right associative, binding
// tighter than a leading sign, with a signed exponent allowed (x^-1). A
// number or closing parenthesis directly followed by a name or an opening
// parenthesis is multiplied (13cos(t), 2x, (x+1)(x-1)), and scientific
// literals such as 1e3 are written out in decimal.
func rewrite(src string) (string, []string, error) {
	toks, err := lex(src)
	if err != nil {
		return "", nil, err
	}
	r := &rewriter{toks: implicitProducts(toks), calls: map[string]bool{}}
	out, err := r.sequence()
	if err != nil {
		return "", nil, err
	}
	if t, ok := r.peek(); ok {
		return "", nil, fmt.Errorf("unexpected %q", t.text)
	}
	calls := make([]string, 0, len(r.calls))
	for name := range r.calls {
		calls = append(calls, name)
	}
	sort.Strings(calls)
	return out, calls, nil
}

func lex(src string) ([]token, error) {
	var toks []token
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isDigit(c) || (c == '.' && i+1 < len(src) && isDigit(src[i+1])):
			n := scanNumber(src, i)
			v, err := strconv.ParseFloat(src[i:n], 64)
			if err != nil {
				return nil, fmt.Errorf("bad number %q", src[i:n])
			}
			toks = append(toks, token{tokNumber, strconv.FormatFloat(v, 'f', -1, 64)})
			i = n
		case isIdentStart(c):
			n := i + 1
			for n < len(src) && isIdentPart(src[n]) {
				n++
			}
			toks = append(toks, token{tokIdent, src[i:n]})
			i = n
		case c == '(':
			toks = append(toks, token{tokOpen, "("})
			i++
		case c == ')':
			toks = append(toks, token{tokClose, ")"})
			i++
		case c == ',':
			toks = append(toks, token{tokComma, ","})
			i++
		case c == '^':
			toks = append(toks, token{tokPow, "^"})
			i++
		case strings.HasPrefix(src[i:], "**"):
			toks = append(toks, token{tokPow, "^"})
			i += 2
		default:
			op := src[i : i+1]
			for _, two := range twoCharOps {
				if strings.HasPrefix(src[i:], two) {
					op = two
					break
				}
			}
			toks = append(toks, token{tokOp, op})
			i += len(op)
		}
	}
	return toks, nil
}

// scanNumber returns the end of the numeric literal starting at i. An e is
// an exponent only when digits follow it, so 2e stays 2 times e.
func scanNumber(src string, i int) int {
	n := i
	for n < len(src) && isDigit(src[n]) {
		n++
	}
	if n < len(src) && src[n] == '.' {
		n++
		for n < len(src) && isDigit(src[n]) {
			n++
		}
	}
	if n < len(src) && (src[n] == 'e' || src[n] == 'E') {
		m := n + 1
		if m < len(src) && (src[m] == '+' || src[m] == '-') {
			m++
		}
		if m < len(src) && isDigit(src[m]) {
			for m < len(src) && isDigit(src[m]) {
				m++
			}
			n = m
		}
	}
	return n
}

func implicitProducts(toks []token) []token {
	out := make([]token, 0, len(toks))
	for i, t := range toks {
		if i > 0 {
			prev := toks[i-1].kind
			if (prev == tokNumber || prev == tokClose) && (t.kind == tokIdent || t.kind == tokOpen) {
				out = append(out, token{tokOp, "*"})
			}
		}
		out = append(out, t)
	}
	return out
}

type rewriter struct {
	toks  []token
	pos   int
	calls map[string]bool
}

func (r *rewriter) peek() (token, bool) {
	if r.pos >= len(r.toks) {
		return token{}, false
	}
	return r.toks[r.pos], true
}

// sequence copies operators and operands up to a closing parenthesis, a
// comma or the end of input.
func (r *rewriter) sequence() (string, error) {
	var parts []string
	for {
		t, ok := r.peek()
		if !ok || t.kind == tokClose || t.kind == tokComma {
			break
		}
		switch t.kind {
		case tokNumber, tokIdent, tokOpen:
			operand, err := r.power()
			if err != nil {
				return "", err
			}
			parts = append(parts, operand)
		case tokPow:
			return "", fmt.Errorf("missing base before ^")
		default:
			parts = append(parts, t.text)
			r.pos++
		}
	}
	return strings.Join(parts, " "), nil
}

// power reads atom [^ sign* power].
func (r *rewriter) power() (string, error) {
	base, err := r.atom()
	if err != nil {
		return "", err
	}
	if t, ok := r.peek(); !ok || t.kind != tokPow {
		return base, nil
	}
	r.pos++

	var signs []string
	for {
		t, ok := r.peek()
		if !ok || t.kind != tokOp || (t.text != "-" && t.text != "+") {
			break
		}
		signs = append(signs, t.text)
		r.pos++
	}
	exp, err := r.power()
	if err != nil {
		return "", err
	}
	for i := len(signs) - 1; i >= 0; i-- {
		if signs[i] == "-" {
			exp = "-(" + exp + ")"
		}
	}
	return "pow(" + base + ", " + exp + ")", nil
}

// atom reads a number, a name, a call or a parenthesized group.
func (r *rewriter) atom() (string, error) {
	t, ok := r.peek()
	if !ok {
		return "", fmt.Errorf("missing operand at end of expression")
	}
	r.pos++
	switch t.kind {
	case tokNumber:
		return t.text, nil
	case tokIdent:
		if next, ok := r.peek(); ok && next.kind == tokOpen {
			r.pos++
			r.calls[t.text] = true
			args, err := r.arguments()
			if err != nil {
				return "", err
			}
			return t.text + "(" + args + ")", nil
		}
		return t.text, nil
	case tokOpen:
		inner, err := r.sequence()
		if err != nil {
			return "", err
		}
		if err := r.closeParen(); err != nil {
			return "", err
		}
		return "(" + inner + ")", nil
	default:
		return "", fmt.Errorf("unexpected %q", t.text)
	}
}

// arguments reads comma-separated sequences up to the closing parenthesis.
func (r *rewriter) arguments() (string, error) {
	var args []string
	for {
		arg, err := r.sequence()
		if err != nil {
			return "", err
		}
		args = append(args, arg)
		if t, ok := r.peek(); ok && t.kind == tokComma {
			r.pos++
			continue
		}
		if err := r.closeParen(); err != nil {
			return "", err
		}
		if len(args) == 1 && args[0] == "" {
			return "", nil
		}
		return strings.Join(args, ", "), nil
	}
}

func (r *rewriter) closeParen() error {
	if t, ok := r.peek(); ok && t.kind == tokClose {
		r.pos++
		return nil
	}
	return fmt.Errorf("missing closing parenthesis")
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isIdentStart(c byte) bool { return c == '_' || (c|0x20 >= 'a' && c|0x20 <= 'z') }
func isIdentPart(c byte) bool  { return isIdentStart(c) || isDigit(c) }
