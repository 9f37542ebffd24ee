package expression

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
)

// constants are bound unless the scope shadows them.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

func unary(name string, fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%s: want 1 argument, got %d", name, len(args))
		}
		x, err := toFloat(name, args[0])
		if err != nil {
			return nil, err
		}
		return fn(x), nil
	}
}

func binary(name string, fn func(a, b float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("%s: want 2 arguments, got %d", name, len(args))
		}
		a, err := toFloat(name, args[0])
		if err != nil {
			return nil, err
		}
		b, err := toFloat(name, args[1])
		if err != nil {
			return nil, err
		}
		return fn(a, b), nil
	}
}

func variadic(name string, fn func(a, b float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("%s: want at least 1 argument", name)
		}
		acc, err := toFloat(name, args[0])
		if err != nil {
			return nil, err
		}
		for _, a := range args[1:] {
			v, err := toFloat(name, a)
			if err != nil {
				return nil, err
			}
			acc = fn(acc, v)
		}
		return acc, nil
	}
}

func toFloat(name string, v interface{}) (float64, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("%s: argument %v is not a number", name, v)
	}
	return f, nil
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x
	}
}

var functions = map[string]govaluate.ExpressionFunction{
	"sin":   unary("sin", math.Sin),
	"cos":   unary("cos", math.Cos),
	"tan":   unary("tan", math.Tan),
	"asin":  unary("asin", math.Asin),
	"acos":  unary("acos", math.Acos),
	"atan":  unary("atan", math.Atan),
	"sinh":  unary("sinh", math.Sinh),
	"cosh":  unary("cosh", math.Cosh),
	"tanh":  unary("tanh", math.Tanh),
	"sec":   unary("sec", func(x float64) float64 { return 1 / math.Cos(x) }),
	"csc":   unary("csc", func(x float64) float64 { return 1 / math.Sin(x) }),
	"cot":   unary("cot", func(x float64) float64 { return 1 / math.Tan(x) }),
	"sqrt":  unary("sqrt", math.Sqrt),
	"cbrt":  unary("cbrt", math.Cbrt),
	"abs":   unary("abs", math.Abs),
	"exp":   unary("exp", math.Exp),
	"log":   unary("log", math.Log),
	"ln":    unary("ln", math.Log),
	"log10": unary("log10", math.Log10),
	"log2":  unary("log2", math.Log2),
	"floor": unary("floor", math.Floor),
	"ceil":  unary("ceil", math.Ceil),
	"round": unary("round", math.Round),
	"sign":  unary("sign", sign),
	"atan2": binary("atan2", math.Atan2),
	"pow":   binary("pow", math.Pow),
	"min":   variadic("min", math.Min),
	"max":   variadic("max", math.Max),
}
