package domain

// Expression is a compiled math expression.
type Expression interface {
	// Source returns the text the expression was compiled from.
	Source() string
	// Evaluate computes the value with the given variable bindings.
	Evaluate(scope map[string]float64) (float64, error)
	// Symbols lists the free variables, sorted and without duplicates.
	Symbols() []string
	// Calls lists the names of called functions, sorted and without duplicates.
	Calls() []string
}

// Parser compiles expression text.
type Parser interface {
	Parse(src string) (Expression, error)
}

// Classifier decides the plotting mode of an equation.
type Classifier interface {
	Classify(equation string) (Classification, error)
}

// PlotService plots a batch of trimmed, non-empty equations.
type PlotService interface {
	Plot(equations []string) (PlotResult, error)
}

// SettingsStore persists plotting settings.
type SettingsStore interface {
	LoadSettings() (Settings, error)
	SaveSettings(s Settings) error
}
