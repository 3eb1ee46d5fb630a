package app

import (
	intrepl "diffagent/internal/repl"
)

// REPL is a facade for internal/repl.REPL
// Deprecated: Use diffagent/internal/repl.REPL instead
type REPL = intrepl.REPL

// REPLConfig is a facade for internal/repl.Config
// Deprecated: Use diffagent/internal/repl.Config instead
type REPLConfig = intrepl.Config

// NewREPL creates a new REPL instance
// Deprecated: Use diffagent/internal/repl.New instead
func NewREPL(config REPLConfig) (*REPL, error) {
	return intrepl.New(config)
}
