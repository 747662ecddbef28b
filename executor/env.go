package executor

import (
	"maps"
	"slices"
)

// Env maps variable names to their last assigned value. Bindings are only
// added or overwritten, never removed. An Env is not safe for concurrent use.
type Env struct {
	vars map[string]float64
}

func NewEnv() *Env {
	return &Env{vars: map[string]float64{}}
}

func (e *Env) Get(name string) (float64, bool) {
	v, ok := e.vars[name]
	return v, ok
}

func (e *Env) Set(name string, value float64) {
	e.vars[name] = value
}

func (e *Env) Len() int { return len(e.vars) }

// Names returns the bound names, sorted.
func (e *Env) Names() []string {
	return slices.Sorted(maps.Keys(e.vars))
}
