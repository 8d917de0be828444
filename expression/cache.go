// SPDX-License-Identifier: MIT

package expression

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheSize bounds the number of distinct formulas kept by Compile.
const CacheSize = 128

// Compiled bundles a formula with its derivative in one variable.
type Compiled struct {
	F  *Expr // the formula itself
	DF *Expr // dF/d(Variable)

	Variable string
}

// compiled is keyed by variable + NUL + source; values are immutable.
var compiled = mustCache()

func mustCache() *lru.Cache[string, *Compiled] {
	c, err := lru.New[string, *Compiled](CacheSize)
	if err != nil {
		// lru.New only fails on a non-positive size.
		panic(err)
	}
	return c
}

// Compile parses src and differentiates it with respect to variable,
// reusing a cached result when the same pair was compiled before.
func Compile(src, variable string) (*Compiled, error) {
	key := variable + "\x00" + src
	if c, ok := compiled.Get(key); ok {
		return c, nil
	}

	f, err := Parse(src)
	if err != nil {
		return nil, err
	}
	c := &Compiled{F: f, DF: f.Derivative(variable), Variable: variable}
	compiled.Add(key, c)

	return c, nil
}

// Params lists the free variables of F other than the differentiation
// variable, in ascending order.
func (c *Compiled) Params() []string {
	out := make([]string, 0)
	for _, v := range c.F.Vars() {
		if v != c.Variable {
			out = append(out, v)
		}
	}
	return out
}
