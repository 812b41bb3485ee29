package checker

import "dfamatch/internal/regex"

// Context stores bound patterns, results and the compile settings

type Context struct {
	Env    *Environment
	Tally  *Tally
	Config regex.Config
}

func NewContext(cfg regex.Config) *Context {
	return &Context{Env: NewEnvironment(), Tally: NewTally(), Config: cfg}
}
