package modes

import (
	"context"
	"testing"

	"github.com/reusee/dscope"
)

type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

// T is nil outside of tests.
func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}

func (ModuleForProduction) Context() context.Context {
	return context.Background()
}
