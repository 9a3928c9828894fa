package modes

import (
	"context"
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForTest wires scopes for tests: no config files are read and the
// root context ends with the test.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (m ModuleForTest) Mode() Mode {
	return ModeDevelopment
}

func (m ModuleForTest) Context() context.Context {
	return m.t.Context()
}
