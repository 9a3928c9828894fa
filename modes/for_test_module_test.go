package modes

import (
	"context"
	"testing"

	"github.com/reusee/dscope"
)

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		tt *testing.T,
		mode Mode,
		ctx context.Context,
	) {
		if ctx.Err() != nil {
			t.Fatal("should be live during the test")
		}
		if tt != t {
			t.Fatal("should be the running test")
		}
		if mode != ModeDevelopment {
			t.Fatalf("got %v", mode)
		}
		if mode.String() != "development" {
			t.Fatalf("got %s", mode)
		}
	})
}
