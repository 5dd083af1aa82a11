package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		mode Mode,
		testingT *testing.T,
	) {
		if mode != ModeDevelopment {
			t.Fatal()
		}
		if testingT != t {
			t.Fatal()
		}
	})
}
