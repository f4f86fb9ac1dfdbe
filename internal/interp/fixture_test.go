package interp

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestProgramFixtures runs a handful of representative programs end to end
// and snapshots their output via go-snaps.
func TestProgramFixtures(t *testing.T) {
	fixtures := []struct {
		name string
		src  string
	}{
		{
			name: "fibonacci",
			src: `
fun fib(n) {
  if (n < 2) return n;
  return fib(n - 1) + fib(n - 2);
}
for (var i = 0; i < 8; i = i + 1) {
  print fib(i);
}
`,
		},
		{
			name: "closures",
			src: `
fun makeCounter() {
  var count = 0;
  fun increment() {
    count = count + 1;
    print count;
  }
  return increment;
}
var counter = makeCounter();
counter();
counter();
counter();
`,
		},
		{
			name: "classes_and_inheritance",
			src: `
class Animal {
  init(name) {
    this.name = name;
  }
  speak() {
    print this.name + " makes a noise.";
  }
}
class Dog < Animal {
  speak() {
    super.speak();
    print this.name + " barks.";
  }
}
Dog("Rex").speak();
`,
		},
	}

	for _, f := range fixtures {
		t.Run(f.name, func(t *testing.T) {
			out, err := run(t, f.src)
			if err != nil {
				t.Fatalf("unexpected runtime error: %v", err)
			}
			snaps.MatchSnapshot(t, out)
		})
	}
}
