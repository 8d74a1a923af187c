package match_test

import (
	"fmt"

	"github.com/coregx/regexviz/match"
)

// ExampleSplit demonstrates highlighting only the first match.
func ExampleSplit() {
	for _, seg := range match.Split("foo bar foo", "foo") {
		fmt.Printf("%q %v\n", seg.Text, seg.IsMatch)
	}
	// Output:
	// "foo" true
	// " bar foo" false
}

// ExampleSplit_global demonstrates highlighting every match.
func ExampleSplit_global() {
	for _, seg := range match.Split("a1b22", `\d+`, match.Global) {
		fmt.Println(seg.ID, seg.Text)
	}
	// Output:
	// no-0 a
	// yes-1 1
	// no-2 b
	// yes-3 22
}

// ExampleIsValid demonstrates the validity check.
func ExampleIsValid() {
	fmt.Println(match.IsValid(`\d+`))
	fmt.Println(match.IsValid("("))
	// Output:
	// true
	// false
}
