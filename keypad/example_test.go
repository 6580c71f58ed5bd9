package keypad_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsearch/keypad"
)

// ExampleChain_SequenceLength prices a door code behind two robots.
func ExampleChain_SequenceLength() {
	c, _ := keypad.NewChain(2)
	n, _ := c.SequenceLength("029A")
	fmt.Println(n)
	// Output: 68
}
