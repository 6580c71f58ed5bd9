package network_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlsearch/network"
)

// ExampleNetwork_Password finds the largest fully linked group.
func ExampleNetwork_Password() {
	n, _ := network.Parse(strings.NewReader("a-b\nb-c\na-c\nc-d\n"))
	fmt.Println(n.Password(), len(n.Triangles("")))
	// Output: a,b,c 1
}
