package refs_test

import (
	"fmt"

	"github.com/katalvlaran/formulath/core"
	"github.com/katalvlaran/formulath/refs"
)

// ExampleNavigator demonstrates both edge directions over a small committed
// chain: Depth depends on Height, Height depends on Width.
func ExampleNavigator() {
	s := core.NewMemSet()
	_, _ = s.Add("Width")
	_, _ = s.Add("Height", core.WithFormula("Width * 3"))
	_, _ = s.Add("Depth", core.WithFormula("Height / 2"))

	nav := refs.NewNavigator(refs.NewResolver())

	height, _ := s.ByName("Height")
	for _, p := range nav.Dependencies(s, height) {
		fmt.Println("Height depends on:", p.Name())
	}
	for _, p := range nav.Dependents(s, height) {
		fmt.Println("depends on Height:", p.Name())
	}

	// Output:
	// Height depends on: Width
	// depends on Height: Depth
}
