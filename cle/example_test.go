package cle_test

import (
	"fmt"

	"github.com/latmech/dislo/cle"
)

// ExampleEdgeIsotropic evaluates the isotropic edge-dislocation field at a
// single point above the slip plane.
func ExampleEdgeIsotropic() {
	ux, uy, err := cle.EdgeIsotropic(
		[]float64{3}, // x relative to the core
		[]float64{4}, // y relative to the core
		1.0,          // Burgers magnitude
		0.3,          // Poisson ratio
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("ux=%.4f uy=%.4f\n", ux[0], uy[0])
	// Output:
	// ux=0.1570 uy=-0.0891
}
