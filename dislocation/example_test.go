package dislocation_test

import (
	"fmt"

	"github.com/latmech/dislo/dislocation"
)

// ExampleAssembleEdgeCluster builds the standard isotropic copper predictor.
func ExampleAssembleEdgeCluster() {
	cluster, err := dislocation.AssembleEdgeCluster("Cu", 3.0, dislocation.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("a=%.3f pbc=%v\n", cluster.LatticeConstant, cluster.Config.PBC())
	// Output:
	// a=3.615 pbc=[false false true]
}
