// SPDX-License-Identifier: MIT
package cluster_test

import (
	"fmt"

	"github.com/katalvlaran/sbmlab/cluster"
)

func ExampleAdjustedRandIndex() {
	truth := []int{0, 0, 0, 1, 1, 1}
	found := []int{0, 0, 1, 1, 2, 2}
	ari, err := cluster.AdjustedRandIndex(truth, found)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.4f\n", ari)

	// Output:
	// 0.2424
}
