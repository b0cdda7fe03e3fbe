// File: amg/example_test.go
package amg_test

import (
	"fmt"

	"github.com/katalvlaran/multigrid/amg"
	"github.com/katalvlaran/multigrid/gridlap"
)

// ExampleSolver demonstrates the full Compute/Solve flow on a grid Laplacian.
// Scenario:
//
//   - 20×20 grid Laplacian (400 unknowns), exact solution u(x,y) = x²+y²
//   - MaxDirectSize 50 forces a real multilevel hierarchy
//   - the V-cycle count stays in the single digits
//
// Complexity: O(nnz) setup and per cycle, Memory: O(nnz)
func ExampleSolver() {
	grid, _ := gridlap.New(20, 20, 0.1)

	trueSol := make([]float64, grid.Size())
	for i := 0; i < 20; i++ {
		for j := 0; j < 20; j++ {
			x, y := 0.1*float64(i), 0.1*float64(j)
			trueSol[grid.Index(i, j)] = x*x + y*y
		}
	}
	rhs := make([]float64, grid.Size())
	grid.Mat().MulVec(rhs, trueSol)

	solver := amg.New(amg.WithMaxDirectSize(50))
	if err := solver.Compute(grid.Mat()); err != nil {
		fmt.Println("compute failed:", err)
		return
	}
	sol, err := solver.Solve(rhs)
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	maxErr := 0.0
	for i := range sol {
		if d := sol[i] - trueSol[i]; d > maxErr {
			maxErr = d
		} else if -d > maxErr {
			maxErr = -d
		}
	}
	fmt.Println("converged within budget:", solver.Iterations() < 30)
	fmt.Println("solution accurate:", maxErr < 1e-6)

	// Output:
	// converged within budget: true
	// solution accurate: true
}
