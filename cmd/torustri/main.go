// Command torustri triangulates a periodic 4-dimensional lattice from a
// declarative scenario file: it seeds the complex with ordered cube
// triangulations, expands them under the configured symmetry group, checks
// the resulting collections and exports them as JSON Δ-complexes.
package main

func main() {
	Execute()
}
