package dag_test

import (
	"fmt"

	"github.com/elandric/dagrove/dag"
)

// ExampleGraph_TraverseBFS builds the small shape 1 → {5,3,7}, 5 → {2,9}
// and prints its level-order view.
func ExampleGraph_TraverseBFS() {
	g := dag.NewRooted(1)
	g.Insert(1, 5)
	g.Insert(1, 3)
	g.Insert(1, 7)
	g.Insert(5, 2)
	g.Insert(5, 9)

	for v, kids := range g.TraverseBFS() {
		fmt.Println(v, kids)
	}
	// Output:
	// 1 [5 3 7]
	// 5 [2 9]
	// 3 []
	// 7 []
	// 2 []
	// 9 []
}

// ExampleGraph_TraverseDFS shows the depth-order view of the same shape:
// the last child pushed is explored first.
func ExampleGraph_TraverseDFS() {
	g := dag.NewWithChildren(1, []int{5, 3, 7})
	g.Insert(5, 2)
	g.Insert(5, 9)

	var order []int
	for v := range g.TraverseDFS() {
		order = append(order, v)
	}
	fmt.Println(order)
	// Output:
	// [1 7 3 5 9 2]
}

// ExampleGraph_Delete demonstrates the deletion-safety rule: a node kept by
// two parents survives, a node on its last edge goes.
func ExampleGraph_Delete() {
	g := dag.NewRooted(1)
	g.Insert(1, 5)
	g.Insert(1, 3)
	g.Insert(5, 2)
	g.Insert(1, 2) // 2 now hangs under 5 and under 1

	g.Delete(2) // two incoming edges: silent no-op
	fmt.Println("after Delete(2):", g.NodeCount(), "nodes")

	g.Delete(3) // single incoming edge: removed
	fmt.Println("after Delete(3):", g.NodeCount(), "nodes")
	// Output:
	// after Delete(2): 4 nodes
	// after Delete(3): 3 nodes
}

// ExampleGraph_Reparent moves one child edge between parents.
func ExampleGraph_Reparent() {
	g := dag.NewWithChildren("dev", []string{"api", "etl"})
	g.Insert("api", "cache")

	g.Reparent("api", "etl", "cache")

	fmt.Print(g)
	// Output:
	// dev(api, etl)
	// api()
	// etl(cache)
	// cache()
}
