package graph_test

import (
	"fmt"

	"github.com/matzehuels/suffixlens/pkg/graph"
	"github.com/matzehuels/suffixlens/pkg/layout"
	"github.com/matzehuels/suffixlens/pkg/trie"
)

func ExampleGraph_Occurrences() {
	g := layout.Build(trie.BuildCompressed("banana"))

	for _, s := range []string{"a", "an", "ana", "nab"} {
		fmt.Printf("%s: %d\n", s, g.Occurrences(s))
	}
	// Output:
	// a: 3
	// an: 2
	// ana: 2
	// nab: 0
}

func ExampleGraph_Leaves() {
	g := layout.Build(trie.BuildCompressed("abab"))

	for _, n := range g.Leaves() {
		fmt.Printf("%s %q x=%.0f\n", n.ID, n.PathLabel, n.X)
	}
	// Output:
	// n2 "abab" x=0
	// n4 "bab" x=140
}

func ExampleEdge_Describe() {
	e := graph.Edge{Label: "na", Length: 2, ParentPath: "a", FullPath: "ana"}
	fmt.Println(e.Describe())
	// Output:
	// String: ana
	// Length: 2
}
