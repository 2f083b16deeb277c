package nodelink_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/suffixlens/pkg/layout"
	"github.com/matzehuels/suffixlens/pkg/render/nodelink"
	"github.com/matzehuels/suffixlens/pkg/trie"
)

func ExampleToDOT() {
	g := layout.Build(trie.BuildCompressed("ab"))
	dot := nodelink.ToDOT(g, nodelink.Options{HideGuides: true})

	for _, line := range strings.Split(dot, "\n") {
		if strings.Contains(line, "->") {
			fmt.Println(strings.TrimSpace(line))
		}
	}
	// Output:
	// "n0" -> "n1" [id="e0", label="ab"]
	// "n0" -> "n2" [id="e1", label="b"]
}
