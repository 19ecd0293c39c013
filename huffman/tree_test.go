package huffman

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPriorityList_Insert(t *testing.T) {
	tr := &tree{}
	pl := priorityList{t: tr}
	for _, sym := range []Symbol{{'a', 5}, {'b', 2}, {'r', 2}, {'c', 1}, {'d', 1}} {
		pl.Insert(tr.addLeaf(sym))
	}

	var actual []rune
	for pl.Len() != 0 {
		actual = append(actual, tr.node(pl.PopFront()).char)
	}

	// Equal weights: the later insertion goes in front.
	expect := []rune{'d', 'c', 'r', 'b', 'a'}
	if diff := cmp.Diff(expect, actual); diff != "" {
		t.Errorf("wrong order (-expect +actual):\n%s", diff)
	}
}

func TestBuildTree_Weights(t *testing.T) {
	tr, err := buildTree(makeTestSymbols())
	if err != nil {
		t.Fatalf("buildTree failed: %v", err)
	}

	if len(tr.nodes) != 2*6-1 {
		t.Errorf("expected %d nodes, got %d", 2*6-1, len(tr.nodes))
	}

	var internal int
	for i := range tr.nodes {
		n := &tr.nodes[i]
		if n.isLeaf() {
			if n.right != noNode {
				t.Errorf("leaf %q has a right child", n.char)
			}
			continue
		}
		internal++
		if n.right == noNode {
			t.Errorf("internal node %d has only one child", i)
			continue
		}
		if sum := tr.node(n.left).weight + tr.node(n.right).weight; sum != n.weight {
			t.Errorf("internal node %d: weight %d != %d", i, n.weight, sum)
		}
	}
	if internal != 5 {
		t.Errorf("expected 5 merges, got %d", internal)
	}
	if w := tr.node(tr.root).weight; w != 100 {
		t.Errorf("expected root weight 100, got %d", w)
	}
}

func TestTree_Walk(t *testing.T) {
	tr, err := buildTree(Analyze("abracadabra"))
	if err != nil {
		t.Fatalf("buildTree failed: %v", err)
	}

	var visits []string
	tr.walk(func(n *node, path []byte) {
		if n.isLeaf() {
			visits = append(visits, string(n.char)+"="+string(path))
		} else {
			visits = append(visits, "*="+string(path))
		}
	})

	expect := []string{"*=", "a=0", "*=1", "b=10", "*=11", "*=110", "d=1100", "c=1101", "r=111"}
	if diff := cmp.Diff(expect, visits); diff != "" {
		t.Errorf("wrong pre-order walk (-expect +actual):\n%s", diff)
	}
}
