package regexengine

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/boolmatrix"
)

// reachableStates returns the state indices reachable from dfa's start
// states via any labeled edge.
func reachableStates(dfa *automaton.Matrix) map[int]bool {
	visited := map[int]bool{}
	var stack []int
	for _, s := range dfa.Starts() {
		visited[s] = true
		stack = append(stack, s)
	}
	labels := dfa.Labels()
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, l := range labels {
			for _, t := range dfa.ByLabel(l).Row(s) {
				if !visited[t] {
					visited[t] = true
					stack = append(stack, t)
				}
			}
		}
	}

	return visited
}

// signature computes state i's refinement key: its finality plus, for
// every label in a fixed order, the current block of its (unique, DFA)
// target or "-1" if none.
func signature(dfa *automaton.Matrix, labels []automaton.Label, block map[int]int, i int) string {
	var b strings.Builder
	if dfa.IsFinal(i) {
		b.WriteByte('F')
	} else {
		b.WriteByte('N')
	}
	for _, l := range labels {
		b.WriteByte('|')
		targets := dfa.ByLabel(l).Row(i)
		if len(targets) == 0 {
			b.WriteString("-1")
			continue
		}
		b.WriteString(strconv.Itoa(block[targets[0]]))
	}

	return b.String()
}

// Minimize runs Moore-style partition refinement on a DFA-shaped
// automaton.Matrix: states are grouped by (finality, per-label target
// block) signature, repeated until the partition stops changing.
// Unreachable states are dropped first. Applying Minimize twice is
// idempotent: the second pass finds every
// signature already distinct and returns an isomorphic automaton.
func Minimize(dfa *automaton.Matrix) (*automaton.Matrix, error) {
	reach := reachableStates(dfa)
	labels := dfa.Labels()

	block := make(map[int]int, len(reach))
	for i := range reach {
		if dfa.IsFinal(i) {
			block[i] = 1
		} else {
			block[i] = 0
		}
	}

	for {
		sigs := make(map[int]string, len(reach))
		for i := range reach {
			sigs[i] = signature(dfa, labels, block, i)
		}
		newBlock, changed := regroup(reach, block, sigs)
		if !changed {
			break
		}
		block = newBlock
	}

	return buildFromBlocks(dfa, reach, labels, block)
}

// regroup assigns fresh, deterministically-ordered block ids to distinct
// signatures, and reports whether the partition differs from the old one.
func regroup(reach map[int]bool, oldBlock map[int]int, sigs map[int]string) (map[int]int, bool) {
	distinct := make(map[string]bool)
	for i := range reach {
		distinct[sigs[i]] = true
	}
	ordered := make([]string, 0, len(distinct))
	for s := range distinct {
		ordered = append(ordered, s)
	}
	sort.Strings(ordered)
	idOf := make(map[string]int, len(ordered))
	for idx, s := range ordered {
		idOf[s] = idx
	}

	newBlock := make(map[int]int, len(reach))
	changed := false
	for i := range reach {
		nb := idOf[sigs[i]]
		newBlock[i] = nb
		if oldBlock[i] != nb {
			changed = true
		}
	}
	// Even if per-state ids are unchanged, a refinement that increased the
	// number of distinct blocks overall must still be reported as changed.
	if !changed && len(ordered) != countDistinct(oldBlock, reach) {
		changed = true
	}

	return newBlock, changed
}

func countDistinct(block map[int]int, reach map[int]bool) int {
	seen := map[int]bool{}
	for i := range reach {
		seen[block[i]] = true
	}

	return len(seen)
}

// buildFromBlocks renders the stabilized partition into a fresh
// automaton.Matrix with one state per block.
func buildFromBlocks(dfa *automaton.Matrix, reach map[int]bool, labels []automaton.Label, block map[int]int) (*automaton.Matrix, error) {
	blockIDs := map[int]bool{}
	for i := range reach {
		blockIDs[block[i]] = true
	}
	sortedBlocks := make([]int, 0, len(blockIDs))
	for b := range blockIDs {
		sortedBlocks = append(sortedBlocks, b)
	}
	sort.Ints(sortedBlocks)

	index := automaton.NewStateIndex()
	idxOfBlock := make(map[int]int, len(sortedBlocks))
	for _, b := range sortedBlocks {
		idx := index.Add(automaton.NewState(b))
		idxOfBlock[b] = idx
	}

	// representative reachable state per block, for reading out transitions
	rep := make(map[int]int, len(sortedBlocks))
	for i := range reach {
		if _, ok := rep[block[i]]; !ok {
			rep[block[i]] = i
		}
	}

	var starts, finals []int
	for _, b := range sortedBlocks {
		i := rep[b]
		if dfa.IsFinal(i) {
			finals = append(finals, idxOfBlock[b])
		}
	}
	startBlocks := map[int]bool{}
	for _, s := range dfa.Starts() {
		if reach[s] {
			startBlocks[block[s]] = true
		}
	}
	for b := range startBlocks {
		starts = append(starts, idxOfBlock[b])
	}

	n := len(sortedBlocks)
	byLabel := make(map[automaton.Label]*boolmatrix.Matrix, len(labels))
	for _, l := range labels {
		mat, err := boolmatrix.New(n, n)
		if err != nil {
			return nil, err
		}
		for _, b := range sortedBlocks {
			i := rep[b]
			targets := dfa.ByLabel(l).Row(i)
			if len(targets) == 0 {
				continue
			}
			if err := mat.Set(idxOfBlock[b], idxOfBlock[block[targets[0]]]); err != nil {
				return nil, err
			}
		}
		byLabel[l] = mat
	}

	return automaton.FromParts(index, starts, finals, byLabel)
}
