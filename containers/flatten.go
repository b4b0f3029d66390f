package containers

// IsDegenerateSplit reports whether n is a split container with
// exactly one tiling child, the condition under which spec §4.1
// requires it to be flattened. The mutation itself (promoting the
// child, inheriting the split's size-percent) is performed by
// package commands' FlattenSplitContainer, since it must also
// preserve the sum invariant.
func IsDegenerateSplit(t *Tree, n Node) (*Split, Node, bool) {
	split, ok := n.(*Split)
	if !ok {
		return nil, nil, false
	}
	var tilingChildren []Node
	for _, childID := range split.Children() {
		child, ok := t.Get(childID)
		if !ok {
			continue
		}
		if AsTiling(child) != nil {
			tilingChildren = append(tilingChildren, child)
		}
	}
	if len(tilingChildren) != 1 {
		return nil, nil, false
	}
	return split, tilingChildren[0], true
}
