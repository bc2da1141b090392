package enumx

// nameIndex is a build-once chained hash table over member names with a
// tight-prime bucket count. It stores positions into the descriptor's
// sorted member array rather than copies, so the whole index is two int32
// slices. Built during construction, read-only afterwards.
type nameIndex struct {
	heads []int32 // 1-based node indexes, 0 means empty
	nodes []nameNode
}

type nameNode struct {
	pos  int32 // position in the sorted member array
	next int32
}

// buildNameIndex indexes members by exact name. When a name is declared
// more than once the member declared last wins, mirroring how redefinition
// shadows earlier bindings.
func buildNameIndex(members []member) nameIndex {
	if len(members) == 0 {
		return nameIndex{}
	}
	ni := nameIndex{
		heads: make([]int32, tightPrimeAtLeast(len(members))),
		nodes: make([]nameNode, 0, len(members)),
	}
	for i := range members {
		m := &members[i]
		b := hashName(m.name) % uintptr(len(ni.heads))
		j := ni.heads[b]
		for ; j != 0; j = ni.nodes[j-1].next {
			node := &ni.nodes[j-1]
			if members[node.pos].name == m.name {
				if m.decl > members[node.pos].decl {
					node.pos = int32(i)
				}
				break
			}
		}
		if j == 0 {
			ni.nodes = append(ni.nodes, nameNode{pos: int32(i), next: ni.heads[b]})
			ni.heads[b] = int32(len(ni.nodes))
		}
	}
	return ni
}

// lookup returns the sorted member position bound to name, or -1.
func (ni *nameIndex) lookup(members []member, name string) int {
	if len(ni.heads) == 0 {
		return -1
	}
	b := hashName(name) % uintptr(len(ni.heads))
	for j := ni.heads[b]; j != 0; j = ni.nodes[j-1].next {
		p := ni.nodes[j-1].pos
		if members[p].name == name {
			return int(p)
		}
	}
	return -1
}
