package reorder

// FacesToEdges expands face perimeters into an edge list: one edge per
// consecutive vertex pair, closing each face back onto its first
// vertex. With unique set, undirected duplicates are dropped and the
// first-seen copy (lowest face, lowest position) survives, keeping the
// result deterministic.
func FacesToEdges(faces [][]int, unique bool) [][2]int {
	var edges [][2]int
	seen := make(map[[2]int]struct{})

	for _, face := range faces {
		if len(face) < 2 {
			continue
		}
		for i, a := range face {
			b := face[(i+1)%len(face)]
			if unique {
				key := [2]int{a, b}
				if b < a {
					key = [2]int{b, a}
				}
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
			}
			edges = append(edges, [2]int{a, b})
		}
	}
	return edges
}
