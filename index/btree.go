package index

import (
	"github.com/google/btree"
)

const defaultDegree = 32

// item implement the btree.Item interface
type item struct {
	id  uint32
	pos int
}

func (it item) Less(than btree.Item) bool {
	return it.id < than.(item).id
}

// Build sorts ids into an Index, dropping duplicates. The first
// occurrence of an id wins. perm maps each index position back to the
// position the id held in the input, so callers can reorder data that
// travels with the ids.
func Build(ids []uint32) (ix *Index, perm []int, dropped int) {
	tree := btree.New(defaultDegree)
	for pos, id := range ids {
		if tree.Has(item{id: id}) {
			dropped++
			continue
		}
		tree.ReplaceOrInsert(item{id: id, pos: pos})
	}

	sorted := make([]uint32, 0, tree.Len())
	perm = make([]int, 0, tree.Len())
	tree.Ascend(func(i btree.Item) bool {
		it := i.(item)
		sorted = append(sorted, it.id)
		perm = append(perm, it.pos)
		return true
	})
	return &Index{ids: sorted}, perm, dropped
}
