package mazepath

// pqItem is one entry of the A* open set: a cell and its f-score
// (g+h), plus the index container/heap needs to fix entries in place.
type pqItem struct {
	cell  Cell
	f     int
	index int
}

// cellQueue is a container/heap.Interface priority queue ordered by
// f-score. Ties are broken on (Row, Col) so that, for fixed input, the
// pop order is fully deterministic regardless of insertion order — the
// spec only requires *some* deterministic tie-break, not a specific one.
type cellQueue []*pqItem

func (q cellQueue) Len() int { return len(q) }

func (q cellQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	if q[i].cell.Row != q[j].cell.Row {
		return q[i].cell.Row < q[j].cell.Row
	}
	return q[i].cell.Col < q[j].cell.Col
}

func (q cellQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *cellQueue) Push(x any) {
	item := x.(*pqItem)
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *cellQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}
