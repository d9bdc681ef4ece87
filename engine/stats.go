package engine

import "fmt"

// Stats counts the work done by one search.
type Stats struct {
	Nodes       uint64
	LeafEvals   uint64
	BetaCutoffs uint64
}

func (st *Stats) reset() {
	*st = Stats{}
}

// Add accumulates o into st.
func (st *Stats) Add(o Stats) {
	st.Nodes += o.Nodes
	st.LeafEvals += o.LeafEvals
	st.BetaCutoffs += o.BetaCutoffs
}

// String renders the counters as a UCI info line.
func (st Stats) String() string {
	return fmt.Sprintf("info string nodes %d leaves %d beta cutoffs %d", st.Nodes, st.LeafEvals, st.BetaCutoffs)
}
