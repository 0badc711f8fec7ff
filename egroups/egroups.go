package egroups

import (
	"errors"

	"github.com/katalvlaran/grafix/adt"
	"github.com/katalvlaran/grafix/bigraph"
	"github.com/katalvlaran/grafix/listpair"
	"github.com/katalvlaran/grafix/listset"
)

// Sentinel errors for egroups operations.
var (
	// ErrEdgeRange indicates an unknown or unused edge id.
	ErrEdgeRange = errors.New("egroups: edge out of range")

	// ErrGroupRange indicates an unknown group id.
	ErrGroupRange = errors.New("egroups: group out of range")

	// ErrEdgeGrouped indicates the edge already belongs to a group.
	ErrEdgeGrouped = errors.New("egroups: edge already grouped")

	// ErrHubMismatch indicates the edge's input is not the group's hub.
	ErrHubMismatch = errors.New("egroups: edge input differs from group hub")

	// ErrOutputClash indicates the group already covers that output.
	ErrOutputClash = errors.New("egroups: output already present in group")

	// ErrParse indicates malformed FromString input.
	ErrParse = errors.New("egroups: malformed input")
)

// freeIDs and liveIDs name the two sides of the group-id list pair.
const (
	freeIDs = 1
	liveIDs = 2
)

// EdgeGroups partitions a bipartite graph's edges into hub-anchored groups.
type EdgeGroups struct {
	g  *bigraph.Graph
	ng int

	grp    []int // edge → group id, 0 when ungrouped (sized to MaxEdge)
	fanout []int // group → edge count
	hub    []int // group → hub input, 0 when the id is free

	groupIDs   *listpair.ListPair // free vs live group ids
	edgesOf    *listset.ListSet   // edge ids partitioned by group
	firstEdge  []int              // group → first edge of its list
	groupsAt   *listset.ListSet   // group ids partitioned by hub
	firstGroup []int              // input → first group at that input
	groupCount []int              // input → number of groups there
	numGroups  int
}

// New creates an empty grouping over g with room for ng group ids.
// Complexity: O(ng + MaxEdge).
func New(g *bigraph.Graph, ng int) *EdgeGroups {
	return &EdgeGroups{
		g:          g,
		ng:         ng,
		grp:        make([]int, g.MaxEdge()+1),
		fanout:     make([]int, ng+1),
		hub:        make([]int, ng+1),
		groupIDs:   listpair.New(ng),
		edgesOf:    listset.New(g.MaxEdge()),
		firstEdge:  make([]int, ng+1),
		groupsAt:   listset.New(ng),
		firstGroup: make([]int, g.Ni()+1),
		groupCount: make([]int, g.Ni()+1),
	}
}

// Graph returns the underlying bipartite graph (referenced, not owned).
func (eg *EdgeGroups) Graph() *bigraph.Graph { return eg.g }

// Ng returns the group-id capacity.
func (eg *EdgeGroups) Ng() int { return eg.ng }

// NumGroups returns the number of live groups.
func (eg *EdgeGroups) NumGroups() int { return eg.numGroups }

// ValidGroup reports whether grp is a live group id.
func (eg *EdgeGroups) ValidGroup(grp int) bool {
	return grp >= 1 && grp <= eg.ng && eg.hub[grp] != 0
}

// Group returns the group of edge e, or 0.
func (eg *EdgeGroups) Group(e int) int {
	if e < 1 || e >= len(eg.grp) {
		return 0
	}

	return eg.grp[e]
}

// Hub returns the hub input of group grp, or 0.
func (eg *EdgeGroups) Hub(grp int) int {
	if grp < 1 || grp > eg.ng {
		return 0
	}

	return eg.hub[grp]
}

// Fanout returns the number of edges in group grp.
func (eg *EdgeGroups) Fanout(grp int) int {
	if !eg.ValidGroup(grp) {
		return 0
	}

	return eg.fanout[grp]
}

// GroupCount returns the number of groups anchored at input u.
func (eg *EdgeGroups) GroupCount(u int) int {
	if !eg.g.IsInput(u) {
		return 0
	}

	return eg.groupCount[u]
}

// FirstGroupAt returns the first group at input u, or 0.
func (eg *EdgeGroups) FirstGroupAt(u int) int {
	if !eg.g.IsInput(u) {
		return 0
	}

	return eg.firstGroup[u]
}

// NextGroupAt returns the group after grp in u's group list, or 0.
func (eg *EdgeGroups) NextGroupAt(u, grp int) int {
	if eg.Hub(grp) != u {
		return 0
	}

	return eg.groupsAt.Next(grp)
}

// FirstEdge returns the first edge of group grp, or 0.
func (eg *EdgeGroups) FirstEdge(grp int) int {
	if !eg.ValidGroup(grp) {
		return 0
	}

	return eg.firstEdge[grp]
}

// NextEdge returns the edge after e in grp's edge list, or 0.
func (eg *EdgeGroups) NextEdge(grp, e int) int {
	if eg.Group(e) != grp {
		return 0
	}

	return eg.edgesOf.Next(e)
}

// FindEdge returns the edge of group grp with output v, or 0.
// Complexity: O(fanout(grp)).
func (eg *EdgeGroups) FindEdge(v, grp int) int {
	for e := eg.FirstEdge(grp); e != 0; e = eg.edgesOf.Next(e) {
		if eg.g.Output(e) == v {
			return e
		}
	}

	return 0
}

// ensureEdgeRoom grows the per-edge arrays after the graph expanded.
func (eg *EdgeGroups) ensureEdgeRoom() {
	if eg.g.MaxEdge() < len(eg.grp) {
		return
	}
	grp := make([]int, eg.g.MaxEdge()+1)
	copy(grp, eg.grp)
	eg.grp = grp
	eg.edgesOf.Expand(eg.g.MaxEdge())
}

// expandGroups grows the group-id capacity.
func (eg *EdgeGroups) expandGroups(ng int) {
	ng = adt.Grow(eg.ng, ng)
	fanout := make([]int, ng+1)
	hub := make([]int, ng+1)
	firstEdge := make([]int, ng+1)
	copy(fanout, eg.fanout)
	copy(hub, eg.hub)
	copy(firstEdge, eg.firstEdge)
	eg.fanout, eg.hub, eg.firstEdge = fanout, hub, firstEdge
	eg.groupIDs.Expand(ng) // new ids land on the free side
	eg.groupsAt.Expand(ng)
	eg.ng = ng
}

// Add puts edge e into a group and returns the group's id.
//
// With grp == 0 a free id is allocated and seeded with e; a named free id
// is revived the same way. Adding to a live group requires the edge's
// input to be the group's hub and its output to be new to the group.
// Complexity: O(1) plus the O(fanout) collision probe on live groups.
func (eg *EdgeGroups) Add(e, grp int) (int, error) {
	eg.ensureEdgeRoom()
	if !eg.g.ValidEdge(e) {
		return 0, ErrEdgeRange
	}
	if eg.grp[e] != 0 {
		return 0, ErrEdgeGrouped
	}
	if grp < 0 || grp > eg.ng {
		return 0, ErrGroupRange
	}

	u := eg.g.Input(e)
	if grp != 0 && eg.hub[grp] != 0 {
		// Live group: hub and output constraints are hard invariants.
		if eg.hub[grp] != u {
			return 0, ErrHubMismatch
		}
		if eg.FindEdge(eg.g.Output(e), grp) != 0 {
			return 0, ErrOutputClash
		}
		var err error
		if eg.firstEdge[grp], err = eg.edgesOf.Join(eg.firstEdge[grp], e); err != nil {
			return 0, err
		}
		eg.grp[e] = grp
		eg.fanout[grp]++

		return grp, nil
	}

	// Fresh group: allocate or revive the id and seed it with e.
	if grp == 0 {
		if eg.groupIDs.First(freeIDs) == 0 {
			eg.expandGroups(eg.ng + 1)
		}
		grp = eg.groupIDs.First(freeIDs)
	}
	if err := eg.groupIDs.Swap(grp, eg.groupIDs.Last(liveIDs)); err != nil {
		return 0, err
	}
	eg.hub[grp] = u
	eg.grp[e] = grp
	eg.fanout[grp] = 1
	eg.firstEdge[grp] = e

	var err error
	if eg.firstGroup[u], err = eg.groupsAt.Join(eg.firstGroup[u], grp); err != nil {
		return 0, err
	}
	eg.groupCount[u]++
	eg.numGroups++

	return grp, nil
}

// Delete removes edge e from its group; an emptied group's id returns to
// the free pool. Complexity: O(1).
func (eg *EdgeGroups) Delete(e int) error {
	if eg.Group(e) == 0 {
		return ErrEdgeRange
	}
	grp := eg.grp[e]

	var err error
	if eg.firstEdge[grp], err = eg.edgesOf.Delete(e, eg.firstEdge[grp]); err != nil {
		return err
	}
	eg.grp[e] = 0
	eg.fanout[grp]--
	if eg.fanout[grp] > 0 {
		return nil
	}

	// Group emptied: unhook it from its hub and free the id.
	u := eg.hub[grp]
	if eg.firstGroup[u], err = eg.groupsAt.Delete(grp, eg.firstGroup[u]); err != nil {
		return err
	}
	eg.hub[grp] = 0
	eg.firstEdge[grp] = 0
	eg.groupCount[u]--
	eg.numGroups--

	return eg.groupIDs.Swap(grp, 0) // head of the free list
}

// Merge folds group g2 into g1. Both must share a hub. An edge of g2 whose
// output is already covered by g1 is deleted from the underlying graph, so
// the merged group stays collision-free. Complexity:
// O(fanout(g1) + fanout(g2)).
func (eg *EdgeGroups) Merge(g1, g2 int) error {
	if !eg.ValidGroup(g1) || !eg.ValidGroup(g2) {
		return ErrGroupRange
	}
	if g1 == g2 {
		return nil
	}
	if eg.hub[g1] != eg.hub[g2] {
		return ErrHubMismatch
	}

	covered := make(map[int]bool, eg.fanout[g1])
	for e := eg.FirstEdge(g1); e != 0; e = eg.edgesOf.Next(e) {
		covered[eg.g.Output(e)] = true
	}

	// Collect first: Delete below may free g2 mid-walk.
	moving := make([]int, 0, eg.fanout[g2])
	for e := eg.FirstEdge(g2); e != 0; e = eg.edgesOf.Next(e) {
		moving = append(moving, e)
	}
	for _, e := range moving {
		v := eg.g.Output(e)
		if err := eg.Delete(e); err != nil {
			return err
		}
		if covered[v] {
			// Colliding edge leaves the graph entirely.
			if err := eg.g.DelEdge(e); err != nil {
				return err
			}

			continue
		}
		covered[v] = true
		var err error
		if eg.firstEdge[g1], err = eg.edgesOf.Join(eg.firstEdge[g1], e); err != nil {
			return err
		}
		eg.grp[e] = g1
		eg.fanout[g1]++
	}

	return nil
}

// SortGroups reorders input u's group list by decreasing fanout.
// Complexity: O(k log k) for k groups at u.
func (eg *EdgeGroups) SortGroups(u int) error {
	if !eg.g.IsInput(u) {
		return ErrGroupRange
	}
	if eg.firstGroup[u] == 0 {
		return nil
	}
	f, err := eg.groupsAt.SortList(eg.firstGroup[u], func(a, b int) bool {
		return eg.fanout[a] > eg.fanout[b]
	})
	if err != nil {
		return err
	}
	eg.firstGroup[u] = f

	return nil
}

// SortAllGroups applies SortGroups to every input.
func (eg *EdgeGroups) SortAllGroups() error {
	for u := 1; u <= eg.g.Ni(); u++ {
		if err := eg.SortGroups(u); err != nil {
			return err
		}
	}

	return nil
}

// Equals reports whether both structures group an equal graph the same
// way: per input, the same collection of output sets. Group and edge ids
// are allocation details and are ignored. Complexity: O(m log m).
func (eg *EdgeGroups) Equals(o *EdgeGroups) bool {
	if !eg.g.Equals(o.g) {
		return false
	}
	for u := 1; u <= eg.g.Ni(); u++ {
		if !sameGroupShapes(eg.groupShapes(u), o.groupShapes(u)) {
			return false
		}
	}

	return true
}
