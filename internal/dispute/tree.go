package dispute

import "sort"

type (
	// ClaimResult is the outcome of reading a single claim index.
	ClaimResult struct {
		Claim Claim
		Err   error
	}

	ClaimFailure struct {
		Index int
		Err   error
	}

	// ClaimTree is the ordered claim array of one game. Edges are not stored;
	// they are resolved on demand from each claim's parentIndex.
	ClaimTree struct {
		claims   []Claim
		present  []bool
		failures map[int]error
	}
)

// NewClaimTree assembles a tree from per-index results, where results[i]
// belongs to claim index i regardless of the order reads completed in.
func NewClaimTree(results []ClaimResult) *ClaimTree {
	t := &ClaimTree{
		claims:   make([]Claim, len(results)),
		present:  make([]bool, len(results)),
		failures: make(map[int]error),
	}

	for i, r := range results {
		if r.Err != nil {
			t.failures[i] = r.Err
			t.claims[i] = Claim{Index: i}
			continue
		}
		r.Claim.Index = i
		t.claims[i] = r.Claim
		t.present[i] = true
	}

	return t
}

// Len is the number of claim slots, including ones that failed to load.
func (t *ClaimTree) Len() int {
	return len(t.claims)
}

// Claims returns every decoded claim in index order.
func (t *ClaimTree) Claims() []Claim {
	out := make([]Claim, 0, len(t.claims))
	for i, c := range t.claims {
		if t.present[i] {
			out = append(out, c)
		}
	}
	return out
}

func (t *ClaimTree) Claim(index int) (Claim, bool) {
	if index < 0 || index >= len(t.claims) || !t.present[index] {
		return Claim{}, false
	}
	return t.claims[index], true
}

func (t *ClaimTree) Failures() []ClaimFailure {
	out := make([]ClaimFailure, 0, len(t.failures))
	for i, err := range t.failures {
		out = append(out, ClaimFailure{Index: i, Err: err})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Index < out[b].Index })
	return out
}

func (t *ClaimTree) Complete() bool {
	return len(t.failures) == 0
}

// Root returns the first claim carrying the root sentinel.
func (t *ClaimTree) Root() (Claim, bool) {
	for i, c := range t.claims {
		if t.present[i] && c.IsRoot() {
			return c, true
		}
	}
	return Claim{}, false
}

// Children returns the claims whose parentIndex is index, in index order.
func (t *ClaimTree) Children(index int) []Claim {
	var out []Claim
	for i, c := range t.claims {
		if !t.present[i] || c.IsRoot() {
			continue
		}
		if int64(c.ClaimData.ParentIndex) == int64(index) {
			out = append(out, c)
		}
	}
	return out
}

// Walk visits the tree depth first from the root. Claims unreachable from the
// root (orphans whose parent failed to load) are visited afterwards at depth 0.
func (t *ClaimTree) Walk(fn func(c Claim, depth int)) {
	visited := make([]bool, len(t.claims))

	var visit func(c Claim, depth int)
	visit = func(c Claim, depth int) {
		if visited[c.Index] {
			return
		}
		visited[c.Index] = true
		fn(c, depth)
		for _, child := range t.Children(c.Index) {
			visit(child, depth+1)
		}
	}

	if root, ok := t.Root(); ok {
		visit(root, 0)
	}
	for i, c := range t.claims {
		if t.present[i] && !visited[i] {
			visit(c, 0)
		}
	}
}
