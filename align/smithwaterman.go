package align

// SmithWaterman is a dynamic-programming local aligner with affine gap
// costs (Gotoh's three-state recurrence).  Memory is O(len(a)*len(b)), which
// is fine for the few-hundred-base windows homology scoring feeds it.
type SmithWaterman struct{}

var _ Aligner = SmithWaterman{}

// dpState is one row-major DP layer, in the style of a flattened edit
// distance matrix.
type dpState struct {
	nCol int
	data []int
}

func newDPState(nRow, nCol int, fill int) dpState {
	s := dpState{nCol: nCol, data: make([]int, nRow*nCol)}
	if fill != 0 {
		for i := range s.data {
			s.data[i] = fill
		}
	}
	return s
}

func (s dpState) at(i, j int) int { return s.data[i*s.nCol+j] }
func (s dpState) set(i, j, v int) { s.data[i*s.nCol+j] = v }

// Local implements Aligner.
func (SmithWaterman) Local(a, b string, p Params) Result {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return Result{}
	}
	// negInf is low enough never to win a max and high enough not to
	// underflow when a gap cost is subtracted from it.
	const negInf = -(1 << 60)

	// h is the best score of an alignment ending at (i, j); e requires the
	// alignment to end with a gap in a (consuming b), f with a gap in b
	// (consuming a).
	h := newDPState(n+1, m+1, 0)
	e := newDPState(n+1, m+1, negInf)
	f := newDPState(n+1, m+1, negInf)

	best, bestI, bestJ := 0, 0, 0
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			ev := e.at(i, j-1) - p.GapExtend
			if open := h.at(i, j-1) - p.GapOpen - p.GapExtend; open > ev {
				ev = open
			}
			e.set(i, j, ev)

			fv := f.at(i-1, j) - p.GapExtend
			if open := h.at(i-1, j) - p.GapOpen - p.GapExtend; open > fv {
				fv = open
			}
			f.set(i, j, fv)

			sub := p.Mismatch
			if a[i-1] == b[j-1] {
				sub = p.Match
			}
			hv := h.at(i-1, j-1) + sub
			if ev > hv {
				hv = ev
			}
			if fv > hv {
				hv = fv
			}
			if hv < 0 {
				hv = 0
			}
			h.set(i, j, hv)
			if hv > best {
				best, bestI, bestJ = hv, i, j
			}
		}
	}
	if best == 0 {
		return Result{}
	}

	// Traceback from the best cell, switching between the three states.
	res := Result{Score: best}
	i, j := bestI, bestJ
	const (
		stateH = iota
		stateE
		stateF
	)
	state := stateH
	for i > 0 && j > 0 {
		switch state {
		case stateH:
			hv := h.at(i, j)
			if hv == 0 {
				return res
			}
			sub := p.Mismatch
			if a[i-1] == b[j-1] {
				sub = p.Match
			}
			switch {
			case hv == h.at(i-1, j-1)+sub:
				res.Length++
				i--
				j--
			case hv == e.at(i, j):
				state = stateE
			default:
				state = stateF
			}
		case stateE:
			// Gap in a: consume one base of b.
			res.Length++
			res.Insertions++
			if e.at(i, j) == h.at(i, j-1)-p.GapOpen-p.GapExtend {
				state = stateH
			}
			j--
		case stateF:
			// Gap in b: consume one base of a.
			res.Length++
			res.Deletions++
			if f.at(i, j) == h.at(i-1, j)-p.GapOpen-p.GapExtend {
				state = stateH
			}
			i--
		}
	}
	return res
}
