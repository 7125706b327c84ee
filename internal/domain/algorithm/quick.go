package algorithm

import "github.com/amitbaghel07/SortingVisualizer/internal/domain/sequence"

// quickSort partitions Lomuto-style around the last element. The pivot rule
// is fixed, so already-sorted and reverse-sorted inputs hit the O(n^2) worst
// case; that is an accepted property of the visualization. It steps once per
// partition comparison, after each swap of an element into the low side, and
// after the pivot swap.
type quickSort struct{}

func (quickSort) ID() string   { return "quick" }
func (quickSort) Name() string { return "Quick Sort" }

func (q quickSort) Sort(s *sequence.Store, st Stepper) error {
	return q.sort(s, st, 0, s.Len()-1)
}

func (q quickSort) sort(s *sequence.Store, st Stepper, lo, hi int) error {
	if lo >= hi {
		return nil
	}
	p, err := q.partition(s, st, lo, hi)
	if err != nil {
		return err
	}
	if err := q.sort(s, st, lo, p-1); err != nil {
		return err
	}
	return q.sort(s, st, p+1, hi)
}

func (quickSort) partition(s *sequence.Store, st Stepper, lo, hi int) (int, error) {
	pivot, err := s.Read(hi)
	if err != nil {
		return 0, err
	}
	i := lo - 1
	for j := lo; j < hi; j++ {
		if err := st.Step(j, hi); err != nil {
			return 0, err
		}
		vj, err := s.Read(j)
		if err != nil {
			return 0, err
		}
		if vj <= pivot {
			i++
			if err := s.Swap(i, j); err != nil {
				return 0, err
			}
			if err := st.Step(i, j); err != nil {
				return 0, err
			}
		}
	}
	if err := s.Swap(i+1, hi); err != nil {
		return 0, err
	}
	if err := st.Step(i+1, hi); err != nil {
		return 0, err
	}
	return i + 1, nil
}
