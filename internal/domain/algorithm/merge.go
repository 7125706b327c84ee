package algorithm

import "github.com/amitbaghel07/SortingVisualizer/internal/domain/sequence"

// mergeSort divides recursively; only the merge phase touches the stepper,
// once per output element written. The drain loops at the end of a merge
// anchor their highlight on the merge's left boundary, which is cosmetic
// only.
type mergeSort struct{}

func (mergeSort) ID() string   { return "merge" }
func (mergeSort) Name() string { return "Merge Sort" }

func (m mergeSort) Sort(s *sequence.Store, st Stepper) error {
	return m.sort(s, st, 0, s.Len()-1)
}

func (m mergeSort) sort(s *sequence.Store, st Stepper, lo, hi int) error {
	if lo >= hi {
		return nil
	}
	mid := lo + (hi-lo)/2
	if err := m.sort(s, st, lo, mid); err != nil {
		return err
	}
	if err := m.sort(s, st, mid+1, hi); err != nil {
		return err
	}
	return m.merge(s, st, lo, mid, hi)
}

func (mergeSort) merge(s *sequence.Store, st Stepper, lo, mid, hi int) error {
	left, err := readRange(s, lo, mid)
	if err != nil {
		return err
	}
	right, err := readRange(s, mid+1, hi)
	if err != nil {
		return err
	}

	i, j, k := 0, 0, lo
	for i < len(left) && j < len(right) {
		if err := st.Step(k, lo+i); err != nil {
			return err
		}
		if left[i] <= right[j] {
			if err := s.Write(k, left[i]); err != nil {
				return err
			}
			i++
		} else {
			if err := s.Write(k, right[j]); err != nil {
				return err
			}
			j++
		}
		k++
	}
	for i < len(left) {
		if err := s.Write(k, left[i]); err != nil {
			return err
		}
		i++
		k++
		if err := st.Step(k-1, lo); err != nil {
			return err
		}
	}
	for j < len(right) {
		if err := s.Write(k, right[j]); err != nil {
			return err
		}
		j++
		k++
		if err := st.Step(k-1, lo); err != nil {
			return err
		}
	}
	return nil
}

// readRange copies s[lo..hi] (inclusive) element by element.
func readRange(s *sequence.Store, lo, hi int) ([]int, error) {
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		v, err := s.Read(i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
