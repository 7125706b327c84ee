package algorithm

import "github.com/amitbaghel07/SortingVisualizer/internal/domain/sequence"

// selectionSort scans for the minimum per outer index. It steps once per
// comparison candidate and once after the swap, if any.
type selectionSort struct{}

func (selectionSort) ID() string   { return "selection" }
func (selectionSort) Name() string { return "Selection Sort" }

func (selectionSort) Sort(s *sequence.Store, st Stepper) error {
	n := s.Len()
	for i := 0; i < n-1; i++ {
		min := i
		for j := i + 1; j < n; j++ {
			if err := st.Step(min, j); err != nil {
				return err
			}
			vj, err := s.Read(j)
			if err != nil {
				return err
			}
			vmin, err := s.Read(min)
			if err != nil {
				return err
			}
			if vj < vmin {
				min = j
			}
		}
		if min != i {
			if err := s.Swap(min, i); err != nil {
				return err
			}
			if err := st.Step(min, i); err != nil {
				return err
			}
		}
	}
	return nil
}
