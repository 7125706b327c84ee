package algorithm

import "github.com/amitbaghel07/SortingVisualizer/internal/domain/sequence"

// bubbleSort runs classic adjacent-pair passes. It steps before every
// comparison and again after any swap.
type bubbleSort struct{}

func (bubbleSort) ID() string   { return "bubble" }
func (bubbleSort) Name() string { return "Bubble Sort" }

func (bubbleSort) Sort(s *sequence.Store, st Stepper) error {
	n := s.Len()
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1-i; j++ {
			if err := st.Step(j, j+1); err != nil {
				return err
			}
			a, err := s.Read(j)
			if err != nil {
				return err
			}
			b, err := s.Read(j + 1)
			if err != nil {
				return err
			}
			if a > b {
				if err := s.Swap(j, j+1); err != nil {
					return err
				}
				if err := st.Step(j, j+1); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
