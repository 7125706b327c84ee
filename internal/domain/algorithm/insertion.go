package algorithm

import "github.com/amitbaghel07/SortingVisualizer/internal/domain/sequence"

// insertionSort shifts larger predecessors rightward. It steps once per
// shift and once when the key lands. Equal keys keep their relative order
// because only strictly larger predecessors shift.
type insertionSort struct{}

func (insertionSort) ID() string   { return "insertion" }
func (insertionSort) Name() string { return "Insertion Sort" }

func (insertionSort) Sort(s *sequence.Store, st Stepper) error {
	n := s.Len()
	for i := 1; i < n; i++ {
		key, err := s.Read(i)
		if err != nil {
			return err
		}
		j := i - 1
		for j >= 0 {
			vj, err := s.Read(j)
			if err != nil {
				return err
			}
			if vj <= key {
				break
			}
			if err := st.Step(j, j+1); err != nil {
				return err
			}
			if err := s.Write(j+1, vj); err != nil {
				return err
			}
			j--
			if err := st.Step(j+1, j+2); err != nil {
				return err
			}
		}
		if err := s.Write(j+1, key); err != nil {
			return err
		}
		if err := st.Step(j+1, i); err != nil {
			return err
		}
	}
	return nil
}
