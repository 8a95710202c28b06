package game

// stubRand replays scripted draws so tests can pin every random decision.
type stubRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *stubRand) Float64() float64 {
	if s.fi >= len(s.floats) {
		return 0.5
	}
	v := s.floats[s.fi]
	s.fi++
	return v
}

func (s *stubRand) IntN(n int) int {
	if s.ii >= len(s.ints) {
		return 0
	}
	v := s.ints[s.ii]
	s.ii++
	return v % n
}
