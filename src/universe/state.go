package universe

// State guards the Life while the next generation is being calculated outside
// the cells settled during the calculation are kept in births and are merged with the result
type State struct {
	life    Life
	births  map[Cell]struct{}
	ticking bool
}

// NewState creates the State with the given life
func NewState(life Life) *State {
	return &State{life: life, births: map[Cell]struct{}{}}
}

// Ticking reports whether a calculation is in flight
func (s *State) Ticking() bool {
	return s.ticking
}

// Len returns the count of cells including the staged ones
func (s *State) Len() int {
	return s.life.Len() + len(s.births)
}

// Contains reports whether the cell is alive or staged
func (s *State) Contains(c Cell) bool {
	if s.life.Contains(c) {
		return true
	}
	_, ok := s.births[c]
	return ok
}

// Each walks the alive cells and then the staged ones
func (s *State) Each(cb func(c Cell)) {
	s.life.Each(cb)
	for c := range s.births {
		cb(c)
	}
}

// Populate settles the cell
// while ticking the cell is staged and appears in the life after Merge
func (s *State) Populate(c Cell) {
	if s.ticking {
		if s.births == nil {
			s.births = map[Cell]struct{}{}
		}
		s.births[c] = struct{}{}
		return
	}
	s.life.Populate(c)
}

// Unpopulate kills the cell
// while ticking only a staged cell can be removed, the cells which were alive before the tick stay untouched
func (s *State) Unpopulate(c Cell) {
	if s.ticking {
		delete(s.births, c)
		return
	}
	s.life.Unpopulate(c)
}

// BeginTick marks the state as ticking and returns the func which calculates amount generations
// on a private copy of the life. ok is false if the state is already ticking
func (s *State) BeginTick(amount int) (tick func() Life, ok bool) {
	if s.ticking {
		return nil, false
	}
	s.ticking = true
	life := s.life.Clone()
	return func() Life {
		for i := 0; i < amount; i++ {
			life.Tick()
		}
		return life
	}, true
}

// Merge replaces the life with the calculated one and settles the staged cells
func (s *State) Merge(life Life) {
	for c := range s.births {
		life.Populate(c)
		delete(s.births, c)
	}
	s.life = life
	s.ticking = false
}
