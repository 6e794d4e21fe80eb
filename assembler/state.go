package assembler

// Address is a 20-bit unsigned magnitude held in a 32-bit slot. All address
// arithmetic is modular in 32 bits; displacement computations narrow a
// signed 32-bit subtraction down to the field width they target.
type Address uint32

// State holds the location counter and symbol table threaded through both
// passes of a single Assemble call. It is created fresh per call and never
// shared across calls: a small struct with mutable fields confined to one
// assembly.
type State struct {
	address Address
	symbols map[string]Address
}

// newState returns a State ready for pass one, address 0, empty table.
func newState() *State {
	return &State{symbols: make(map[string]Address)}
}

// getAddress returns the current location counter.
func (s *State) getAddress() Address {
	return s.address
}

// setAddress overwrites the location counter directly.
func (s *State) setAddress(a Address) {
	s.address = a
}

// resetAddress marks the pass boundary. It is semantically distinct from
// setAddress(0) even though it currently does the same thing — a later
// START origin directive would change resetAddress's target without
// touching every other setAddress call site.
func (s *State) resetAddress() {
	s.address = 0
}

// advance moves the location counter forward by a line's emitted size.
func (s *State) advance(by Address) {
	s.address += by
}

// lookupSymbol returns a symbol's bound address, or false if undefined.
func (s *State) lookupSymbol(name string) (Address, bool) {
	a, ok := s.symbols[name]
	return a, ok
}

// defineSymbol binds name to a, last write wins. Duplicate labels are not
// diagnosed here; a caller that wants to notice a second definition for the
// same name can compare lookupSymbol's result before calling this.
func (s *State) defineSymbol(name string, a Address) {
	s.symbols[name] = a
}
