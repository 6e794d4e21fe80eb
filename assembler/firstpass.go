package assembler

// firstPass binds labels to addresses by simulating the size of each line
// in order. It stops — without error — at the first line whose size cannot
// be predicted, silently leaving all following labels unbound. This is
// almost certainly a latent bug rather than intended behavior; it is kept
// as documented, acknowledged behavior rather than silently fixed — see
// DESIGN.md.
func firstPass(lines []Line, s *State) {
	s.resetAddress()
	for _, line := range lines {
		if line.HasLabel() {
			s.defineSymbol(line.Label, s.getAddress())
		}

		size, ok := sizeofLine(line, s)
		if !ok {
			return
		}
		s.advance(size)
	}
}
