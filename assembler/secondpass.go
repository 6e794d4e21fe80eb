package assembler

// secondPass encodes every line in order, producing one byte vector per
// input line. It fails the whole assembly as soon as any line fails to
// encode.
func secondPass(lines []Line, s *State) ([][]byte, error) {
	s.resetAddress()
	out := make([][]byte, len(lines))
	for idx, line := range lines {
		bytes, err := encodeLine(line, s)
		if err != nil {
			return nil, err
		}
		out[idx] = bytes
	}
	return out, nil
}
