package engine

// maxHistory bounds the undo history.
const maxHistory = 100

// replicatingDepth is the fixed depth of a replicating stack (X, Y, Z, T).
const replicatingDepth = 4

// stack is an RPN value stack. The last element is X. Popping an empty
// stack yields zero.
type stack struct {
	vals      []float64
	history   [][]float64
	replicate bool
}

func (s *stack) push(v float64) {
	s.vals = append(s.vals, v)
	if s.replicate && len(s.vals) > replicatingDepth {
		s.vals = s.vals[len(s.vals)-replicatingDepth:]
	}
}

func (s *stack) pop() float64 {
	n := len(s.vals)
	if n == 0 {
		return 0
	}
	v := s.vals[n-1]
	s.vals = s.vals[:n-1]
	if s.replicate && n == replicatingDepth {
		s.vals = append([]float64{s.vals[0]}, s.vals...)
	}
	return v
}

func (s *stack) peek() float64 {
	if len(s.vals) == 0 {
		return 0
	}
	return s.vals[len(s.vals)-1]
}

func (s *stack) depth() int { return len(s.vals) }

func (s *stack) snapshot() []float64 {
	return append([]float64(nil), s.vals...)
}

func (s *stack) restore(vals []float64) {
	s.vals = append(s.vals[:0], vals...)
}

// saveHistory records the current stack for undo.
func (s *stack) saveHistory() {
	s.history = append(s.history, s.snapshot())
	if len(s.history) > maxHistory {
		s.history = s.history[len(s.history)-maxHistory:]
	}
}

// undo restores the most recent history entry and reports whether there
// was one.
func (s *stack) undo() bool {
	n := len(s.history)
	if n == 0 {
		return false
	}
	s.restore(s.history[n-1])
	s.history = s.history[:n-1]
	return true
}

func (s *stack) swap() {
	x, y := s.pop(), s.pop()
	s.push(x)
	s.push(y)
}

// rollDown moves X to the bottom of the stack.
func (s *stack) rollDown() {
	if len(s.vals) < 2 {
		return
	}
	x := s.vals[len(s.vals)-1]
	copy(s.vals[1:], s.vals[:len(s.vals)-1])
	s.vals[0] = x
}

// rollUp moves the bottom of the stack to X.
func (s *stack) rollUp() {
	if len(s.vals) < 2 {
		return
	}
	b := s.vals[0]
	copy(s.vals, s.vals[1:])
	s.vals[len(s.vals)-1] = b
}

func (s *stack) clear() { s.vals = s.vals[:0] }

// setReplicating switches between an unbounded and a four-entry stack.
func (s *stack) setReplicating(on bool) {
	s.replicate = on
	if on && len(s.vals) > replicatingDepth {
		s.vals = s.vals[len(s.vals)-replicatingDepth:]
	}
}
