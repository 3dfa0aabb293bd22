package semantic

// label is one entry of the label side stack.
type label struct {
	name   string
	node   NodeID
	used   bool
	parent int // index of the enclosing label, -1 at the top
}

// labelStack tracks labelled statements independently of scopes and of
// function boundaries. Jump target validity is the checker's job.
type labelStack struct {
	entries []label
	current int
	unused  []NodeID
}

func newLabelStack() labelStack {
	return labelStack{current: -1}
}

func (s *labelStack) push(name string, node NodeID) {
	s.entries = append(s.entries, label{name: name, node: node, parent: s.current})
	s.current = len(s.entries) - 1
}

// pop closes the innermost label and records it when nothing targeted it.
func (s *labelStack) pop() {
	if s.current < 0 {
		return
	}
	l := s.entries[s.current]
	if !l.used {
		s.unused = append(s.unused, l.node)
	}
	s.current = l.parent
}

// mark flags the nearest visible label called name as used.
func (s *labelStack) mark(name string) bool {
	for i := s.current; i >= 0; i = s.entries[i].parent {
		if s.entries[i].name == name {
			s.entries[i].used = true
			return true
		}
	}
	return false
}
