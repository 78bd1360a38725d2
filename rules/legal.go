package rules

import "github.com/domino14/gobbler/state"

// Legal reports whether the side to move may play m from s. Unlike
// LegalMoves it applies no symmetry dedup, so it accepts any playable
// move a user enters, including ones LegalMoves collapsed into a
// symmetric twin.
func (r Rules) Legal(s state.State, m state.Move) bool {
	if m.End < 0 || m.End >= state.NumSquares {
		return false
	}
	var size int
	if m.IsPlacement() {
		size = m.Size()
		if size < 1 || size > r.Sizes {
			return false
		}
		played := 0
		for sq := 0; sq < state.NumSquares; sq++ {
			if s.Square(sq)>>(2*(size-1))&0x3 == 1 {
				played++
			}
		}
		if played >= r.PerSize {
			return false
		}
	} else {
		if !r.AllowMove || m.Start >= state.NumSquares || m.Start == m.End {
			return false
		}
		owner, topSize := s.Top(m.Start)
		if owner != 1 {
			return false
		}
		size = topSize
	}
	return uint(1)<<(2*(size-1)) > s.Square(m.End)
}
