package rules

import "github.com/domino14/gobbler/state"

// winningLines are the 8 three-in-a-row patterns on the 3x3 board.
var winningLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// TerminalValue returns +1 if the game is over and won by the side to
// move, -1 if won by the opponent, and 0 otherwise. Only the top piece of
// each square counts toward a line.
//
// The side to move wins outright if any line of its pieces is showing,
// even when the opponent also has a line: the opponent's last move must
// have uncovered the mover's three-in-a-row, and an uncovered line beats
// the line just completed on top of it.
func TerminalValue(s state.State) int {
	value := 0
	for _, line := range winningLines {
		lineWinner := uint(0)
		for _, sq := range line {
			pieces := s.Square(sq)
			for pieces > 0x3 {
				pieces >>= 2
			}
			if pieces == 0 {
				lineWinner = 0
				break
			}
			if lineWinner == 0 {
				lineWinner = pieces
			} else if pieces != lineWinner {
				lineWinner = 0
				break
			}
		}
		if lineWinner == 1 {
			return 1
		} else if lineWinner == 2 {
			value = -1
		}
	}
	return value
}
