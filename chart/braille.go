package chart

// Braille pattern characters occupy U+2800 through U+28FF, with the
// low eight bits of the codepoint selecting which of the cell's eight
// dots are raised. Dot numbering within a cell follows the Unicode
// convention:
//
//	1 4
//	2 5
//	3 6
//	7 8
//
// with dot n mapped to bit n-1 of the mask.
const brailleBase = 0x2800

var (
	// leftColumnBits maps a sub-row counted from the top of a cell
	// (0..3) to the mask bit of the left dot column (dots 1,2,3,7).
	leftColumnBits = [4]uint8{1 << 0, 1 << 1, 1 << 2, 1 << 6}
	// rightColumnBits maps a sub-row counted from the top of a cell
	// (0..3) to the mask bit of the right dot column (dots 4,5,6,8).
	rightColumnBits = [4]uint8{1 << 3, 1 << 4, 1 << 5, 1 << 7}
)

// dotBit returns the mask bit for a dot at the provided cell half
// (0 = left, 1 = right) and sub-row counted from the bottom (0..3).
func dotBit(half int, dot int) uint8 {
	top := (dotsPerCellColumn - 1) - dot
	if half == 0 {
		return leftColumnBits[top]
	}

	return rightColumnBits[top]
}

// cellRune converts a dot mask to its braille pattern character. A
// zero mask yields the blank braille cell rather than a space so
// unpainted regions keep the grid rectangular.
func cellRune(mask uint8) rune {
	return rune(brailleBase + int(mask))
}

// cellMask recovers the dot mask of a braille pattern character.
func cellMask(r rune) uint8 {
	return uint8(r - brailleBase)
}
