package terminal

// 3x5 block digits for the scoreboard, one string per row.
var digitCells = map[rune][5]string{
	'0': {"###", "# #", "# #", "# #", "###"},
	'1': {" # ", "## ", " # ", " # ", "###"},
	'2': {"###", "  #", "###", "#  ", "###"},
	'3': {"###", "  #", "###", "  #", "###"},
	'4': {"# #", "# #", "###", "  #", "  #"},
	'5': {"###", "#  ", "###", "  #", "###"},
	'6': {"###", "#  ", "###", "# #", "###"},
	'7': {"###", "  #", "  #", "  #", "  #"},
	'8': {"###", "# #", "###", "# #", "###"},
	'9': {"###", "# #", "###", "  #", "###"},
}

const letterWidth = 3
const letterGap = 1

// getCellsFromChar returns the lit (col, row) offsets of a digit.
func getCellsFromChar(ch rune) [][2]int {
	rows, ok := digitCells[ch]
	if !ok {
		return nil
	}
	var cells [][2]int
	for r, line := range rows {
		for c, v := range line {
			if v == '#' {
				cells = append(cells, [2]int{c, r})
			}
		}
	}
	return cells
}
