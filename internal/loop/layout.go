package loop

// Layout limits, in terminal cells.
const (
	panelGap     = 1
	minFieldCols = 20
	minFieldRows = 14
)

// layout places the playfield canvas and the side panel in the terminal.
// The canvas keeps the field's aspect ratio; a cell is one sub-pixel wide and
// two tall, so a sub-pixel is close to square.
type layout struct {
	termWidth, termHeight int
	fieldCols, fieldRows  int // Canvas size in cells
	offsetCol, offsetRow  int // Cells before the canvas; the border sits in the last one
	panelCol              int // 1-based column of the panel
	ok                    bool
}

func computeLayout(termWidth, termHeight int) layout {
	l := layout{termWidth: termWidth, termHeight: termHeight}

	availCols := termWidth - 2 - panelGap - panelWidth
	availRows := termHeight - 2

	rows := availRows
	cols := int(float64(rows*2)*FieldWidth/FieldHeight + 0.5)
	if cols > availCols {
		cols = availCols
		rows = int(float64(cols)*FieldHeight/(2*FieldWidth) + 0.5)
	}
	if cols < minFieldCols || rows < minFieldRows {
		return l
	}

	total := cols + 2 + panelGap + panelWidth
	left := (termWidth - total) / 2
	top := (termHeight - (rows + 2)) / 2

	l.fieldCols = cols
	l.fieldRows = rows
	l.offsetCol = left + 1
	l.offsetRow = top + 1
	l.panelCol = l.offsetCol + cols + 2 + panelGap
	l.ok = true
	return l
}
