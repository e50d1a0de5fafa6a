package parse

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// TableGrid is the reconstructed, column-and-row-normalized grid produced
// from an HTML <table>: unique row names, merged column names (including
// any still-padding "empty_col__N" columns), and the cell matrix indexed
// [row][col] in that order. SPEC_FULL.md §4.5.
type TableGrid struct {
	ColumnNames []string
	RowNames    []string
	Cells       [][]string
}

// TableMetadataInfo is the structured summary of a table's contents —
// column and row names only, suitable for embedding prompts or for a
// neighbor chunk's compact overlap (TableNode.MinText).
type TableMetadataInfo struct {
	TableID     string   `json:"table_id"`
	ColumnNames []string `json:"column_names"`
	RowNames    []string `json:"row_names"`
}

// TableLookup is the fast-lookup structure mapping (row name, column name)
// to the raw cell value. Row names are already unique.
type TableLookup struct {
	Data map[[2]string]string
}

// TableNode is the payload for NodeTable.
type TableNode struct {
	Grid          *TableGrid
	Caption       string
	TableMetadata TableMetadataInfo
	TableLookup   TableLookup
	Text          string
	MinText       string
}

// headerCellInfo records, per header cell, the disambiguation decision made
// in SPEC_FULL.md §4.5 Step B.
type headerCellInfo struct {
	baseName    string
	dupIndex    int
	isDuplicate bool
}

// buildTableNode reconstructs a TableNode from element, which must contain
// exactly one <table> (the caller guarantees this via extractTable).
func buildTableNode(element *html.Node) *TableNode {
	table := extractTable(element)

	caption := ""
	if table != nil {
		if capEl := findAll(table, "caption"); len(capEl) > 0 {
			caption = textContent(capEl[0])
		}
	}

	grid := parseHTMLTable(table)
	merged := mergeGridColumns(grid)

	// finalize is called by the caller once the node's StructuralNodeID is
	// known, since TableMetadata.TableID mirrors it.
	return &TableNode{
		Grid:    merged,
		Caption: caption,
	}
}

// finalize computes TableMetadata, TableLookup, Text, and MinText from the
// node's merged grid, using tableID as the TableMetadata.TableID.
func (n *TableNode) finalize(tableID string) {
	n.TableMetadata = tableMetadataFor(n.Grid, tableID)
	n.TableLookup = tableLookupFor(n.Grid)
	n.Text = n.generateText()
	n.MinText = n.generateMinText()
}

func (n *TableNode) generateText() string {
	var parts []string
	if n.Caption != "" {
		parts = append(parts, "Table Caption: "+n.Caption)
	}
	for _, row := range n.TableMetadata.RowNames {
		for _, col := range n.TableMetadata.ColumnNames {
			value, ok := n.TableLookup.Data[[2]string{row, col}]
			if !ok {
				continue
			}
			value = strings.ReplaceAll(value, "\n", " ")
			value = strings.ReplaceAll(value, "\r", " ")
			parts = append(parts, fmt.Sprintf("(%s, %s) -> %s", row, col, strings.TrimSpace(value)))
		}
	}
	return strings.Join(parts, "\n")
}

func (n *TableNode) generateMinText() string {
	b, err := json.Marshal(n.TableMetadata)
	if err != nil {
		return ""
	}
	return string(b)
}

// parseHTMLTable parses an HTML <table> into a TableGrid with unique,
// colspan-exploded column names and disambiguated row names. table may be
// nil (element had no <table> descendant), in which case an empty grid is
// returned. SPEC_FULL.md §4.5 Steps A-E.
func parseHTMLTable(table *html.Node) *TableGrid {
	if table == nil {
		return &TableGrid{}
	}

	rows := findAll(table, "tr")
	if len(rows) == 0 {
		return &TableGrid{}
	}

	headerIdx := 0
	found := false
	for i, row := range rows {
		if isHeaderRow(row) {
			headerIdx = i
			found = true
			break
		}
	}
	_ = found // absence keeps headerIdx at 0, matching the Python fallback

	headerCells := findAll(rows[headerIdx], "td", "th")
	headerInfo := buildHeaderCellInfo(headerCells)

	// grid is built with one entry per row in rows, in the same order,
	// including rows that expand to nothing — this keeps grid[i] aligned
	// with rows[i] for the row-building pass below.
	grid := make([][]string, len(rows))
	for i, row := range rows {
		if i == headerIdx {
			grid[i] = expandRow(row, true, headerInfo)
		} else {
			grid[i] = expandRow(row, false, nil)
		}
	}
	if len(grid[headerIdx]) == 0 {
		return &TableGrid{}
	}
	columnNames := grid[headerIdx]

	var dataRows [][]string
	var rowNames []string
	for i, rowTag := range rows {
		if i == headerIdx {
			continue
		}
		cells := findAll(rowTag, "td", "th")
		if len(cells) == 0 {
			continue
		}
		rowData := append([]string(nil), grid[i]...)

		if isAllEmpty(rowData) {
			continue
		}

		firstCellColspan := parseColspan(cells[0])
		baseRowName := strings.TrimSpace(rowData[0])
		if baseRowName == "" {
			baseRowName = fmt.Sprintf("Row_%d", i)
		}
		rowName := fmt.Sprintf("%s (%d)", baseRowName, i)
		rowNames = append(rowNames, rowName)

		for j := 0; j < firstCellColspan && j < len(rowData); j++ {
			rowData[j] = ""
		}
		dataRows = append(dataRows, rowData)
	}

	if len(dataRows) == 0 {
		return &TableGrid{}
	}

	numCols := len(columnNames)
	normalized := make([][]string, len(dataRows))
	for i, row := range dataRows {
		normalized[i] = normalizeWidth(row, numCols)
	}

	return &TableGrid{
		ColumnNames: columnNames,
		RowNames:    rowNames,
		Cells:       normalized,
	}
}

// isAllEmpty reports whether every cell in row is blank after trimming.
func isAllEmpty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// normalizeWidth pads row with empty strings or truncates it to exactly n
// columns. SPEC_FULL.md §4.5 Step E.
func normalizeWidth(row []string, n int) []string {
	if len(row) == n {
		return row
	}
	if len(row) < n {
		out := make([]string, n)
		copy(out, row)
		return out
	}
	return row[:n]
}

// parseColspan returns cell's colspan attribute, defaulting to 1 on absence
// or malformed values.
func parseColspan(cell *html.Node) int {
	v, ok := attr(cell, "colspan")
	if !ok {
		return 1
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// buildHeaderCellInfo performs SPEC_FULL.md §4.5 Step B: two passes over
// the header row's cells to decide, per cell, whether it is a unique name,
// a duplicate name (assigned a running per-name index), or an empty column
// (assigned a group index that increments on each transition into a run of
// empty cells).
func buildHeaderCellInfo(headerCells []*html.Node) []headerCellInfo {
	totalCounts := map[string]int{}
	texts := make([]string, len(headerCells))
	for i, cell := range headerCells {
		t := collapseWhitespace(strings.ReplaceAll(textContent(cell), " ", " "))
		texts[i] = t
		if t != "" {
			totalCounts[t]++
		}
	}

	info := make([]headerCellInfo, len(headerCells))
	runningCounts := map[string]int{}
	seen := map[string]bool{}
	emptyGroupIndex := -1
	prevWasEmpty := false

	for i, t := range texts {
		if t != "" {
			isDup := totalCounts[t] > 1
			dupIdx := 0
			if isDup {
				if !seen[t] {
					seen[t] = true
					runningCounts[t] = 0
				} else {
					runningCounts[t]++
				}
				dupIdx = runningCounts[t]
			}
			info[i] = headerCellInfo{baseName: t, dupIndex: dupIdx, isDuplicate: isDup}
			prevWasEmpty = false
		} else {
			if !prevWasEmpty {
				emptyGroupIndex++
			}
			info[i] = headerCellInfo{baseName: "empty_col", dupIndex: emptyGroupIndex, isDuplicate: true}
			prevWasEmpty = true
		}
	}
	return info
}

// expandRow expands row's cells according to their colspan, producing the
// grid positions for that row. For header rows, each colspan position gets
// a name derived from headerInfo; for data rows, the cell's text occupies
// only the first position of its colspan run, the rest left empty.
// SPEC_FULL.md §4.5 Step C.
func expandRow(row *html.Node, isHeader bool, headerInfo []headerCellInfo) []string {
	cells := findAll(row, "td", "th")
	var expanded []string
	cellIndex := 0

	for _, cell := range cells {
		colspan := parseColspan(cell)
		text := collapseWhitespace(strings.ReplaceAll(textContent(cell), " ", " "))

		if isHeader && headerInfo != nil && cellIndex < len(headerInfo) {
			info := headerInfo[cellIndex]
			for i := 0; i < colspan; i++ {
				if info.isDuplicate {
					expanded = append(expanded, fmt.Sprintf("%s__%d__%d", info.baseName, info.dupIndex, i))
				} else {
					expanded = append(expanded, fmt.Sprintf("%s__%d", info.baseName, i))
				}
			}
			cellIndex++
		} else if isHeader {
			if text != "" {
				for i := 0; i < colspan; i++ {
					expanded = append(expanded, fmt.Sprintf("%s__%d", text, i))
				}
			} else {
				for i := 0; i < colspan; i++ {
					expanded = append(expanded, fmt.Sprintf("Column__%d", len(expanded)))
				}
			}
			cellIndex++
		} else {
			expanded = append(expanded, text)
			for i := 1; i < colspan; i++ {
				expanded = append(expanded, "")
			}
		}
	}
	return expanded
}

// mergeKey extracts the merge key from an exploded column name, per
// SPEC_FULL.md §4.5 Step F.
func mergeKey(col string) string {
	parts := strings.Split(col, "__")
	switch {
	case len(parts) >= 3:
		return strings.Join(parts[:len(parts)-1], "__")
	case len(parts) == 2:
		return parts[0]
	default:
		return col
	}
}

// mergeGridColumns collapses consecutive columns sharing the same merge
// key into a single column, concatenating their non-empty values with no
// separator. SPEC_FULL.md §4.5 Step F.
func mergeGridColumns(grid *TableGrid) *TableGrid {
	if grid == nil || len(grid.ColumnNames) == 0 {
		return grid
	}

	type group struct {
		key  string
		cols []int
	}
	var groups []group
	i := 0
	for i < len(grid.ColumnNames) {
		key := mergeKey(grid.ColumnNames[i])
		cols := []int{i}
		j := i + 1
		for j < len(grid.ColumnNames) && mergeKey(grid.ColumnNames[j]) == key {
			cols = append(cols, j)
			j++
		}
		groups = append(groups, group{key: key, cols: cols})
		i = j
	}

	mergedColumns := make([]string, len(groups))
	mergedCells := make([][]string, len(grid.Cells))
	for r := range grid.Cells {
		mergedCells[r] = make([]string, len(groups))
	}

	for gi, g := range groups {
		mergedColumns[gi] = g.key
		if len(g.cols) == 1 {
			col := g.cols[0]
			for r, row := range grid.Cells {
				if col < len(row) {
					mergedCells[r][gi] = row[col]
				}
			}
			continue
		}
		for r, row := range grid.Cells {
			var nonEmpty []string
			for _, col := range g.cols {
				if col >= len(row) {
					continue
				}
				v := strings.TrimSpace(row[col])
				if v != "" {
					nonEmpty = append(nonEmpty, v)
				}
			}
			mergedCells[r][gi] = strings.Join(nonEmpty, "")
		}
	}

	return &TableGrid{
		ColumnNames: mergedColumns,
		RowNames:    grid.RowNames,
		Cells:       mergedCells,
	}
}

// tableMetadataFor builds the TableMetadata, filtering out empty_col
// columns. SPEC_FULL.md §4.5 Step G.
func tableMetadataFor(grid *TableGrid, tableID string) TableMetadataInfo {
	var columns []string
	for _, c := range grid.ColumnNames {
		if !strings.HasPrefix(c, "empty_col") {
			columns = append(columns, c)
		}
	}
	return TableMetadataInfo{
		TableID:     tableID,
		ColumnNames: columns,
		RowNames:    append([]string(nil), grid.RowNames...),
	}
}

// tableLookupFor builds the (row, col) -> value lookup, skipping empty_col
// columns and blank values. SPEC_FULL.md §4.5 Step G.
func tableLookupFor(grid *TableGrid) TableLookup {
	data := map[[2]string]string{}
	for ri, rowName := range grid.RowNames {
		if ri >= len(grid.Cells) {
			continue
		}
		row := grid.Cells[ri]
		for ci, colName := range grid.ColumnNames {
			if strings.HasPrefix(colName, "empty_col") {
				continue
			}
			if ci >= len(row) {
				continue
			}
			value := row[ci]
			if strings.TrimSpace(value) == "" {
				continue
			}
			data[[2]string{rowName, colName}] = value
		}
	}
	return TableLookup{Data: data}
}
