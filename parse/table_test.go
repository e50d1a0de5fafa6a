package parse

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func parseTableElement(t *testing.T, tableHTML string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader("<html><body>" + tableHTML + "</body></html>"))
	if err != nil {
		t.Fatalf("parsing table html: %v", err)
	}
	tables := findAll(doc, "table")
	if len(tables) == 0 {
		t.Fatalf("no table found")
	}
	return tables[0]
}

func TestParseHTMLTableBasic(t *testing.T) {
	table := parseTableElement(t, `
		<table>
			<tr><th>Year</th><th>Revenue</th><th>Profit</th></tr>
			<tr><td>2023</td><td>100</td><td>20</td></tr>
			<tr><td>2022</td><td>90</td><td>15</td></tr>
		</table>
	`)

	grid := parseHTMLTable(table)
	if len(grid.RowNames) != 2 {
		t.Fatalf("got %d row names, want 2", len(grid.RowNames))
	}
	if len(grid.ColumnNames) != 3 {
		t.Fatalf("got %d column names, want 3", len(grid.ColumnNames))
	}
}

func TestParseHTMLTableColspanExpansion(t *testing.T) {
	table := parseTableElement(t, `
		<table>
			<tr><th colspan="2">Year</th><th>Revenue</th></tr>
			<tr><td>FY</td><td>2023</td><td>100</td></tr>
		</table>
	`)

	grid := parseHTMLTable(table)
	if len(grid.ColumnNames) != 3 {
		t.Fatalf("got %d column names after colspan expansion, want 3", len(grid.ColumnNames))
	}
}

func TestMergeGridColumnsMergesConsecutiveDuplicates(t *testing.T) {
	grid := &TableGrid{
		ColumnNames: []string{"Year__0", "Year__1", "Revenue__0"},
		RowNames:    []string{"Row (1)"},
		Cells:       [][]string{{"20", "23", "100"}},
	}

	merged := mergeGridColumns(grid)
	if len(merged.ColumnNames) != 2 {
		t.Fatalf("got %d merged columns, want 2", len(merged.ColumnNames))
	}
	if merged.ColumnNames[0] != "Year" {
		t.Errorf("got merged column name %q, want %q", merged.ColumnNames[0], "Year")
	}
	if merged.Cells[0][0] != "2023" {
		t.Errorf("got merged cell %q, want %q", merged.Cells[0][0], "2023")
	}
}

func TestMergeKey(t *testing.T) {
	tests := []struct {
		col  string
		want string
	}{
		{"empty_col__0__0", "empty_col__0"},
		{"Revenue__0", "Revenue"},
		{"Revenue", "Revenue"},
	}
	for _, tt := range tests {
		if got := mergeKey(tt.col); got != tt.want {
			t.Errorf("mergeKey(%q) = %q, want %q", tt.col, got, tt.want)
		}
	}
}

func TestBuildTableNodeProducesLookup(t *testing.T) {
	element := mustParseFragment(t, `
		<table>
			<tr><th>Year</th><th>Revenue</th></tr>
			<tr><td>2023</td><td>100</td></tr>
		</table>
	`)

	node := buildTableNode(element)
	node.finalize("table-1")

	if node.TableMetadata.TableID != "table-1" {
		t.Errorf("got TableID %q, want %q", node.TableMetadata.TableID, "table-1")
	}
	if len(node.TableMetadata.ColumnNames) != 2 {
		t.Fatalf("got %d column names, want 2", len(node.TableMetadata.ColumnNames))
	}
	if node.Text == "" {
		t.Error("expected non-empty Text")
	}
	if node.MinText == "" {
		t.Error("expected non-empty MinText")
	}
}
