package parse

import "github.com/sec10k/chunker/filing"

// SemanticDocument groups a parsed filing's nodes by their ParentItem,
// preserving StructuralOrder within each group. It is the entry point the
// chunk package consumes. SPEC_FULL.md §4.7, §12.
type SemanticDocument struct {
	Meta  filing.Meta
	Nodes []StructuralNode
}

// ItemView is one item's nodes plus the ItemInfo describing it.
type ItemView struct {
	filing.ItemInfo
	Nodes []StructuralNode
}

// Items groups the document's nodes by ParentItem, in first-seen order.
func (d *SemanticDocument) Items() []ItemView {
	order := []filing.ItemName{}
	byItem := map[filing.ItemName][]StructuralNode{}

	for _, n := range d.Nodes {
		name := n.Metadata.ParentItem
		if _, seen := byItem[name]; !seen {
			order = append(order, name)
		}
		byItem[name] = append(byItem[name], n)
	}

	views := make([]ItemView, 0, len(order))
	for _, name := range order {
		info := filing.Items[name]
		views = append(views, ItemView{ItemInfo: info, Nodes: byItem[name]})
	}
	return views
}

// GetItem returns the ItemView for name, or false if the document has no
// nodes under that item.
func (d *SemanticDocument) GetItem(name filing.ItemName) (ItemView, bool) {
	for _, view := range d.Items() {
		if view.Item == name {
			return view, true
		}
	}
	return ItemView{}, false
}

// PageNumbers returns the sorted, de-duplicated set of page numbers any
// node in the view falls on.
func (v ItemView) PageNumbers() []int {
	seen := map[int]bool{}
	var pages []int
	for _, n := range v.Nodes {
		if n.Metadata.PageNumber == nil {
			continue
		}
		p := *n.Metadata.PageNumber
		if !seen[p] {
			seen[p] = true
			pages = append(pages, p)
		}
	}
	for i := 1; i < len(pages); i++ {
		for j := i; j > 0 && pages[j-1] > pages[j]; j-- {
			pages[j-1], pages[j] = pages[j], pages[j-1]
		}
	}
	return pages
}

// PageRange returns [min, max] of the view's page numbers. It always
// returns a pair — if the view spans no pages, both are 0.
func (v ItemView) PageRange() [2]int {
	pages := v.PageNumbers()
	if len(pages) == 0 {
		return [2]int{0, 0}
	}
	return [2]int{pages[0], pages[len(pages)-1]}
}
