package parse

import "errors"

// Sentinel errors surfaced by the parsing pipeline. See SPEC_FULL.md §7 for
// the full trigger/policy table.
var (
	// ErrTocNotFound means no Table of Contents table could be resolved
	// by any of the three search tiers.
	ErrTocNotFound = errors.New("parse: table of contents not found")

	// ErrAnchorUnresolved means a TOC anchor had no matching element in
	// the document. The affected item is skipped, not fatal.
	ErrAnchorUnresolved = errors.New("parse: toc anchor unresolved")

	// ErrMultipleMatches means an element satisfied more than one (or
	// zero) classification predicates. Callers recurse into children.
	ErrMultipleMatches = errors.New("parse: element matches multiple or zero node types")

	// ErrOversizedNode means a single node's text exceeds the chunk's
	// max word budget on its own. The node is still emitted as its own
	// chunk; this is a warning condition, not fatal.
	ErrOversizedNode = errors.New("parse: node exceeds max chunk size on its own")

	// ErrClassificationUnknown means no predicate held and the element
	// has no children to recurse into. The element is dropped.
	ErrClassificationUnknown = errors.New("parse: element has unknown classification and no children")
)
