// Package filing holds the filing-level identity types shared by the parser
// and chunker: the 10-K item enumeration, its static registry, and the
// per-filing metadata stamped onto every structural node.
package filing

import "time"

// FilingType identifies the SEC form type a filing was submitted under.
// Only 10-K is modeled; other form types are out of scope.
type FilingType string

// TenK is the only supported FilingType.
const TenK FilingType = "10-K"

// ItemName is the closed enumeration of 10-K item labels, e.g. "Item 1A".
type ItemName string

const (
	Item1  ItemName = "Item 1"
	Item1A ItemName = "Item 1A"
	Item1B ItemName = "Item 1B"
	Item1C ItemName = "Item 1C"
	Item2  ItemName = "Item 2"
	Item3  ItemName = "Item 3"
	Item4  ItemName = "Item 4"
	Item5  ItemName = "Item 5"
	Item6  ItemName = "Item 6"
	Item7  ItemName = "Item 7"
	Item7A ItemName = "Item 7A"
	Item8  ItemName = "Item 8"
	Item9  ItemName = "Item 9"
	Item9A ItemName = "Item 9A"
	Item9B ItemName = "Item 9B"
	Item9C ItemName = "Item 9C"
	Item10 ItemName = "Item 10"
	Item11 ItemName = "Item 11"
	Item12 ItemName = "Item 12"
	Item13 ItemName = "Item 13"
	Item15 ItemName = "Item 15"
	Item16 ItemName = "Item 16"
)

// ItemInfo is the static business-meaning record for one 10-K item.
type ItemInfo struct {
	Item          ItemName
	TechnicalName string
	DisplayName   string
	Description   string
}

// Items is the process-wide immutable registry mapping ItemName to ItemInfo.
// Populated once at package init, never mutated afterward.
var Items map[ItemName]ItemInfo

func init() {
	Items = map[ItemName]ItemInfo{
		Item1: {
			Item:          Item1,
			TechnicalName: "business",
			DisplayName:   "Business",
			Description:   "Overview of the company's operations, products, services, and strategy",
		},
		Item1A: {
			Item:          Item1A,
			TechnicalName: "risk_factors",
			DisplayName:   "Risk Factors",
			Description:   "Material risks that could affect the company's business or financial condition",
		},
		Item1B: {
			Item:          Item1B,
			TechnicalName: "unresolved_staff_comments",
			DisplayName:   "Unresolved Staff Comments",
			Description:   "Comments from the SEC staff that remain unresolved",
		},
		Item1C: {
			Item:          Item1C,
			TechnicalName: "cybersecurity",
			DisplayName:   "Cybersecurity",
			Description:   "Company cybersecurity risk management, strategy, and governance",
		},
		Item2: {
			Item:          Item2,
			TechnicalName: "properties",
			DisplayName:   "Properties",
			Description:   "Description of principal properties owned or leased",
		},
		Item3: {
			Item:          Item3,
			TechnicalName: "legal_proceedings",
			DisplayName:   "Legal Proceedings",
			Description:   "Material pending legal proceedings",
		},
		Item4: {
			Item:          Item4,
			TechnicalName: "mine_safety",
			DisplayName:   "Mine Safety Disclosures",
			Description:   "Mine safety information (typically not applicable)",
		},
		Item5: {
			Item:          Item5,
			TechnicalName: "market_information",
			DisplayName:   "Market for Registrant's Common Equity",
			Description:   "Market information, dividends, and issuer purchases of equity securities",
		},
		Item6: {
			Item:          Item6,
			TechnicalName: "selected_financial_data",
			DisplayName:   "Selected Financial Data",
			Description:   "Historical financial highlights (largely deprecated but still present)",
		},
		Item7: {
			Item:          Item7,
			TechnicalName: "mdna",
			DisplayName:   "Management's Discussion and Analysis",
			Description:   "Management's perspective on financial condition and results of operations",
		},
		Item7A: {
			Item:          Item7A,
			TechnicalName: "quantitative_market_risk",
			DisplayName:   "Quantitative and Qualitative Disclosures About Market Risk",
			Description:   "Exposure to market risk such as interest rates, FX, or commodity prices",
		},
		Item8: {
			Item:          Item8,
			TechnicalName: "financial_statements",
			DisplayName:   "Financial Statements and Supplementary Data",
			Description:   "Audited financial statements and notes",
		},
		Item9: {
			Item:          Item9,
			TechnicalName: "accounting_changes",
			DisplayName:   "Changes in and Disagreements with Accountants",
			Description:   "Changes in accountants and accounting disagreements",
		},
		Item9A: {
			Item:          Item9A,
			TechnicalName: "controls_and_procedures",
			DisplayName:   "Controls and Procedures",
			Description:   "Disclosure controls and internal control over financial reporting",
		},
		Item9B: {
			Item:          Item9B,
			TechnicalName: "other_information",
			DisplayName:   "Other Information",
			Description:   "Information not required elsewhere",
		},
		Item9C: {
			Item:          Item9C,
			TechnicalName: "foreign_jurisdiction_disclosure",
			DisplayName:   "Disclosure Regarding Foreign Jurisdictions",
			Description:   "Disclosure related to foreign jurisdiction restrictions (newer item)",
		},
		Item10: {
			Item:          Item10,
			TechnicalName: "directors_and_officers",
			DisplayName:   "Directors, Executive Officers and Corporate Governance",
			Description:   "Information about directors, officers, and governance",
		},
		Item11: {
			Item:          Item11,
			TechnicalName: "executive_compensation",
			DisplayName:   "Executive Compensation",
			Description:   "Compensation of executive officers",
		},
		Item12: {
			Item:          Item12,
			TechnicalName: "security_ownership",
			DisplayName:   "Security Ownership of Certain Beneficial Owners",
			Description:   "Equity ownership by management and major shareholders",
		},
		Item13: {
			Item:          Item13,
			TechnicalName: "related_transactions",
			DisplayName:   "Certain Relationships and Related Transactions",
			Description:   "Related-party transactions",
		},
		Item15: {
			Item:          Item15,
			TechnicalName: "exhibits",
			DisplayName:   "Exhibits and Financial Statement Schedules",
			Description:   "List of exhibits and schedules",
		},
		Item16: {
			Item:          Item16,
			TechnicalName: "form_10k_summary",
			DisplayName:   "Form 10-K Summary",
			Description:   "Optional summary of the Form 10-K",
		},
	}
}

// Meta is the immutable, per-filing stamp carried by every structural node
// produced from one parse session. Chunk metadata does not include it.
type Meta struct {
	Company        string     `json:"company"`
	Ticker         string     `json:"ticker"`
	Form           FilingType `json:"form"`
	PeriodOfReport string     `json:"period_of_report"`
	FilingDate     time.Time  `json:"filing_date"`
	Year           int        `json:"year"`
	FilingURL      string     `json:"filing_url"`
}
