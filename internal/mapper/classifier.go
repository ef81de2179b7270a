// =============================================================================
// Aralco to Salesforce Migration - Record Classifier
// =============================================================================
//
// The classifier decides which Account variant a customer row maps to and
// derives the composite display name. Aralco has no explicit person/business
// flag; the presence of a company name is the discriminator the business
// signed off on.
//
// =============================================================================

package mapper

import (
	"strings"

	"github.com/abhishek-notes/aralco-salesforce-migration/internal/salesforce"
	"github.com/abhishek-notes/aralco-salesforce-migration/internal/source"
)

// Classification is the classifier's verdict for one customer row.
type Classification struct {
	// IsPerson is true when the row has no company name after trimming.
	IsPerson bool

	// Name is the derived account display name, already truncated to the
	// Salesforce limit.
	Name string
}

// Classify decides person vs business and derives the display name.
//
// Person rows join first and last name with a single space; when both are
// blank the name falls back to "Customer {CustomerID}", or "Customer
// Unknown" when the identifier column is absent entirely. Business rows use
// the trimmed company name. Truncation happens after composition, never
// before.
func Classify(row source.Row) Classification {
	company := strings.TrimSpace(row.Get("CompanyName"))
	if company != "" {
		return Classification{
			IsPerson: false,
			Name:     truncateName(company),
		}
	}

	first := strings.TrimSpace(row.Get("FirstName"))
	last := strings.TrimSpace(row.Get("LastName"))
	name := strings.TrimSpace(first + " " + last)
	if name == "" {
		name = "Customer " + row.GetOr("CustomerID", "Unknown")
	}
	return Classification{
		IsPerson: true,
		Name:     truncateName(name),
	}
}

// truncateName caps a composed name at the Salesforce Name field limit.
func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= salesforce.NameMaxLength {
		return name
	}
	return string(runes[:salesforce.NameMaxLength])
}
