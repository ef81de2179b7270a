package mapper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhishek-notes/aralco-salesforce-migration/internal/source"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		row        source.Row
		wantPerson bool
		wantName   string
	}{
		{
			name:       "person from first and last name",
			row:        source.Row{"CompanyName": "", "FirstName": "Jane", "LastName": "Doe"},
			wantPerson: true,
			wantName:   "Jane Doe",
		},
		{
			name:       "person with names untrimmed",
			row:        source.Row{"FirstName": "  Jane ", "LastName": " Doe "},
			wantPerson: true,
			wantName:   "Jane Doe",
		},
		{
			name:       "first name only, no trailing space",
			row:        source.Row{"FirstName": "Jane", "LastName": ""},
			wantPerson: true,
			wantName:   "Jane",
		},
		{
			name:       "business from company name",
			row:        source.Row{"CompanyName": "Acme Co", "FirstName": "Jane", "LastName": "Doe"},
			wantPerson: false,
			wantName:   "Acme Co",
		},
		{
			name:       "whitespace company is still a person",
			row:        source.Row{"CompanyName": "   ", "FirstName": "Jane", "LastName": "Doe"},
			wantPerson: true,
			wantName:   "Jane Doe",
		},
		{
			name:       "nameless person falls back to identifier",
			row:        source.Row{"CustomerID": "42"},
			wantPerson: true,
			wantName:   "Customer 42",
		},
		{
			name:       "nameless person without identifier column",
			row:        source.Row{},
			wantPerson: true,
			wantName:   "Customer Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.row)
			assert.Equal(t, tt.wantPerson, got.IsPerson)
			assert.Equal(t, tt.wantName, got.Name)
		})
	}
}

func TestClassifyTruncatesAfterComposition(t *testing.T) {
	long := strings.Repeat("x", 300)
	got := Classify(source.Row{"CompanyName": long})
	assert.Len(t, got.Name, 255)

	// First+last joined before truncation: the space survives, the tail
	// does not.
	got = Classify(source.Row{"FirstName": strings.Repeat("a", 200), "LastName": strings.Repeat("b", 200)})
	assert.Len(t, got.Name, 255)
	assert.Equal(t, strings.Repeat("a", 200)+" "+strings.Repeat("b", 54), got.Name)
}
