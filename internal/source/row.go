// =============================================================================
// Aralco to Salesforce Migration - Source Rows
// =============================================================================
//
// A Row is one record from an Aralco export, keyed by column header. Rows
// distinguish a field that is absent (the export never had the column) from
// a field that is present but empty - the mappers rely on that distinction
// when applying defaults.
//
// =============================================================================

package source

// Row is a single source record keyed by column header.
type Row map[string]string

// Get returns the value for field, or an empty string when the field is
// absent.
func (r Row) Get(field string) string {
	return r[field]
}

// GetOr returns the value for field, or def when the field is absent from
// the row entirely. A present-but-empty field returns the empty string,
// never the default.
func (r Row) GetOr(field, def string) string {
	if value, ok := r[field]; ok {
		return value
	}
	return def
}

// Has reports whether the field exists in the row, empty or not.
func (r Row) Has(field string) bool {
	_, ok := r[field]
	return ok
}
