// =============================================================================
// Aralco to Salesforce Migration - Target Schemas
// =============================================================================
//
// This package defines the fixed field schemas of the Salesforce import
// files. Each schema is an ordered field-name list plus per-field defaults;
// the column order of every generated CSV is exactly the order declared
// here, and that order is load-bearing for the downstream import jobs.
//
// Do not reorder or rename fields without coordinating with the Salesforce
// side: custom fields (the __c suffix) must match the target org's metadata
// exactly.
//
// =============================================================================

package salesforce

// Record type developer names for the Account object.
const (
	RecordTypePerson   = "PersonAccount"
	RecordTypeBusiness = "Business_Account"
)

// StandardPriceBook is the pricebook every migrated price entry lands in.
const StandardPriceBook = "Standard Price Book"

// DefaultBillingCountry is used when the source row has no Country column.
const DefaultBillingCountry = "Canada"

// NameMaxLength is the Salesforce limit on the Name field. Composed names
// are truncated to this many characters after composition, never before.
const NameMaxLength = 255

// Schema is the fixed field layout of one import file.
type Schema struct {
	// Name identifies the target object (used in logs and summaries).
	Name string

	// Fields is the ordered list of output columns.
	Fields []string

	// Defaults holds type-specific default values for fields that carry
	// one; every other field defaults to the empty string.
	Defaults map[string]string
}

// Account is the Salesforce Account import schema.
var Account = &Schema{
	Name: "Account",
	Fields: []string{
		"RecordType.DeveloperName",
		"Aralco_Customer_ID__c",
		"AccountNumber",
		"Name",
		"Phone",
		"Fax",
		"Website",
		"BillingStreet",
		"BillingCity",
		"BillingState",
		"BillingPostalCode",
		"BillingCountry",
		"ShippingStreet",
		"ShippingCity",
		"ShippingState",
		"ShippingPostalCode",
		"ShippingCountry",
		"Description",
		"Industry",
		"AnnualRevenue",
		"NumberOfEmployees",
		"Credit_Limit__c",
		"Account_Balance__c",
		"Loyalty_Points__c",
		"Last_Purchase_Date__c",
		"Active__c",
		"PersonEmail",
		"PersonMobilePhone",
		"PersonHomePhone",
		"FirstName",
		"LastName",
	},
	Defaults: map[string]string{
		"Credit_Limit__c":    "0.00",
		"Account_Balance__c": "0.00",
		"Loyalty_Points__c":  "0",
		"Active__c":          "true",
	},
}

// Product is the Salesforce Product2 import schema.
var Product = &Schema{
	Name: "Product2",
	Fields: []string{
		"Aralco_Product_ID__c",
		"ProductCode",
		"Name",
		"Description",
		"Family",
		"IsActive",
		"Product_Category_2__c",
		"Product_Category_3__c",
		"Department__c",
		"Cost__c",
		"Quantity_On_Hand__c",
		"Brand__c",
		"UPC__c",
		"Weight__c",
		"Taxable__c",
		"Discountable__c",
	},
	Defaults: map[string]string{
		"IsActive":            "false",
		"Cost__c":             "0.00",
		"Quantity_On_Hand__c": "0",
		"Taxable__c":          "true",
		"Discountable__c":     "true",
	},
}

// PricebookEntry is the Salesforce PricebookEntry import schema.
var PricebookEntry = &Schema{
	Name: "PricebookEntry",
	Fields: []string{
		"Product2.Aralco_Product_ID__c",
		"Pricebook2.Name",
		"UnitPrice",
		"IsActive",
		"UseStandardPrice",
	},
	Defaults: map[string]string{
		"Pricebook2.Name":  StandardPriceBook,
		"UnitPrice":        "0.00",
		"IsActive":         "false",
		"UseStandardPrice": "false",
	},
}

// =============================================================================
// RECORD
// =============================================================================

// Record is one fully populated target record. It always carries exactly
// the declared field set of its schema: construction fills every field with
// its default, and Set only accepts declared fields.
type Record struct {
	schema *Schema
	values map[string]string
}

// NewRecord builds a record with every schema field at its default value.
func (s *Schema) NewRecord() Record {
	values := make(map[string]string, len(s.Fields))
	for _, field := range s.Fields {
		values[field] = s.Defaults[field]
	}
	return Record{schema: s, values: values}
}

// Schema returns the schema this record conforms to.
func (r Record) Schema() *Schema {
	return r.schema
}

// Set assigns a declared field. Assignments to fields outside the schema
// are dropped, keeping the field set closed.
func (r Record) Set(field, value string) {
	if _, ok := r.values[field]; ok {
		r.values[field] = value
	}
}

// Get returns the value of a field, or an empty string for undeclared
// fields.
func (r Record) Get(field string) string {
	return r.values[field]
}

// Values returns the record's values in declared field order, ready for
// the CSV writer.
func (r Record) Values() []string {
	out := make([]string, len(r.schema.Fields))
	for i, field := range r.schema.Fields {
		out[i] = r.values[field]
	}
	return out
}
