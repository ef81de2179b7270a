package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhishek-notes/aralco-salesforce-migration/internal/salesforce"
	"github.com/abhishek-notes/aralco-salesforce-migration/internal/source"
)

func personRow() source.Row {
	return source.Row{
		"CustomerID":     "1001",
		"CustomerNo":     "C-1001",
		"FirstName":      "Jane",
		"LastName":       "Doe",
		"CompanyName":    "",
		"Email":          "  JANE@EXAMPLE.COM ",
		"Phone":          "6045551234",
		"Cellular":       "604.555.9999",
		"Fax":            "",
		"Address1":       "123 Main St",
		"City":           "Vancouver",
		"ProvinceState":  "BC",
		"PostalCode":     "V5K 0A1",
		"CreditLimit":    "$1,000",
		"AccountBalance": "250.5",
		"Points":         "120",
		"LastPurchase":   "2024-03-05 10:00:00",
		"Remark":         "VIP",
	}
}

func TestMapAccountPerson(t *testing.T) {
	record, err := MapAccount(personRow())
	require.NoError(t, err)

	assert.Equal(t, salesforce.RecordTypePerson, record.Get("RecordType.DeveloperName"))
	assert.Equal(t, "1001", record.Get("Aralco_Customer_ID__c"))
	assert.Equal(t, "C-1001", record.Get("AccountNumber"))
	assert.Equal(t, "Jane Doe", record.Get("Name"))
	assert.Equal(t, "(604) 555-1234", record.Get("Phone"))
	assert.Equal(t, "", record.Get("Fax"))
	assert.Equal(t, "1000.00", record.Get("Credit_Limit__c"))
	assert.Equal(t, "250.50", record.Get("Account_Balance__c"))
	assert.Equal(t, "120", record.Get("Loyalty_Points__c"))
	assert.Equal(t, "2024-03-05", record.Get("Last_Purchase_Date__c"))
	assert.Equal(t, "true", record.Get("Active__c"))

	// Person-only fields.
	assert.Equal(t, "jane@example.com", record.Get("PersonEmail"))
	assert.Equal(t, "(604) 555-9999", record.Get("PersonMobilePhone"))
	assert.Equal(t, "(604) 555-1234", record.Get("PersonHomePhone"))
	assert.Equal(t, "Jane", record.Get("FirstName"))
	assert.Equal(t, "Doe", record.Get("LastName"))
}

func TestMapAccountBusinessLeavesPersonFieldsEmpty(t *testing.T) {
	row := personRow()
	row["CompanyName"] = "Acme Co"

	record, err := MapAccount(row)
	require.NoError(t, err)

	assert.Equal(t, salesforce.RecordTypeBusiness, record.Get("RecordType.DeveloperName"))
	assert.Equal(t, "Acme Co", record.Get("Name"))
	for _, field := range []string{"PersonEmail", "PersonMobilePhone", "PersonHomePhone", "FirstName", "LastName"} {
		assert.Equal(t, "", record.Get(field), field)
	}
}

func TestMapAccountAddressDuplication(t *testing.T) {
	record, err := MapAccount(personRow())
	require.NoError(t, err)

	// Single source address feeds both blocks.
	assert.Equal(t, record.Get("BillingStreet"), record.Get("ShippingStreet"))
	assert.Equal(t, record.Get("BillingCity"), record.Get("ShippingCity"))
	assert.Equal(t, record.Get("BillingState"), record.Get("ShippingState"))
	assert.Equal(t, record.Get("BillingPostalCode"), record.Get("ShippingPostalCode"))
	assert.Equal(t, record.Get("BillingCountry"), record.Get("ShippingCountry"))
}

func TestMapAccountCountryDefault(t *testing.T) {
	row := personRow() // no Country column at all
	record, err := MapAccount(row)
	require.NoError(t, err)
	assert.Equal(t, "Canada", record.Get("BillingCountry"))

	// Present-but-empty stays empty; the default is for absence only.
	row["Country"] = ""
	record, err = MapAccount(row)
	require.NoError(t, err)
	assert.Equal(t, "", record.Get("BillingCountry"))

	row["Country"] = "USA"
	record, err = MapAccount(row)
	require.NoError(t, err)
	assert.Equal(t, "USA", record.Get("ShippingCountry"))
}

func TestMapAccountInvalidEmailDropped(t *testing.T) {
	row := personRow()
	row["Email"] = "not-an-email"

	record, err := MapAccount(row)
	require.NoError(t, err)
	assert.Equal(t, "", record.Get("PersonEmail"))
}

func TestMapAccountMissingIdentifier(t *testing.T) {
	row := personRow()
	row["CustomerID"] = "  "

	_, err := MapAccount(row)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CustomerID")
}

func TestMapAccountFieldSetIsExact(t *testing.T) {
	record, err := MapAccount(personRow())
	require.NoError(t, err)

	values := record.Values()
	assert.Len(t, values, len(salesforce.Account.Fields))
	// Website is never mapped from source and stays at its default.
	assert.Equal(t, "", record.Get("Website"))
}
