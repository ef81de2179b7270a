package salesforce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordAppliesDefaults(t *testing.T) {
	record := Account.NewRecord()

	assert.Equal(t, "0.00", record.Get("Credit_Limit__c"))
	assert.Equal(t, "0", record.Get("Loyalty_Points__c"))
	assert.Equal(t, "true", record.Get("Active__c"))
	assert.Equal(t, "", record.Get("Name"))
}

func TestRecordSetIgnoresUndeclaredFields(t *testing.T) {
	record := Product.NewRecord()
	record.Set("NotAField__c", "x")

	assert.Equal(t, "", record.Get("NotAField__c"))
	require.Len(t, record.Values(), len(Product.Fields))
}

func TestRecordValuesFollowDeclaredOrder(t *testing.T) {
	record := PricebookEntry.NewRecord()
	record.Set("Product2.Aralco_Product_ID__c", "42")
	record.Set("UnitPrice", "19.99")
	record.Set("IsActive", "true")

	assert.Equal(t,
		[]string{"42", StandardPriceBook, "19.99", "true", "false"},
		record.Values(),
	)
}

// The import schemas are a contract with the Salesforce side; pin the
// column counts so accidental edits get caught.
func TestSchemaFieldCounts(t *testing.T) {
	assert.Len(t, Account.Fields, 31)
	assert.Len(t, Product.Fields, 16)
	assert.Len(t, PricebookEntry.Fields, 5)
}
