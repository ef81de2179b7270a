package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhishek-notes/aralco-salesforce-migration/internal/source"
)

func productRow() source.Row {
	return source.Row{
		"ProductID":        "5001",
		"Code":             "WID-100",
		"Description":      "Widget, large",
		"ShortDescription": "Widget",
		"Category1":        "Hardware",
		"Category2":        "Widgets",
		"Category3":        "",
		"Department":       "Tools",
		"Cost":             "$12.5",
		"SellPrice":        "24.99",
		"OnHand":           "42",
		"Brand":            "Acme",
		"UPC":              "012345678905",
		"Weight":           "1.2",
		"Status":           "A",
	}
}

func TestMapProduct(t *testing.T) {
	record, entry, err := MapProduct(productRow())
	require.NoError(t, err)
	require.NotNil(t, entry)

	assert.Equal(t, "5001", record.Get("Aralco_Product_ID__c"))
	assert.Equal(t, "WID-100", record.Get("ProductCode"))
	assert.Equal(t, "Widget, large", record.Get("Name"))
	assert.Equal(t, "Widget", record.Get("Description"))
	assert.Equal(t, "Hardware", record.Get("Family"))
	assert.Equal(t, "true", record.Get("IsActive"))
	assert.Equal(t, "12.50", record.Get("Cost__c"))
	assert.Equal(t, "42", record.Get("Quantity_On_Hand__c"))
	assert.Equal(t, "true", record.Get("Taxable__c"))
	assert.Equal(t, "true", record.Get("Discountable__c"))

	assert.Equal(t, "5001", entry.Get("Product2.Aralco_Product_ID__c"))
	assert.Equal(t, "Standard Price Book", entry.Get("Pricebook2.Name"))
	assert.Equal(t, "24.99", entry.Get("UnitPrice"))
	assert.Equal(t, "true", entry.Get("IsActive"))
	assert.Equal(t, "false", entry.Get("UseStandardPrice"))
}

func TestMapProductInactiveStatus(t *testing.T) {
	for _, status := range []string{"", "I", "D", "a"} {
		row := productRow()
		row["Status"] = status

		record, entry, err := MapProduct(row)
		require.NoError(t, err)
		assert.Equal(t, "false", record.Get("IsActive"), "status %q", status)
		require.NotNil(t, entry)
		// Price entry active flag mirrors the product's.
		assert.Equal(t, "false", entry.Get("IsActive"), "status %q", status)
	}
}

func TestMapProductWithoutSellPrice(t *testing.T) {
	row := productRow()
	row["SellPrice"] = ""

	_, entry, err := MapProduct(row)
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestMapProductNameFallbacks(t *testing.T) {
	row := productRow()
	row["Description"] = ""
	record, _, err := MapProduct(row)
	require.NoError(t, err)
	assert.Equal(t, "WID-100", record.Get("Name"))

	delete(row, "Code")
	record, _, err = MapProduct(row)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", record.Get("Name"))
}

func TestMapProductMissingIdentifier(t *testing.T) {
	row := productRow()
	row["ProductID"] = ""

	_, _, err := MapProduct(row)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ProductID")
}
