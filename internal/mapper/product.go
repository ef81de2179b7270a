// =============================================================================
// Aralco to Salesforce Migration - Product and Price Mappers
// =============================================================================
//
// Maps one Aralco product row to one Product2 import record and, when the
// row carries a sell price, one PricebookEntry record linking back to the
// product by its Aralco id.
//
// Taxable__c and Discountable__c are fixed to true: Aralco's tax and
// discount tables were not part of the export. Flagged for product-owner
// review rather than derived from source.
//
// =============================================================================

package mapper

import (
	"fmt"
	"strings"

	"github.com/abhishek-notes/aralco-salesforce-migration/internal/normalize"
	"github.com/abhishek-notes/aralco-salesforce-migration/internal/salesforce"
	"github.com/abhishek-notes/aralco-salesforce-migration/internal/source"
)

// statusActive is the Aralco status code for an active product. Anything
// else maps to inactive.
const statusActive = "A"

// MapProduct converts a product row into a Product2 record plus an optional
// PricebookEntry. The entry is nil when the row has no sell price.
//
// A row whose ProductID is blank is rejected, mirroring the account mapper.
func MapProduct(row source.Row) (salesforce.Record, *salesforce.Record, error) {
	productID := row.Get("ProductID")
	if strings.TrimSpace(productID) == "" {
		return salesforce.Record{}, nil, fmt.Errorf("missing ProductID")
	}

	active := "false"
	if row.Get("Status") == statusActive {
		active = "true"
	}

	record := salesforce.Product.NewRecord()
	record.Set("Aralco_Product_ID__c", productID)
	record.Set("ProductCode", row.Get("Code"))
	record.Set("Name", productName(row))
	record.Set("Description", row.Get("ShortDescription"))
	record.Set("Family", row.Get("Category1"))
	record.Set("IsActive", active)
	record.Set("Product_Category_2__c", row.Get("Category2"))
	record.Set("Product_Category_3__c", row.Get("Category3"))
	record.Set("Department__c", row.Get("Department"))
	record.Set("Cost__c", normalize.Currency(row.Get("Cost")))
	record.Set("Quantity_On_Hand__c", row.GetOr("OnHand", "0"))
	record.Set("Brand__c", row.Get("Brand"))
	record.Set("UPC__c", row.Get("UPC"))
	record.Set("Weight__c", row.Get("Weight"))

	// Price entries are only emitted for rows that actually carry a price;
	// products without one are imported priceless.
	if row.Get("SellPrice") == "" {
		return record, nil, nil
	}

	entry := salesforce.PricebookEntry.NewRecord()
	entry.Set("Product2.Aralco_Product_ID__c", productID)
	entry.Set("Pricebook2.Name", salesforce.StandardPriceBook)
	entry.Set("UnitPrice", normalize.Currency(row.Get("SellPrice")))
	entry.Set("IsActive", active)
	entry.Set("UseStandardPrice", "false")

	return record, &entry, nil
}

// productName derives the Product2 display name: long description first,
// falling back to the product code, then the literal Unknown when the code
// column is absent. Truncated after composition.
func productName(row source.Row) string {
	name := row.Get("Description")
	if name == "" {
		name = row.GetOr("Code", "Unknown")
	}
	return truncateName(name)
}
