// =============================================================================
// Aralco to Salesforce Migration - Account Mapper
// =============================================================================
//
// Maps one Aralco customer row to one Salesforce Account import record.
// Every field that needs type coercion goes through the normalizers;
// free-text fields (address lines, remarks) pass through raw.
//
// Aralco stores a single address per customer, so the billing and shipping
// blocks are both populated from it. Active__c is fixed to true: only
// active customers are exported upstream.
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

// MapAccount converts a customer row into an Account record.
//
// A row whose CustomerID is blank cannot be keyed in Salesforce and is
// rejected; the caller records the failure and moves on.
func MapAccount(row source.Row) (salesforce.Record, error) {
	customerID := row.Get("CustomerID")
	if strings.TrimSpace(customerID) == "" {
		return salesforce.Record{}, fmt.Errorf("missing CustomerID")
	}

	class := Classify(row)

	record := salesforce.Account.NewRecord()
	if class.IsPerson {
		record.Set("RecordType.DeveloperName", salesforce.RecordTypePerson)
	} else {
		record.Set("RecordType.DeveloperName", salesforce.RecordTypeBusiness)
	}

	record.Set("Aralco_Customer_ID__c", customerID)
	record.Set("AccountNumber", row.Get("CustomerNo"))
	record.Set("Name", class.Name)
	record.Set("Phone", normalize.Phone(row.Get("Phone")))
	record.Set("Fax", normalize.Phone(row.Get("Fax")))

	// One source address feeds both address blocks.
	country := row.GetOr("Country", salesforce.DefaultBillingCountry)
	record.Set("BillingStreet", row.Get("Address1"))
	record.Set("BillingCity", row.Get("City"))
	record.Set("BillingState", row.Get("ProvinceState"))
	record.Set("BillingPostalCode", row.Get("PostalCode"))
	record.Set("BillingCountry", country)
	record.Set("ShippingStreet", row.Get("Address1"))
	record.Set("ShippingCity", row.Get("City"))
	record.Set("ShippingState", row.Get("ProvinceState"))
	record.Set("ShippingPostalCode", row.Get("PostalCode"))
	record.Set("ShippingCountry", country)

	record.Set("Description", row.Get("Remark"))
	record.Set("Credit_Limit__c", normalize.Currency(row.Get("CreditLimit")))
	record.Set("Account_Balance__c", normalize.Currency(row.Get("AccountBalance")))
	record.Set("Loyalty_Points__c", row.GetOr("Points", "0"))
	record.Set("Last_Purchase_Date__c", normalize.Date(row.Get("LastPurchase")))

	// Person-only contact fields stay at their schema defaults on
	// business accounts.
	if class.IsPerson {
		record.Set("PersonEmail", normalize.Email(row.Get("Email")))
		record.Set("PersonMobilePhone", normalize.Phone(row.Get("Cellular")))
		record.Set("PersonHomePhone", normalize.Phone(row.Get("Phone")))
		record.Set("FirstName", row.Get("FirstName"))
		record.Set("LastName", row.Get("LastName"))
	}

	return record, nil
}
