package models

// CompanySettings is the fiscal identity printed on receipts. A singleton
// record, overwritten wholesale on save. The fields are free-form; the only
// consumer is receipt formatting.
type CompanySettings struct {
	TradeName         string `json:"trade_name" bson:"trade_name"`
	LegalName         string `json:"legal_name" bson:"legal_name"`
	TaxID             string `json:"tax_id" bson:"tax_id"`
	StateRegistration string `json:"state_registration" bson:"state_registration"`
	Street            string `json:"street" bson:"street"`
	Number            string `json:"number" bson:"number"`
	Neighborhood      string `json:"neighborhood" bson:"neighborhood"`
	City              string `json:"city" bson:"city"`
	State             string `json:"state" bson:"state"`
}
