package sitebook

// BusinessProfile carries the display attributes of the business. The core
// reads it only for formatting purchase documents; it has no effect on
// costing.
type BusinessProfile struct {
	CompanyName string `json:"companyName"`
	OwnerName   string `json:"ownerName"`
	GSTIN       string `json:"gstin"`
	Address     string `json:"address"`
	LogoColor   string `json:"logoColor"`
	Currency    string `json:"currency"` // display symbol, e.g. "₹"
}

// DefaultProfile returns the profile used until the owner edits it.
func DefaultProfile() BusinessProfile {
	return BusinessProfile{
		CompanyName: "Raman Enterprises",
		OwnerName:   "Admin",
		GSTIN:       "07AAAAA0000A1Z5",
		Address:     "New Delhi, India",
		LogoColor:   "#2563eb",
		Currency:    "₹",
	}
}

// symbolCodes maps the display symbols a profile may carry to ISO 4217 codes
// understood by the currency formatter.
var symbolCodes = map[string]string{
	"₹": "INR",
	"$": "USD",
	"€": "EUR",
	"£": "GBP",
	"¥": "JPY",
}

// CurrencyCode resolves the profile's display symbol to an ISO 4217 code.
// A three-letter value is assumed to already be a code.
func (p BusinessProfile) CurrencyCode() string {
	if code, ok := symbolCodes[p.Currency]; ok {
		return code
	}
	if len(p.Currency) == 3 {
		return p.Currency
	}
	return "INR"
}
