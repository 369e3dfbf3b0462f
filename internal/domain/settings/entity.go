package settings

import "github.com/shopspring/decimal"

// Settings is the singleton statutory and branding configuration.
type Settings struct {
	EPFPercent     decimal.Decimal `json:"epf_percent"`
	ESIPercent     decimal.Decimal `json:"esi_percent"`
	TaxRules       map[string]any  `json:"tax_rules"`
	PayslipLogoURL *string         `json:"payslip_logo_url"`
	PayslipHeader  *string         `json:"payslip_header"`
}

const DefaultPayslipHeader = "SyncZenith Payslip"

// Default returns the settings used before anything is saved.
func Default() Settings {
	header := DefaultPayslipHeader
	return Settings{
		EPFPercent:    decimal.NewFromInt(12),
		ESIPercent:    decimal.RequireFromString("0.75"),
		TaxRules:      map[string]any{},
		PayslipHeader: &header,
	}
}
