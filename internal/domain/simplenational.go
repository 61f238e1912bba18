package domain

import "time"

// SimpleNationalGroup é uma faixa de faturamento de um anexo do Simples
// Nacional. Um lote de faixas (uma por RangeTier) compartilha o mesmo
// ValidityStart; a revisão de um anexo encerra as janelas anteriores e
// insere o lote novo de forma atômica.
type SimpleNationalGroup struct {
	ID                  string     `json:"id"`
	Group               int        `json:"group"`
	ValidityStart       time.Time  `json:"validity_start"`
	ValidityEnd         *time.Time `json:"validity_end"`
	RangeTier           int        `json:"range"`
	MinimumGrossRevenue float64    `json:"minimum_gross_revenue"`
	MaximumGrossRevenue float64    `json:"maximum_gross_revenue"`
	Rate                float64    `json:"rate"`
	DeductionAmount     float64    `json:"deduction_amount"`
	TaxIrpj             float64    `json:"tax_irpj"`
	TaxCsll             float64    `json:"tax_csll"`
	TaxCofins           float64    `json:"tax_cofins"`
	TaxPis              float64    `json:"tax_pis"`
	TaxCpp              float64    `json:"tax_cpp"`
	TaxIcms             float64    `json:"tax_icms"`
	TaxIss              float64    `json:"tax_iss"`
}
