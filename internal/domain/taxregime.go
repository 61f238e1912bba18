package domain

import "time"

// Regimes tributários suportados. Os valores inteiros são o formato de
// transporte usado pela API e pelo banco.
const (
	RegimeSimplesNacional = 1
	RegimeLucroPresumido  = 2
	RegimeLucroReal       = 3
)

// TaxRegime é uma janela de vigência de regime tributário de uma empresa.
// Para uma mesma empresa as janelas nunca se sobrepõem e no máximo uma
// linha tem FinalDate nulo (o regime vigente).
type TaxRegime struct {
	ID          string     `json:"id"`
	CompanyID   string     `json:"company_id"`
	Regime      int        `json:"regime"`
	InitialDate time.Time  `json:"initial_date"`
	FinalDate   *time.Time `json:"final_date"`
}

func ValidRegime(regime int) bool {
	return regime == RegimeSimplesNacional ||
		regime == RegimeLucroPresumido ||
		regime == RegimeLucroReal
}
