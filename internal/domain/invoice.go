package domain

import "time"

const (
	InvoiceStatusActive   = "active"
	InvoiceStatusCanceled = "canceled"
)

// Invoice é uma nota fiscal de serviço emitida por uma empresa. A criação
// passa pela validação de regras fiscais; depois de persistida a nota é
// imutável (transições de status estão fora deste escopo).
type Invoice struct {
	ID            string    `json:"id"`
	CompanyID     string    `json:"company_id"`
	MemberID      string    `json:"member_id"`
	RecipientID   string    `json:"recipient_id"`
	Status        string    `json:"status"`
	InvoiceNumber string    `json:"invoice_number"`
	IssueDate     time.Time `json:"issue_date"`
	Amount        float64   `json:"amount"`
	// DecuctIss preserva a grafia do contrato de API original.
	DecuctIss bool    `json:"decuctIss"`
	Iss       float64 `json:"iss"`
	Ir        float64 `json:"ir"`
	Csll      float64 `json:"csll"`
	Cofins    float64 `json:"cofins"`
	Pis       float64 `json:"pis"`
	Inss      float64 `json:"inss"`
}

type InvoiceRecipient struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	IsCompany             bool      `json:"is_company"`
	Document              string    `json:"document"`
	MunicipalRegistration string    `json:"municipal_registration"`
	StateRegistration     string    `json:"state_registration"`
	Address               string    `json:"address"`
	Number                string    `json:"number"`
	Complement            string    `json:"complement"`
	District              string    `json:"district"`
	CityID                int       `json:"city_id"`
	CreationDate          time.Time `json:"creation_date"`
}
