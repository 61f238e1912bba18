package domain

import "time"

type Company struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Document     string    `json:"document"`
	ShareCapital float64   `json:"share_capital"`
	Address      string    `json:"address"`
	Number       string    `json:"number"`
	Complement   string    `json:"complement"`
	District     string    `json:"district"`
	CityID       int       `json:"city_id"`
	CreationDate time.Time `json:"creation_date"`

	// MemberIDs carrega os membros vinculados quando a empresa é
	// carregada para validação de notas fiscais.
	MemberIDs []string `json:"member_ids,omitempty"`
}

type Member struct {
	ID           string    `json:"id"`
	UserID       int       `json:"user_id"`
	FullName     string    `json:"full_name"`
	Document     string    `json:"document"`
	Address      string    `json:"address"`
	Number       string    `json:"number"`
	Complement   string    `json:"complement"`
	District     string    `json:"district"`
	CityID       int       `json:"city_id"`
	CreationDate time.Time `json:"creation_date"`
}

// MemberOfCompany é o vínculo societário entre um membro e uma empresa.
type MemberOfCompany struct {
	MemberID           string  `json:"member_id"`
	CompanyID          string  `json:"company_id"`
	MemberShareCapital float64 `json:"member_share_capital"`
	LegallyResponsible bool    `json:"legally_responsible"`
}

// CompanySummary é o formato de listagem de empresas, com o regime
// tributário ativo no momento da consulta (nil quando não há regime vigente).
type CompanySummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Document string `json:"document"`
	City     string `json:"city"`
	State    string `json:"state"`
	Regime   *int   `json:"regime"`
}

type CompanyListFilters struct {
	PageIndex int
	Name      string
	Document  string
	Regime    *int
}
