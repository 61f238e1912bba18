package handler

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/contafy/bookkeeper-api/internal/domain"
	"github.com/contafy/bookkeeper-api/internal/usecases/company"
	"github.com/contafy/bookkeeper-api/internal/usecases/regimes"
	"github.com/contafy/bookkeeper-api/pkg/apiErrors"
)

type CreateCompanyResponse struct {
	CompanyID string `json:"company_id"`
}

type ListCompaniesResponse struct {
	Companies  []*domain.CompanySummary `json:"companies"`
	TotalCount int                      `json:"total_count"`
}

// CreateCompany funda uma empresa com seu sócio inicial e registra o regime
// tributário vigente a partir da data de criação
func CreateCompany(service company.CompanyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCompany")

		var req *company.CreateCompanyRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.Create(r.Context(), req)
		if err != nil {
			logrus.Error(err)
			handleCompanyError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateCompanyResponse{CompanyID: created.ID})
	}
}

// ListCompanies lista empresas com filtros e paginação; cada linha traz o
// regime tributário ativo na data da consulta
func ListCompanies(service company.CompanyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseCompanyFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		companies, totalCount, err := service.List(r.Context(), filters)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar empresas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ListCompaniesResponse{
			Companies:  companies,
			TotalCount: totalCount,
		})
	}
}

func parseCompanyFilters(r *http.Request) (*domain.CompanyListFilters, error) {
	query := r.URL.Query()

	filters := &domain.CompanyListFilters{
		Name:     query.Get("companyName"),
		Document: query.Get("companyDocument"),
	}

	if pageIndex := query.Get("pageIndex"); pageIndex != "" {
		parsed, err := strconv.Atoi(pageIndex)
		if err != nil || parsed < 0 {
			return nil, errors.New("pageIndex inválido")
		}
		filters.PageIndex = parsed
	}

	if regime := query.Get("companyRegime"); regime != "" {
		parsed, err := strconv.Atoi(regime)
		if err != nil || !domain.ValidRegime(parsed) {
			return nil, errors.New("companyRegime inválido")
		}
		filters.Regime = &parsed
	}

	return filters, nil
}

func handleCompanyError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, company.ErrInvalidDocument):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Documento da empresa inválido", nil)

	case errors.Is(err, company.ErrMissingFounder):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, company.ErrFounderNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Sócio fundador não encontrado", nil)

	case errors.Is(err, company.ErrInvalidShare):
		apiErrors.WriteError(w, apiErrors.ErrBusinessRule, err.Error(), nil)

	case errors.Is(err, regimes.ErrInvalidRegime),
		errors.Is(err, regimes.ErrInitialDateInFuture),
		errors.Is(err, regimes.ErrInitialDateNotFounding):
		apiErrors.WriteError(w, apiErrors.ErrBusinessRule, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao cadastrar empresa", nil)
	}
}
