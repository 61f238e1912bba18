package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/contafy/bookkeeper-api/internal/domain"
	"github.com/contafy/bookkeeper-api/internal/usecases/bracketing"
	"github.com/contafy/bookkeeper-api/pkg/apiErrors"
	"github.com/contafy/bookkeeper-api/pkg/utils"
)

type SimpleNationalGroupPayload struct {
	Group               int     `json:"group"`
	ValidityStart       string  `json:"validityStart"`
	Range               int     `json:"range"`
	MinimumGrossRevenue float64 `json:"minimumGrossRevenue"`
	MaximumGrossRevenue float64 `json:"maximumGrossRevenue"`
	Rate                float64 `json:"rate"`
	DeductionAmount     float64 `json:"deductionAmount"`
	TaxIrpj             float64 `json:"taxIrpj"`
	TaxCsll             float64 `json:"taxCsll"`
	TaxCofins           float64 `json:"taxCofins"`
	TaxPis              float64 `json:"taxPis"`
	TaxCpp              float64 `json:"taxCpp"`
	TaxIcms             float64 `json:"taxIcms"`
	TaxIss              float64 `json:"taxIss"`
}

type CreateSimpleNationalGroupsRequest struct {
	SimpleNationalGroups []SimpleNationalGroupPayload `json:"simpleNationalGroups"`
}

// CreateSimpleNationalGroups recebe o lote de faixas de um anexo do Simples
// Nacional e substitui a tabela vigente. O encerramento das janelas
// anteriores e a inserção do lote novo acontecem na mesma transação.
func CreateSimpleNationalGroups(service bracketing.Scheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateSimpleNationalGroups")

		var req CreateSimpleNationalGroupsRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		entries := make([]*domain.SimpleNationalGroup, 0, len(req.SimpleNationalGroups))
		for _, payload := range req.SimpleNationalGroups {
			validityStart, err := utils.ParseDate(payload.ValidityStart)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "validityStart deve estar no formato AAAA-MM-DD", nil)
				return
			}

			entries = append(entries, &domain.SimpleNationalGroup{
				Group:               payload.Group,
				ValidityStart:       validityStart,
				RangeTier:           payload.Range,
				MinimumGrossRevenue: payload.MinimumGrossRevenue,
				MaximumGrossRevenue: payload.MaximumGrossRevenue,
				Rate:                payload.Rate,
				DeductionAmount:     payload.DeductionAmount,
				TaxIrpj:             payload.TaxIrpj,
				TaxCsll:             payload.TaxCsll,
				TaxCofins:           payload.TaxCofins,
				TaxPis:              payload.TaxPis,
				TaxCpp:              payload.TaxCpp,
				TaxIcms:             payload.TaxIcms,
				TaxIss:              payload.TaxIss,
			})
		}

		if err := service.SubmitGroupRevision(r.Context(), entries); err != nil {
			handleBracketError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Simple National Groups created.",
		})
	}
}

func handleBracketError(w http.ResponseWriter, err error) {
	var batchErr *bracketing.BatchError
	if errors.As(err, &batchErr) {
		apiErrors.WriteError(w, apiErrors.ErrBusinessRule, batchErr.Err.Error(), map[string]any{
			"index": batchErr.Index,
		})
		return
	}

	switch {
	case errors.Is(err, bracketing.ErrEmptyBatch),
		errors.Is(err, bracketing.ErrMixedGroups),
		errors.Is(err, bracketing.ErrMixedValidityStarts),
		errors.Is(err, bracketing.ErrGroupOutOfRange):
		apiErrors.WriteError(w, apiErrors.ErrBusinessRule, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao revisar as faixas do anexo", nil)
	}
}
