package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/contafy/bookkeeper-api/infrastructure/repository"
	"github.com/contafy/bookkeeper-api/internal/domain"
	"github.com/contafy/bookkeeper-api/internal/usecases/invoicing"
	"github.com/contafy/bookkeeper-api/pkg/apiErrors"
)

type CreateInvoiceResponse struct {
	InvoiceID string `json:"invoice_id"`
}

// CreateInvoice valida e persiste uma nota fiscal. A validação segue a
// ordem fixa das regras fiscais; a primeira violação interrompe o fluxo e
// nada é gravado.
func CreateInvoice(service invoicing.Issuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateInvoice")

		var draft *domain.Invoice

		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		invoice, err := service.Create(r.Context(), draft)
		if err != nil {
			handleInvoiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateInvoiceResponse{InvoiceID: invoice.ID})
	}
}

func handleInvoiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, invoicing.ErrCompanyNotFound),
		errors.Is(err, invoicing.ErrRecipientNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)

	case errors.Is(err, invoicing.ErrIssueDateInFuture),
		errors.Is(err, invoicing.ErrMemberNotInCompany),
		errors.Is(err, invoicing.ErrIssueDateBeforeCompany),
		errors.Is(err, invoicing.ErrIssueDateBeforeRecipient),
		errors.Is(err, invoicing.ErrTotalTaxAboveAmount),
		errors.Is(err, invoicing.ErrAmountNotPositive),
		errors.Is(err, invoicing.ErrIssPercentageOutOfRange),
		errors.Is(err, invoicing.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrBusinessRule, err.Error(), nil)

	case errors.Is(err, repository.ErrMemberNotLinked):
		// O vínculo societário deixou de existir entre a validação e a
		// gravação; tratado como violação de regra, não como erro interno.
		apiErrors.WriteError(w, apiErrors.ErrBusinessRule, invoicing.ErrMemberNotInCompany.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao emitir nota fiscal", nil)
	}
}
