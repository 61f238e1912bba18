package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/contafy/bookkeeper-api/internal/domain"
	"github.com/contafy/bookkeeper-api/internal/usecases/registering"
	"github.com/contafy/bookkeeper-api/pkg/apiErrors"
)

type CreateRecipientResponse struct {
	RecipientID string `json:"recipient_id"`
}

// CreateInvoiceRecipient cadastra um tomador de nota fiscal. Tomadores
// pessoa jurídica têm a data de criação usada na validação de notas.
func CreateInvoiceRecipient(service registering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateInvoiceRecipient")

		var recipient *domain.InvoiceRecipient

		if err := json.NewDecoder(r.Body).Decode(&recipient); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if recipient.Name == "" || recipient.Document == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome e documento são obrigatórios", nil)
			return
		}

		recipient, err := service.CreateRecipient(r.Context(), recipient)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao cadastrar tomador", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateRecipientResponse{RecipientID: recipient.ID})
	}
}
