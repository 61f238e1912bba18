package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/contafy/bookkeeper-api/internal/domain"
	"github.com/contafy/bookkeeper-api/internal/usecases/registering"
	"github.com/contafy/bookkeeper-api/pkg/apiErrors"
)

type CreateCnaeResponse struct {
	CnaeID string `json:"cnae_id"`
}

// CreateCnae cadastra um código de atividade econômica
func CreateCnae(service registering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCnae")

		var cnae *domain.Cnae

		if err := json.NewDecoder(r.Body).Decode(&cnae); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		cnae, err := service.CreateCnae(r.Context(), cnae)
		if err != nil {
			handleCnaeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateCnaeResponse{CnaeID: cnae.ID})
	}
}

// UpdateCnae atualiza título, item LC 116 e anexo de um CNAE existente
func UpdateCnae(service registering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCnae")

		cnaeID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if cnaeID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do CNAE não fornecido", nil)
			return
		}

		var cnae *domain.Cnae

		if err := json.NewDecoder(r.Body).Decode(&cnae); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		cnae.ID = cnaeID

		if err := service.UpdateCnae(r.Context(), cnae); err != nil {
			handleCnaeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleCnaeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registering.ErrInvalidCnaeCode),
		errors.Is(err, registering.ErrInvalidLc116),
		errors.Is(err, registering.ErrInvalidCnaeGroup),
		errors.Is(err, registering.ErrTitleTooShort):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, registering.ErrCnaeAlreadyRegistered):
		apiErrors.WriteError(w, apiErrors.ErrResourceConflict, err.Error(), nil)

	case errors.Is(err, registering.ErrCnaeNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar CNAE", nil)
	}
}
