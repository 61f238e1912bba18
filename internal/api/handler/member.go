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

type CreateMemberResponse struct {
	MemberID string `json:"member_id"`
}

// CreateMember cadastra um sócio vinculado a um usuário do sistema
func CreateMember(service registering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateMember")

		var member *domain.Member

		if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if member.FullName == "" || member.Document == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome completo e documento são obrigatórios", nil)
			return
		}

		member, err := service.CreateMember(r.Context(), member)
		if err != nil {
			logrus.Error(err)

			if errors.Is(err, registering.ErrUserNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Usuário não encontrado", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao cadastrar membro", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateMemberResponse{MemberID: member.ID})
	}
}

// GetMember retorna um sócio por ID
func GetMember(service registering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if memberID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do membro não fornecido", nil)
			return
		}

		member, err := service.GetMember(r.Context(), memberID)
		if err != nil {
			if errors.Is(err, registering.ErrMemberNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Membro não encontrado", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar membro", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(member)
	}
}
