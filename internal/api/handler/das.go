package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	serprodomain "github.com/contafy/bookkeeper-api/infrastructure/integrator/serpro/domain"
	"github.com/contafy/bookkeeper-api/infrastructure/integrator/serpro/serproclient"
	"github.com/contafy/bookkeeper-api/internal/usecases/filing"
	"github.com/contafy/bookkeeper-api/pkg/apiErrors"
)

type GenerateDasRequest struct {
	Cnpj            string `json:"cnpj"`
	PeriodoApuracao string `json:"periodoApuracao"`
}

// GenerateDas emite o DAS de um contribuinte via Integra Contador e devolve
// o PDF em base64 com o detalhamento do documento
func GenerateDas(service filing.Filer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GenerateDas")

		var req GenerateDasRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		das, err := service.GenerateDas(req.Cnpj, req.PeriodoApuracao)
		if err != nil {
			handleDasError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(das)
	}
}

func handleDasError(w http.ResponseWriter, err error) {
	var gatewayErr *serprodomain.GatewayError
	if errors.As(err, &gatewayErr) {
		// Propaga o status devolvido pelo gateway; não há retry automático
		apiErrors.WriteErrorWithStatus(w, gatewayErr.StatusCode, apiErrors.ErrFiscalGateway, gatewayErr.Message, nil)
		return
	}

	switch {
	case errors.Is(err, serproclient.ErrInvalidCnpj),
		errors.Is(err, serproclient.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, serprodomain.ErrMalformedResponse):
		apiErrors.WriteError(w, apiErrors.ErrFiscalGateway, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrFiscalGateway, "Erro na comunicação com o Integra Contador", nil)
	}
}
