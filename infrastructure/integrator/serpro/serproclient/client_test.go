package serproclient

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serprodomain "github.com/contafy/bookkeeper-api/infrastructure/integrator/serpro/domain"
	"github.com/contafy/bookkeeper-api/internal/config"
)

type fakeGateway struct {
	server *httptest.Server

	authCalls   atomic.Int64
	emitirCalls atomic.Int64

	authStatus   int
	emitirStatus int
	emitirDados  string

	lastAuthHeader   http.Header
	lastEmitirHeader http.Header
	lastEnvelope     serprodomain.GenerateDasRequest
}

func newFakeGateway(t *testing.T) *fakeGateway {
	t.Helper()

	gw := &fakeGateway{
		authStatus:   http.StatusOK,
		emitirStatus: http.StatusOK,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/authenticate", func(w http.ResponseWriter, r *http.Request) {
		gw.authCalls.Add(1)
		gw.lastAuthHeader = r.Header.Clone()

		if gw.authStatus != http.StatusOK {
			w.WriteHeader(gw.authStatus)
			return
		}

		json.NewEncoder(w).Encode(serprodomain.Session{
			AccessToken: "token-abc",
			TokenType:   "Bearer",
			JwtToken:    "jwt-xyz",
			ExpiresIn:   3600,
			Scope:       "default",
		})
	})

	mux.HandleFunc("/Emitir", func(w http.ResponseWriter, r *http.Request) {
		gw.emitirCalls.Add(1)
		gw.lastEmitirHeader = r.Header.Clone()
		json.NewDecoder(r.Body).Decode(&gw.lastEnvelope)

		if gw.emitirStatus != http.StatusOK {
			w.WriteHeader(gw.emitirStatus)
			return
		}

		json.NewEncoder(w).Encode(serprodomain.GenerateDasResponse{
			Status: 200,
			Dados:  gw.emitirDados,
		})
	})

	gw.server = httptest.NewServer(mux)
	t.Cleanup(gw.server.Close)

	return gw
}

func newTestClient(gw *fakeGateway) *SerproClient {
	cfg := &config.Config{
		IntegraContador: config.IntegraContador{
			AuthURL:        gw.server.URL + "/authenticate",
			EmitirURL:      gw.server.URL + "/Emitir",
			ConsumerKey:    "key",
			ConsumerSecret: "secret",
			CNPJ:           "00111222000133",
		},
	}

	return &SerproClient{
		httpClient:  gw.server.Client(),
		config:      cfg,
		credentials: "a2V5OnNlY3JldA==", // base64(key:secret)
	}
}

func dasPayload(t *testing.T) string {
	t.Helper()

	payload, err := json.Marshal([]serprodomain.DasDocumentPayload{
		{
			Pdf:          "JVBERi0=",
			CnpjCompleto: "12345678000190",
			DetalhamentoDas: serprodomain.DasDetails{
				PeriodoApuracao: "202505",
				NumeroDocumento: "07202530000000001",
				DataVencimento:  "20250620",
				Valores: serprodomain.DasValues{
					Principal: 1530.25,
					Total:     1530.25,
				},
			},
		},
	})
	require.NoError(t, err)

	return string(payload)
}

func TestGenerateDas(t *testing.T) {
	gw := newFakeGateway(t)
	gw.emitirDados = dasPayload(t)

	client := newTestClient(gw)

	das, err := client.GenerateDas("12345678000190", "202505")
	require.NoError(t, err)

	assert.Equal(t, "JVBERi0=", das.PdfInBase64)
	assert.Equal(t, "202505", das.Details.PeriodoApuracao)
	assert.Equal(t, 1530.25, das.Details.Valores.Total)

	// Autenticação: Basic + form vazio + papel de procurador
	assert.Equal(t, "Basic a2V5OnNlY3JldA==", gw.lastAuthHeader.Get("Authorization"))
	assert.Equal(t, "TERCEIROS", gw.lastAuthHeader.Get("Role-Type"))
	assert.Equal(t, "application/x-www-form-urlencoded", gw.lastAuthHeader.Get("Content-Type"))

	// Emissão: sessão obtida na autenticação vai nos cabeçalhos
	assert.Equal(t, "Bearer token-abc", gw.lastEmitirHeader.Get("Authorization"))
	assert.Equal(t, "jwt-xyz", gw.lastEmitirHeader.Get("jwt_token"))
	assert.Equal(t, "TERCEIROS", gw.lastEmitirHeader.Get("Role-Type"))

	// Envelope: contratante e autor são o próprio CNPJ, contribuinte é o alvo
	assert.Equal(t, "00111222000133", gw.lastEnvelope.Contratante.Numero)
	assert.Equal(t, "00111222000133", gw.lastEnvelope.AutorPedidoDados.Numero)
	assert.Equal(t, "12345678000190", gw.lastEnvelope.Contribuinte.Numero)
	assert.Equal(t, 2, gw.lastEnvelope.Contribuinte.Tipo)
	assert.Equal(t, "PGDASD", gw.lastEnvelope.PedidoDados.IDSistema)
	assert.Equal(t, "GERARDAS12", gw.lastEnvelope.PedidoDados.IDServico)

	// O payload interno vai como string JSON dentro do envelope
	var inner map[string]string
	require.NoError(t, json.Unmarshal([]byte(gw.lastEnvelope.PedidoDados.Dados), &inner))
	assert.Equal(t, "202505", inner["periodoApuracao"])
}

func TestGenerateDas_InvalidParams(t *testing.T) {
	gw := newFakeGateway(t)
	client := newTestClient(gw)

	_, err := client.GenerateDas("123", "202505")
	assert.ErrorIs(t, err, ErrInvalidCnpj)

	_, err = client.GenerateDas("12345678000190", "2025")
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	// Parâmetros inválidos nunca chegam à rede
	assert.Equal(t, int64(0), gw.authCalls.Load())
	assert.Equal(t, int64(0), gw.emitirCalls.Load())
}

func TestGenerateDas_SessionIsReused(t *testing.T) {
	gw := newFakeGateway(t)
	gw.emitirDados = dasPayload(t)

	client := newTestClient(gw)

	for i := 0; i < 3; i++ {
		_, err := client.GenerateDas("12345678000190", "202505")
		require.NoError(t, err)
	}

	assert.Equal(t, int64(1), gw.authCalls.Load())
	assert.Equal(t, int64(3), gw.emitirCalls.Load())
}

func TestGenerateDas_ConcurrentCallsAuthenticateOnce(t *testing.T) {
	gw := newFakeGateway(t)
	gw.emitirDados = dasPayload(t)

	client := newTestClient(gw)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.GenerateDas("12345678000190", "202505")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Chamadas concorrentes sem sessão disparam uma única autenticação;
	// as demais esperam e reaproveitam a sessão obtida
	assert.Equal(t, int64(1), gw.authCalls.Load())
	assert.Equal(t, int64(8), gw.emitirCalls.Load())
}

func TestGenerateDas_AuthFailureLeavesSessionEmpty(t *testing.T) {
	gw := newFakeGateway(t)
	gw.authStatus = http.StatusUnauthorized

	client := newTestClient(gw)

	_, err := client.GenerateDas("12345678000190", "202505")

	var gatewayErr *serprodomain.GatewayError
	require.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, http.StatusUnauthorized, gatewayErr.StatusCode)

	assert.Nil(t, client.session)
	assert.Equal(t, int64(0), gw.emitirCalls.Load())
}

func TestGenerateDas_GatewayFailurePropagatesStatus(t *testing.T) {
	gw := newFakeGateway(t)
	gw.emitirStatus = http.StatusServiceUnavailable

	client := newTestClient(gw)

	_, err := client.GenerateDas("12345678000190", "202505")

	var gatewayErr *serprodomain.GatewayError
	require.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, http.StatusServiceUnavailable, gatewayErr.StatusCode)
}

func TestGenerateDas_MalformedInnerPayload(t *testing.T) {
	gw := newFakeGateway(t)
	gw.emitirDados = "isto não é JSON"

	client := newTestClient(gw)

	_, err := client.GenerateDas("12345678000190", "202505")

	// O decode interno falhou, mas o transporte funcionou: o erro é de
	// payload malformado, não um GatewayError
	assert.ErrorIs(t, err, serprodomain.ErrMalformedResponse)

	var gatewayErr *serprodomain.GatewayError
	assert.False(t, errors.As(err, &gatewayErr))
}
