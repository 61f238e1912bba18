package serproclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"

	serprodomain "github.com/contafy/bookkeeper-api/infrastructure/integrator/serpro/domain"
	"github.com/contafy/bookkeeper-api/pkg/log"
)

const (
	dasSystemID      = "PGDASD"
	dasServiceID     = "GERARDAS12"
	dasSystemVersion = "1.0"

	// tipo 2 = pessoa jurídica
	legalEntityType = 2
)

var (
	ErrInvalidCnpj   = errors.New("o CNPJ do contribuinte deve ter 14 dígitos")
	ErrInvalidPeriod = errors.New("o período de apuração deve estar no formato AAAAMM")
)

// GenerateDas emite o DAS de um contribuinte para um período de apuração
// (AAAAMM) via serviço GERARDAS12 do PGDASD. Autentica de forma preguiçosa e
// devolve o PDF em base64 com o detalhamento do documento.
func (c *SerproClient) GenerateDas(cnpj string, period string) (*serprodomain.Das, error) {
	if len(cnpj) != 14 {
		return nil, ErrInvalidCnpj
	}

	if len(period) != 6 {
		return nil, ErrInvalidPeriod
	}

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	session, err := c.ensureSession(ctx)
	if err != nil {
		return nil, err
	}

	body, err := c.buildEnvelope(cnpj, period)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.config.IntegraContador.EmitirURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição de emissão do DAS")
	}

	req.Header.Set("Authorization", session.TokenType+" "+session.AccessToken)
	req.Header.Set("jwt_token", session.JwtToken)
	req.Header.Set("Role-Type", "TERCEIROS")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao chamar o Integra Contador")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.L.WithField("status", resp.StatusCode).Error("Integra Contador recusou a emissão do DAS")
		return nil, serprodomain.NewGatewayError(resp.StatusCode, "falha na emissão do DAS no Integra Contador")
	}

	response := &serprodomain.GenerateDasResponse{}
	if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta do Integra Contador")
	}

	return decodeDasPayload(response.Dados)
}

// buildEnvelope monta o envelope do pedido. O payload interno (dados) é
// serializado duas vezes: vai como string JSON dentro do pedidoDados.
func (c *SerproClient) buildEnvelope(cnpj string, period string) ([]byte, error) {
	ownCnpj := c.config.IntegraContador.CNPJ

	innerPayload, err := json.Marshal(map[string]string{
		"periodoApuracao": period,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar o payload interno do pedido")
	}

	request := &serprodomain.GenerateDasRequest{
		Contratante: serprodomain.Identification{
			Numero: ownCnpj,
			Tipo:   legalEntityType,
		},
		AutorPedidoDados: serprodomain.Identification{
			Numero: ownCnpj,
			Tipo:   legalEntityType,
		},
		Contribuinte: serprodomain.Identification{
			Numero: cnpj,
			Tipo:   legalEntityType,
		},
		PedidoDados: serprodomain.ServiceRequest{
			IDSistema:     dasSystemID,
			IDServico:     dasServiceID,
			VersaoSistema: dasSystemVersion,
			Dados:         string(innerPayload),
		},
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar o envelope do pedido")
	}

	return body, nil
}

// decodeDasPayload faz o segundo decode do campo dados, que chega como
// string JSON contendo a lista de documentos emitidos.
func decodeDasPayload(dados string) (*serprodomain.Das, error) {
	var documents []serprodomain.DasDocumentPayload
	if err := json.Unmarshal([]byte(dados), &documents); err != nil {
		return nil, serprodomain.ErrMalformedResponse
	}

	if len(documents) == 0 {
		return nil, serprodomain.ErrMalformedResponse
	}

	return &serprodomain.Das{
		PdfInBase64: documents[0].Pdf,
		Details:     documents[0].DetalhamentoDas,
	}, nil
}
