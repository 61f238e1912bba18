package serproclient

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	serprodomain "github.com/contafy/bookkeeper-api/infrastructure/integrator/serpro/domain"
)

// ensureSession garante uma sessão autenticada antes de uma chamada ao
// gateway. O mutex serializa a renovação: chamadas concorrentes esperam e
// reaproveitam a sessão obtida pela primeira, em vez de autenticar em
// paralelo.
func (c *SerproClient) ensureSession(ctx context.Context) (*serprodomain.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != nil && c.session.AccessToken != "" && c.session.ExpiresIn > 0 {
		return c.session, nil
	}

	session, err := c.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	c.session = session
	return session, nil
}

// authenticate troca as credenciais do consumidor por uma sessão no endpoint
// de autenticação do SERPRO. O corpo é um form vazio; as credenciais vão em
// Basic no cabeçalho.
func (c *SerproClient) authenticate(ctx context.Context) (*serprodomain.Session, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.config.IntegraContador.AuthURL,
		strings.NewReader(""),
	)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição de autenticação")
	}

	req.Header.Set("Authorization", "Basic "+c.credentials)
	req.Header.Set("Role-Type", "TERCEIROS")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao autenticar no Integra Contador")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, serprodomain.NewGatewayError(resp.StatusCode, "falha na autenticação com o Integra Contador")
	}

	session := &serprodomain.Session{}
	if err := json.NewDecoder(resp.Body).Decode(session); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a sessão do Integra Contador")
	}

	return session, nil
}
