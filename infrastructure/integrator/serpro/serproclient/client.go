package serproclient

import (
	"crypto/tls"
	"encoding/base64"
	"encoding/pem"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pkcs12"

	serprodomain "github.com/contafy/bookkeeper-api/infrastructure/integrator/serpro/domain"
	"github.com/contafy/bookkeeper-api/internal/config"
)

type Client interface {
	GenerateDas(cnpj string, period string) (*serprodomain.Das, error)
}

// SerproClient fala com a API Integra Contador do SERPRO. A sessão
// autenticada fica em cache e é compartilhada entre chamadas; o mutex
// garante que apenas uma goroutine renove o token por vez.
type SerproClient struct {
	httpClient *http.Client
	config     *config.Config

	credentials string // base64(consumer_key:consumer_secret)

	mu      sync.Mutex
	session *serprodomain.Session
}

func NewClient(cfg *config.Config) (Client, error) {
	httpClient, err := newHTTPClient(&cfg.IntegraContador)
	if err != nil {
		return nil, err
	}

	credentials := base64.StdEncoding.EncodeToString(
		[]byte(cfg.IntegraContador.ConsumerKey + ":" + cfg.IntegraContador.ConsumerSecret),
	)

	return &SerproClient{
		httpClient:  httpClient,
		config:      cfg,
		credentials: credentials,
	}, nil
}

// newHTTPClient monta o cliente HTTP do integrador. Quando há um
// certificado e-CNPJ configurado, o transporte usa mTLS; sem certificado
// o cliente é simples, o que também atende os testes com httptest.
func newHTTPClient(cfg *config.IntegraContador) (*http.Client, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	if cfg.CertPath == "" {
		return client, nil
	}

	certificate, err := loadCertificate(cfg.CertPath, cfg.CertPassphrase)
	if err != nil {
		return nil, err
	}

	client.Transport = &http.Transport{
		TLSClientConfig: &tls.Config{
			Certificates: []tls.Certificate{certificate},
			MinVersion:   tls.VersionTLS12,
		},
	}

	return client, nil
}

// loadCertificate lê o bundle PKCS#12 do disco e converte para o par
// certificado/chave usado pelo TLS.
func loadCertificate(certPath, passphrase string) (tls.Certificate, error) {
	raw, err := os.ReadFile(certPath)
	if err != nil {
		return tls.Certificate{}, errors.Wrap(err, "erro ao ler o certificado e-CNPJ")
	}

	blocks, err := pkcs12.ToPEM(raw, passphrase)
	if err != nil {
		return tls.Certificate{}, errors.Wrap(err, "erro ao decodificar o bundle PKCS#12")
	}

	var pemData []byte
	for _, block := range blocks {
		pemData = append(pemData, pem.EncodeToMemory(block)...)
	}

	certificate, err := tls.X509KeyPair(pemData, pemData)
	if err != nil {
		return tls.Certificate{}, errors.Wrap(err, "erro ao montar o par certificado/chave")
	}

	return certificate, nil
}
