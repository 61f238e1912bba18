package filing

import (
	"strings"

	serprodomain "github.com/contafy/bookkeeper-api/infrastructure/integrator/serpro/domain"
	"github.com/contafy/bookkeeper-api/infrastructure/integrator/serpro/serproclient"
)

// Filer emite documentos de arrecadação (DAS) via gateway fiscal.
type Filer interface {
	GenerateDas(cnpj string, period string) (*serprodomain.Das, error)
}

type Service struct {
	gateway serproclient.Client
}

func NewService(gateway serproclient.Client) Filer {
	return &Service{gateway: gateway}
}

// GenerateDas emite o DAS do contribuinte para o período de apuração
// informado (AAAAMM). O CNPJ é aceito com ou sem máscara; a pontuação é
// removida antes da chamada ao gateway.
func (s *Service) GenerateDas(cnpj string, period string) (*serprodomain.Das, error) {
	return s.gateway.GenerateDas(stripCnpjMask(cnpj), period)
}

func stripCnpjMask(cnpj string) string {
	replacer := strings.NewReplacer(".", "", "/", "", "-", "")
	return replacer.Replace(cnpj)
}
