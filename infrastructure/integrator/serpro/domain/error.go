package serprodomain

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse indica que o campo Dados da resposta não pôde ser
// decodificado. É distinto de falha de transporte: a chamada HTTP funcionou,
// o payload interno é que veio inválido.
var ErrMalformedResponse = errors.New("resposta do Integra Contador com payload interno inválido")

// GatewayError é uma falha de transporte ou HTTP na comunicação com o
// Integra Contador. Carrega o status retornado pelo gateway para ser
// propagado ao chamador; não há retry automático.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

func NewGatewayError(statusCode int, message string) *GatewayError {
	return &GatewayError{
		StatusCode: statusCode,
		Message:    message,
	}
}
