package bracketing

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyBatch           = errors.New("o lote de faixas não pode ser vazio")
	ErrMixedGroups          = errors.New("todas as faixas do lote devem pertencer ao mesmo anexo")
	ErrMixedValidityStarts  = errors.New("validity start should be the same in all groups")
	ErrGroupOutOfRange      = errors.New("o anexo deve estar entre 1 e 5")
	ErrRangeTierOutOfRange  = errors.New("a faixa deve estar entre 1 e 6")
	ErrRevenueRangeInverted = errors.New("minimum gross revenue must be less than maximum gross revenue")
	ErrTaxSumAboveOne       = errors.New("total of taxes must be less than 1")
)

// BatchError aponta a faixa do lote que violou uma regra de validação.
// Nenhuma escrita acontece quando qualquer faixa é rejeitada.
type BatchError struct {
	Err   error
	Index int
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("faixa %d: %s", e.Index, e.Err.Error())
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

func NewBatchError(err error, index int) *BatchError {
	return &BatchError{
		Err:   err,
		Index: index,
	}
}
