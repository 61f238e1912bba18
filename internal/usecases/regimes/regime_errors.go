package regimes

import "errors"

var (
	ErrInvalidRegime          = errors.New("regime tributário inválido")
	ErrInitialDateInFuture    = errors.New("a data inicial do regime não pode estar no futuro")
	ErrInitialDateNotFounding = errors.New("a data inicial do regime deve ser a data de criação da empresa")
)
