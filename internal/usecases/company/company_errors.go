package company

import "errors"

var (
	ErrInvalidDocument   = errors.New("invalid document format")
	ErrMissingFounder    = errors.New("a empresa precisa de um sócio fundador")
	ErrFounderNotFound   = errors.New("sócio fundador não encontrado")
	ErrInvalidShare      = errors.New("o capital social deve ser maior que zero")
	ErrDatabaseOperation = errors.New("database operation error")
)
