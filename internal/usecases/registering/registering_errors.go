package registering

import "errors"

var (
	ErrUserNotFound          = errors.New("usuário não encontrado")
	ErrMemberNotFound        = errors.New("membro não encontrado")
	ErrInvalidCnaeCode       = errors.New("invalid CNAE format. Must be in format 0000-0/00")
	ErrInvalidLc116          = errors.New("invalid LC116 format. Must be in format 00.00")
	ErrInvalidCnaeGroup      = errors.New("o anexo deve estar entre 1 e 5")
	ErrCnaeAlreadyRegistered = errors.New("CNAE code already registered")
	ErrCnaeNotFound          = errors.New("CNAE not found")
	ErrTitleTooShort         = errors.New("o título deve ter pelo menos 7 caracteres")
)
