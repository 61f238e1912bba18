package invoicing

import "errors"

// Erros de validação de nota fiscal, na ordem em que as regras são
// avaliadas. A primeira violação interrompe a validação.
var (
	ErrIssueDateInFuture        = errors.New("issue date cannot be in the future")
	ErrCompanyNotFound          = errors.New("company not found")
	ErrMemberNotInCompany       = errors.New("member not found in this company")
	ErrIssueDateBeforeCompany   = errors.New("issue date cannot be before the company creation date")
	ErrRecipientNotFound        = errors.New("recipient not found")
	ErrIssueDateBeforeRecipient = errors.New("issue date cannot be before the recipient creation date when recipient is company")
	ErrTotalTaxAboveAmount      = errors.New("total tax cannot be greater than the amount")
	ErrAmountNotPositive        = errors.New("amount must be greater than zero")
	ErrIssPercentageOutOfRange  = errors.New("ISS percentage must be between 2% and 5%")

	ErrInvalidStatus = errors.New("invalid invoice status")
)
