package invoicing

import (
	"context"
	"time"

	"github.com/contafy/bookkeeper-api/infrastructure/repository"
	"github.com/contafy/bookkeeper-api/internal/domain"
	"github.com/contafy/bookkeeper-api/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// limites do ISS sobre o valor da nota, em pontos percentuais
var (
	issPercentageFloor   = decimal.NewFromInt(2)
	issPercentageCeiling = decimal.NewFromInt(5)
)

type Issuer interface {
	Create(ctx context.Context, draft *domain.Invoice) (*domain.Invoice, error)
}

type Service struct {
	invoiceRepo   repository.InvoiceRepository
	companyRepo   repository.CompanyRepository
	recipientRepo repository.InvoiceRecipientRepository
	now           func() time.Time
}

func NewService(
	invoiceRepo repository.InvoiceRepository,
	companyRepo repository.CompanyRepository,
	recipientRepo repository.InvoiceRecipientRepository,
) Issuer {
	return &Service{
		invoiceRepo:   invoiceRepo,
		companyRepo:   companyRepo,
		recipientRepo: recipientRepo,
		now:           time.Now,
	}
}

// Create valida a nota na ordem fixa das regras fiscais e a persiste sem
// alterar nenhum valor informado: a validação só barra, nunca transforma.
func (s *Service) Create(ctx context.Context, draft *domain.Invoice) (*domain.Invoice, error) {
	if draft.Status != domain.InvoiceStatusActive && draft.Status != domain.InvoiceStatusCanceled {
		return nil, ErrInvalidStatus
	}

	if draft.IssueDate.After(s.now()) {
		return nil, ErrIssueDateInFuture
	}

	company, err := s.companyRepo.GetWithMembers(ctx, draft.CompanyID)
	if err != nil {
		return nil, err
	}

	if company == nil {
		return nil, ErrCompanyNotFound
	}

	if !memberBelongs(company, draft.MemberID) {
		return nil, ErrMemberNotInCompany
	}

	if draft.IssueDate.Before(company.CreationDate) {
		return nil, ErrIssueDateBeforeCompany
	}

	recipient, err := s.recipientRepo.GetByID(ctx, draft.RecipientID)
	if err != nil {
		return nil, err
	}

	if recipient == nil {
		return nil, ErrRecipientNotFound
	}

	if recipient.IsCompany && draft.IssueDate.Before(recipient.CreationDate) {
		return nil, ErrIssueDateBeforeRecipient
	}

	if err := validateTaxes(draft); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	draft.ID = id

	if err := s.invoiceRepo.Create(ctx, draft); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"invoice_id": draft.ID,
		"company_id": draft.CompanyID,
	}).Info("Nota fiscal criada")

	return draft, nil
}

func memberBelongs(company *domain.Company, memberID string) bool {
	for _, id := range company.MemberIDs {
		if id == memberID {
			return true
		}
	}
	return false
}

// validateTaxes aplica as duas regras aritméticas: o total de tributos não
// pode passar do valor da nota e o ISS deve ficar entre 2% e 5% do valor.
// O valor zero é rejeitado antes da divisão do percentual.
func validateTaxes(draft *domain.Invoice) error {
	amount := decimal.NewFromFloat(draft.Amount)

	totalTax := decimal.NewFromFloat(draft.Ir).
		Add(decimal.NewFromFloat(draft.Csll)).
		Add(decimal.NewFromFloat(draft.Cofins)).
		Add(decimal.NewFromFloat(draft.Pis)).
		Add(decimal.NewFromFloat(draft.Inss))

	if draft.DecuctIss {
		totalTax = totalTax.Add(decimal.NewFromFloat(draft.Iss))
	}

	if totalTax.GreaterThan(amount) {
		return ErrTotalTaxAboveAmount
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrAmountNotPositive
	}

	issPercentage := decimal.NewFromFloat(draft.Iss).
		Div(amount).
		Mul(decimal.NewFromInt(100))

	if issPercentage.LessThan(issPercentageFloor) || issPercentage.GreaterThan(issPercentageCeiling) {
		return ErrIssPercentageOutOfRange
	}

	return nil
}
