package regimes

import (
	"context"
	"time"

	"github.com/contafy/bookkeeper-api/infrastructure/repository"
	"github.com/contafy/bookkeeper-api/internal/domain"
	"github.com/contafy/bookkeeper-api/pkg/utils"
)

// Ledger mantém as janelas de regime tributário de cada empresa. As janelas
// de uma empresa nunca se sobrepõem e no máximo uma está aberta (final_date
// nulo); quem encerra uma janela é sempre a atribuição que a sucede.
type Ledger interface {
	Opening(companyID string, regime int, initialDate, companyCreation time.Time) (*domain.TaxRegime, error)
	Assign(ctx context.Context, companyID string, regime int, initialDate, companyCreation time.Time) (*domain.TaxRegime, error)
	ActiveAt(ctx context.Context, companyID string, asOf time.Time) (*domain.TaxRegime, error)
}

type Service struct {
	regimeRepo repository.TaxRegimeRepository
	now        func() time.Time
}

func NewService(regimeRepo repository.TaxRegimeRepository) Ledger {
	return &Service{
		regimeRepo: regimeRepo,
		now:        time.Now,
	}
}

// Opening valida e monta a janela de fundação da empresa sem persistir nada,
// para que o chamador grave a janela na mesma transação da empresa. A data
// inicial tem que ser a data de criação da empresa e não pode estar no futuro.
func (s *Service) Opening(
	companyID string,
	regime int,
	initialDate time.Time,
	companyCreation time.Time,
) (*domain.TaxRegime, error) {
	if !domain.ValidRegime(regime) {
		return nil, ErrInvalidRegime
	}

	if initialDate.After(s.now()) {
		return nil, ErrInitialDateInFuture
	}

	if !initialDate.Equal(companyCreation) {
		return nil, ErrInitialDateNotFounding
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	return &domain.TaxRegime{
		ID:          id,
		CompanyID:   companyID,
		Regime:      regime,
		InitialDate: initialDate,
		FinalDate:   nil,
	}, nil
}

// Assign registra o regime de fundação da empresa.
func (s *Service) Assign(
	ctx context.Context,
	companyID string,
	regime int,
	initialDate time.Time,
	companyCreation time.Time,
) (*domain.TaxRegime, error) {
	taxRegime, err := s.Opening(companyID, regime, initialDate, companyCreation)
	if err != nil {
		return nil, err
	}

	if err := s.regimeRepo.Insert(ctx, taxRegime); err != nil {
		return nil, err
	}

	return taxRegime, nil
}

// ActiveAt devolve a janela que cobre o instante pedido, ou nil quando a
// empresa não tem regime vigente naquela data.
func (s *Service) ActiveAt(ctx context.Context, companyID string, asOf time.Time) (*domain.TaxRegime, error) {
	return s.regimeRepo.GetActive(ctx, companyID, asOf)
}
