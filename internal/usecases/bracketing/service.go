package bracketing

import (
	"context"
	"sync"

	"github.com/contafy/bookkeeper-api/infrastructure/repository"
	"github.com/contafy/bookkeeper-api/internal/domain"
	"github.com/contafy/bookkeeper-api/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	minGroup     = 1
	maxGroup     = 5
	minRangeTier = 1
	maxRangeTier = 6
)

// Scheduler gerencia as tabelas de faixas do Simples Nacional por anexo.
type Scheduler interface {
	SubmitGroupRevision(ctx context.Context, entries []*domain.SimpleNationalGroup) error
}

type Service struct {
	groupRepo repository.SimpleNationalGroupRepository

	// Revisões concorrentes do mesmo anexo são serializadas para que duas
	// submissões não encerrem e reinsiram as mesmas janelas em duplicidade.
	groupLocks [maxGroup + 1]sync.Mutex
}

func NewService(groupRepo repository.SimpleNationalGroupRepository) Scheduler {
	return &Service{
		groupRepo: groupRepo,
	}
}

// SubmitGroupRevision valida o lote e substitui a tabela vigente do anexo.
// O corte das janelas anteriores é validityStart menos um dia; o encerramento
// e a inserção acontecem na mesma transação, então nenhum período de apuração
// fica sem faixa correspondente.
func (s *Service) SubmitGroupRevision(ctx context.Context, entries []*domain.SimpleNationalGroup) error {
	if len(entries) == 0 {
		return ErrEmptyBatch
	}

	group := entries[0].Group
	validityStart := entries[0].ValidityStart

	if group < minGroup || group > maxGroup {
		return NewBatchError(ErrGroupOutOfRange, 0)
	}

	for i, entry := range entries {
		if entry.Group != group {
			return NewBatchError(ErrMixedGroups, i)
		}

		if !entry.ValidityStart.Equal(validityStart) {
			return NewBatchError(ErrMixedValidityStarts, i)
		}

		if entry.RangeTier < minRangeTier || entry.RangeTier > maxRangeTier {
			return NewBatchError(ErrRangeTierOutOfRange, i)
		}

		if entry.MinimumGrossRevenue > entry.MaximumGrossRevenue {
			return NewBatchError(ErrRevenueRangeInverted, i)
		}

		if taxComponentSum(entry).GreaterThan(decimal.NewFromInt(1)) {
			return NewBatchError(ErrTaxSumAboveOne, i)
		}
	}

	for _, entry := range entries {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}
		entry.ID = id
	}

	cutoff := validityStart.AddDate(0, 0, -1)

	s.groupLocks[group].Lock()
	defer s.groupLocks[group].Unlock()

	if err := s.groupRepo.ReviseGroup(ctx, group, cutoff, entries); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"group":          group,
		"validity_start": validityStart.Format("2006-01-02"),
		"entries":        len(entries),
	}).Info("Tabela do Simples Nacional revisada")

	return nil
}

// taxComponentSum soma os sete componentes de repartição da faixa usando
// aritmética decimal, evitando falso positivo de soma acima de 1 por erro
// de ponto flutuante.
func taxComponentSum(entry *domain.SimpleNationalGroup) decimal.Decimal {
	sum := decimal.NewFromFloat(entry.TaxIrpj)
	sum = sum.Add(decimal.NewFromFloat(entry.TaxCsll))
	sum = sum.Add(decimal.NewFromFloat(entry.TaxCofins))
	sum = sum.Add(decimal.NewFromFloat(entry.TaxPis))
	sum = sum.Add(decimal.NewFromFloat(entry.TaxCpp))
	sum = sum.Add(decimal.NewFromFloat(entry.TaxIcms))
	sum = sum.Add(decimal.NewFromFloat(entry.TaxIss))
	return sum
}
