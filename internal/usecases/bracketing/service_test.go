package bracketing

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/contafy/bookkeeper-api/infrastructure/repository/mocks"
	"github.com/contafy/bookkeeper-api/internal/domain"
)

func validBatch(group int, validityStart time.Time) []*domain.SimpleNationalGroup {
	entries := make([]*domain.SimpleNationalGroup, 0, 2)

	entries = append(entries, &domain.SimpleNationalGroup{
		Group:               group,
		ValidityStart:       validityStart,
		RangeTier:           1,
		MinimumGrossRevenue: 0,
		MaximumGrossRevenue: 180000,
		Rate:                0.06,
		DeductionAmount:     0,
		TaxIrpj:             0.055,
		TaxCsll:             0.035,
		TaxCofins:           0.1274,
		TaxPis:              0.0276,
		TaxCpp:              0.415,
		TaxIcms:             0.34,
		TaxIss:              0,
	})

	entries = append(entries, &domain.SimpleNationalGroup{
		Group:               group,
		ValidityStart:       validityStart,
		RangeTier:           2,
		MinimumGrossRevenue: 180000.01,
		MaximumGrossRevenue: 360000,
		Rate:                0.112,
		DeductionAmount:     9360,
		TaxIrpj:             0.055,
		TaxCsll:             0.035,
		TaxCofins:           0.1274,
		TaxPis:              0.0276,
		TaxCpp:              0.415,
		TaxIcms:             0.34,
		TaxIss:              0,
	})

	return entries
}

func TestSubmitGroupRevision(t *testing.T) {
	validityStart := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		entries func() []*domain.SimpleNationalGroup
		wantErr error
	}{
		{
			name:    "lote vazio é rejeitado",
			entries: func() []*domain.SimpleNationalGroup { return nil },
			wantErr: ErrEmptyBatch,
		},
		{
			name: "anexos misturados no mesmo lote",
			entries: func() []*domain.SimpleNationalGroup {
				entries := validBatch(1, validityStart)
				entries[1].Group = 2
				return entries
			},
			wantErr: ErrMixedGroups,
		},
		{
			name: "datas de vigência diferentes no mesmo lote",
			entries: func() []*domain.SimpleNationalGroup {
				entries := validBatch(1, validityStart)
				entries[1].ValidityStart = validityStart.AddDate(0, 1, 0)
				return entries
			},
			wantErr: ErrMixedValidityStarts,
		},
		{
			name: "anexo fora do intervalo",
			entries: func() []*domain.SimpleNationalGroup {
				return validBatch(6, validityStart)
			},
			wantErr: ErrGroupOutOfRange,
		},
		{
			name: "faixa fora do intervalo",
			entries: func() []*domain.SimpleNationalGroup {
				entries := validBatch(1, validityStart)
				entries[0].RangeTier = 7
				return entries
			},
			wantErr: ErrRangeTierOutOfRange,
		},
		{
			name: "faturamento mínimo maior que o máximo",
			entries: func() []*domain.SimpleNationalGroup {
				entries := validBatch(1, validityStart)
				entries[1].MinimumGrossRevenue = 500000
				return entries
			},
			wantErr: ErrRevenueRangeInverted,
		},
		{
			name: "soma dos tributos acima de 1",
			entries: func() []*domain.SimpleNationalGroup {
				entries := validBatch(1, validityStart)
				entries[0].TaxIss = 0.5
				return entries
			},
			wantErr: ErrTaxSumAboveOne,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// Nenhuma escrita pode acontecer quando o lote é rejeitado
			mockRepo := mocks.NewMockSimpleNationalGroupRepository(ctrl)

			service := &Service{groupRepo: mockRepo}

			err := service.SubmitGroupRevision(context.Background(), tt.entries())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSubmitGroupRevision_TaxSumExactlyOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	validityStart := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	// Componentes que somam exatamente 1.0; a aritmética decimal não pode
	// rejeitá-los por resíduo de ponto flutuante.
	entries := validBatch(3, validityStart)[:1]
	entries[0].TaxIrpj = 0.1
	entries[0].TaxCsll = 0.1
	entries[0].TaxCofins = 0.2
	entries[0].TaxPis = 0.1
	entries[0].TaxCpp = 0.2
	entries[0].TaxIcms = 0.1
	entries[0].TaxIss = 0.2

	mockRepo := mocks.NewMockSimpleNationalGroupRepository(ctrl)
	mockRepo.EXPECT().
		ReviseGroup(gomock.Any(), 3, gomock.Any(), gomock.Any()).
		Return(nil)

	service := &Service{groupRepo: mockRepo}

	err := service.SubmitGroupRevision(context.Background(), entries)
	assert.NoError(t, err)
}

func TestSubmitGroupRevision_CutoffIsDayBeforeValidityStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	validityStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	wantCutoff := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)

	mockRepo := mocks.NewMockSimpleNationalGroupRepository(ctrl)
	mockRepo.EXPECT().
		ReviseGroup(gomock.Any(), 1, wantCutoff, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, _ time.Time, entries []*domain.SimpleNationalGroup) error {
			for _, entry := range entries {
				assert.NotEmpty(t, entry.ID)
			}
			return nil
		})

	service := &Service{groupRepo: mockRepo}

	err := service.SubmitGroupRevision(context.Background(), validBatch(1, validityStart))
	assert.NoError(t, err)
}

func TestSubmitGroupRevision_SerializesSameGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	validityStart := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	var inFlight, maxInFlight int
	var mu sync.Mutex

	mockRepo := mocks.NewMockSimpleNationalGroupRepository(ctrl)
	mockRepo.EXPECT().
		ReviseGroup(gomock.Any(), 2, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, _ time.Time, _ []*domain.SimpleNationalGroup) error {
			mu.Lock()
			inFlight++
			if inFlight > maxInFlight {
				maxInFlight = inFlight
			}
			mu.Unlock()

			time.Sleep(10 * time.Millisecond)

			mu.Lock()
			inFlight--
			mu.Unlock()
			return nil
		}).
		Times(2)

	service := &Service{groupRepo: mockRepo}

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := service.SubmitGroupRevision(context.Background(), validBatch(2, validityStart))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Revisões concorrentes do mesmo anexo nunca entram juntas no repositório
	assert.Equal(t, 1, maxInFlight)
}
