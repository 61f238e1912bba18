package company

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/contafy/bookkeeper-api/infrastructure/repository/mocks"
	"github.com/contafy/bookkeeper-api/internal/domain"
	"github.com/contafy/bookkeeper-api/internal/usecases/regimes"
)

var companyNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func validCompanyRequest() *CreateCompanyRequest {
	req := &CreateCompanyRequest{
		Name:         "Empresa Teste LTDA",
		Document:     "12.345.678/0001-90",
		ShareCapital: 50000,
		Address:      "Rua das Flores",
		Number:       "100",
		District:     "Centro",
		CityID:       1,
		Regime:       domain.RegimeSimplesNacional,
	}
	req.Founder.MemberID = "memb01"
	req.Founder.MemberShareCapital = 50000
	req.Founder.LegallyResponsible = true
	return req
}

func newCompanyService(ctrl *gomock.Controller) (*Service, *mocks.MockCompanyRepository, *mocks.MockMemberRepository, *mocks.MockTaxRegimeRepository) {
	companyRepo := mocks.NewMockCompanyRepository(ctrl)
	memberRepo := mocks.NewMockMemberRepository(ctrl)
	regimeRepo := mocks.NewMockTaxRegimeRepository(ctrl)

	// O ledger de regimes entra de verdade; só o repositório é dublê
	service := &Service{
		companyRepo: companyRepo,
		memberRepo:  memberRepo,
		regimes:     regimes.NewService(regimeRepo),
		now:         func() time.Time { return companyNow },
	}

	return service, companyRepo, memberRepo, regimeRepo
}

func TestCreateCompany(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, companyRepo, memberRepo, _ := newCompanyService(ctrl)

	memberRepo.EXPECT().GetByID(gomock.Any(), "memb01").Return(&domain.Member{ID: "memb01"}, nil)

	companyRepo.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, company *domain.Company, founder *domain.MemberOfCompany, regime *domain.TaxRegime) error {
			assert.NotEmpty(t, company.ID)
			assert.Equal(t, "12.345.678/0001-90", company.Document)
			assert.Equal(t, company.ID, founder.CompanyID)
			assert.Equal(t, "memb01", founder.MemberID)
			assert.True(t, founder.LegallyResponsible)

			// A janela inicial do regime entra na mesma escrita da empresa
			// e começa na data de criação
			assert.Equal(t, company.ID, regime.CompanyID)
			assert.Equal(t, domain.RegimeSimplesNacional, regime.Regime)
			assert.True(t, regime.InitialDate.Equal(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)))
			assert.Nil(t, regime.FinalDate)
			return nil
		})

	created, err := service.Create(context.Background(), validCompanyRequest())
	assert.NoError(t, err)
	assert.Equal(t, "Empresa Teste LTDA", created.Name)
}

func TestCreateCompany_InvalidRegimeWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, memberRepo, _ := newCompanyService(ctrl)

	memberRepo.EXPECT().GetByID(gomock.Any(), "memb01").Return(&domain.Member{ID: "memb01"}, nil)

	req := validCompanyRequest()
	req.Regime = 9

	// Nenhuma expectativa de Create: regime inválido tem que barrar a
	// criação antes de qualquer escrita no repositório
	_, err := service.Create(context.Background(), req)
	assert.ErrorIs(t, err, regimes.ErrInvalidRegime)
}

func TestCreateCompany_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *CreateCompanyRequest)
		setup   func(memberRepo *mocks.MockMemberRepository)
		wantErr error
	}{
		{
			name: "documento sem máscara de CNPJ",
			mutate: func(req *CreateCompanyRequest) {
				req.Document = "12345678000190"
			},
			setup:   func(memberRepo *mocks.MockMemberRepository) {},
			wantErr: ErrInvalidDocument,
		},
		{
			name: "capital social zerado",
			mutate: func(req *CreateCompanyRequest) {
				req.ShareCapital = 0
			},
			setup:   func(memberRepo *mocks.MockMemberRepository) {},
			wantErr: ErrInvalidShare,
		},
		{
			name: "sem sócio fundador",
			mutate: func(req *CreateCompanyRequest) {
				req.Founder.MemberID = ""
			},
			setup:   func(memberRepo *mocks.MockMemberRepository) {},
			wantErr: ErrMissingFounder,
		},
		{
			name:   "sócio fundador inexistente",
			mutate: func(req *CreateCompanyRequest) {},
			setup: func(memberRepo *mocks.MockMemberRepository) {
				memberRepo.EXPECT().GetByID(gomock.Any(), "memb01").Return(nil, nil)
			},
			wantErr: ErrFounderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, _, memberRepo, _ := newCompanyService(ctrl)
			tt.setup(memberRepo)

			req := validCompanyRequest()
			tt.mutate(req)

			_, err := service.Create(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestListCompanies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, companyRepo, _, _ := newCompanyService(ctrl)

	regime := domain.RegimeSimplesNacional
	filters := &domain.CompanyListFilters{PageIndex: 0, Name: "Teste", Regime: &regime}
	want := []*domain.CompanySummary{{ID: "comp01", Name: "Empresa Teste LTDA", Regime: &regime}}

	companyRepo.EXPECT().List(gomock.Any(), filters).Return(want, 1, nil)

	companies, total, err := service.List(context.Background(), filters)
	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, want, companies)
}
