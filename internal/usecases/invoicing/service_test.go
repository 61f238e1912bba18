package invoicing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/contafy/bookkeeper-api/infrastructure/repository/mocks"
	"github.com/contafy/bookkeeper-api/internal/domain"
)

var (
	testNow             = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	companyCreationDate = time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	recipientCreation   = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
)

func testCompany() *domain.Company {
	return &domain.Company{
		ID:           "comp01",
		Name:         "Empresa Teste LTDA",
		CreationDate: companyCreationDate,
		MemberIDs:    []string{"memb01", "memb02"},
	}
}

func testRecipient(isCompany bool) *domain.InvoiceRecipient {
	return &domain.InvoiceRecipient{
		ID:           "recp01",
		Name:         "Tomador Exemplo",
		IsCompany:    isCompany,
		CreationDate: recipientCreation,
	}
}

func testDraft() *domain.Invoice {
	return &domain.Invoice{
		CompanyID:     "comp01",
		MemberID:      "memb01",
		RecipientID:   "recp01",
		Status:        domain.InvoiceStatusActive,
		InvoiceNumber: "0001",
		IssueDate:     time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		Amount:        1000,
		DecuctIss:     true,
		Iss:           30,
		Ir:            15,
		Csll:          10,
		Cofins:        30,
		Pis:           6.5,
		Inss:          0,
	}
}

type invoiceMocks struct {
	invoiceRepo   *mocks.MockInvoiceRepository
	companyRepo   *mocks.MockCompanyRepository
	recipientRepo *mocks.MockInvoiceRecipientRepository
}

func newInvoiceService(ctrl *gomock.Controller) (*Service, *invoiceMocks) {
	m := &invoiceMocks{
		invoiceRepo:   mocks.NewMockInvoiceRepository(ctrl),
		companyRepo:   mocks.NewMockCompanyRepository(ctrl),
		recipientRepo: mocks.NewMockInvoiceRecipientRepository(ctrl),
	}

	service := &Service{
		invoiceRepo:   m.invoiceRepo,
		companyRepo:   m.companyRepo,
		recipientRepo: m.recipientRepo,
		now:           func() time.Time { return testNow },
	}

	return service, m
}

func TestCreateInvoice_Valid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newInvoiceService(ctrl)

	m.companyRepo.EXPECT().GetWithMembers(gomock.Any(), "comp01").Return(testCompany(), nil)
	m.recipientRepo.EXPECT().GetByID(gomock.Any(), "recp01").Return(testRecipient(true), nil)
	m.invoiceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	draft := testDraft()
	invoice, err := service.Create(context.Background(), draft)

	assert.NoError(t, err)
	assert.NotEmpty(t, invoice.ID)

	// A validação barra, nunca transforma: os valores persistem como chegaram
	assert.Equal(t, 1000.0, invoice.Amount)
	assert.Equal(t, 30.0, invoice.Iss)
	assert.True(t, invoice.DecuctIss)
}

func TestCreateInvoice_OrderedRules(t *testing.T) {
	tests := []struct {
		name    string
		draft   func() *domain.Invoice
		setup   func(m *invoiceMocks)
		wantErr error
	}{
		{
			name: "data de emissão no futuro é barrada antes de qualquer consulta",
			draft: func() *domain.Invoice {
				draft := testDraft()
				draft.IssueDate = testNow.AddDate(0, 0, 1)
				return draft
			},
			setup:   func(m *invoiceMocks) {},
			wantErr: ErrIssueDateInFuture,
		},
		{
			name:  "empresa inexistente",
			draft: testDraft,
			setup: func(m *invoiceMocks) {
				m.companyRepo.EXPECT().GetWithMembers(gomock.Any(), "comp01").Return(nil, nil)
			},
			wantErr: ErrCompanyNotFound,
		},
		{
			name: "membro fora do quadro societário",
			draft: func() *domain.Invoice {
				draft := testDraft()
				draft.MemberID = "intruso"
				return draft
			},
			setup: func(m *invoiceMocks) {
				m.companyRepo.EXPECT().GetWithMembers(gomock.Any(), "comp01").Return(testCompany(), nil)
			},
			wantErr: ErrMemberNotInCompany,
		},
		{
			name: "emissão anterior à criação da empresa",
			draft: func() *domain.Invoice {
				draft := testDraft()
				draft.IssueDate = companyCreationDate.AddDate(0, 0, -1)
				return draft
			},
			setup: func(m *invoiceMocks) {
				m.companyRepo.EXPECT().GetWithMembers(gomock.Any(), "comp01").Return(testCompany(), nil)
			},
			wantErr: ErrIssueDateBeforeCompany,
		},
		{
			name:  "tomador inexistente",
			draft: testDraft,
			setup: func(m *invoiceMocks) {
				m.companyRepo.EXPECT().GetWithMembers(gomock.Any(), "comp01").Return(testCompany(), nil)
				m.recipientRepo.EXPECT().GetByID(gomock.Any(), "recp01").Return(nil, nil)
			},
			wantErr: ErrRecipientNotFound,
		},
		{
			name: "emissão anterior à criação do tomador pessoa jurídica",
			draft: func() *domain.Invoice {
				draft := testDraft()
				draft.IssueDate = recipientCreation.AddDate(0, 0, -1)
				return draft
			},
			setup: func(m *invoiceMocks) {
				m.companyRepo.EXPECT().GetWithMembers(gomock.Any(), "comp01").Return(testCompany(), nil)
				m.recipientRepo.EXPECT().GetByID(gomock.Any(), "recp01").Return(testRecipient(true), nil)
			},
			wantErr: ErrIssueDateBeforeRecipient,
		},
		{
			name: "total de tributos acima do valor da nota",
			draft: func() *domain.Invoice {
				draft := testDraft()
				draft.Ir = 1000
				return draft
			},
			setup: func(m *invoiceMocks) {
				m.companyRepo.EXPECT().GetWithMembers(gomock.Any(), "comp01").Return(testCompany(), nil)
				m.recipientRepo.EXPECT().GetByID(gomock.Any(), "recp01").Return(testRecipient(true), nil)
			},
			wantErr: ErrTotalTaxAboveAmount,
		},
		{
			name: "valor zero é rejeitado antes do cálculo do percentual",
			draft: func() *domain.Invoice {
				draft := testDraft()
				draft.Amount = 0
				draft.Iss = 0
				draft.Ir = 0
				draft.Csll = 0
				draft.Cofins = 0
				draft.Pis = 0
				return draft
			},
			setup: func(m *invoiceMocks) {
				m.companyRepo.EXPECT().GetWithMembers(gomock.Any(), "comp01").Return(testCompany(), nil)
				m.recipientRepo.EXPECT().GetByID(gomock.Any(), "recp01").Return(testRecipient(true), nil)
			},
			wantErr: ErrAmountNotPositive,
		},
		{
			name: "ISS abaixo de 2% do valor",
			draft: func() *domain.Invoice {
				draft := testDraft()
				draft.Iss = 10
				return draft
			},
			setup: func(m *invoiceMocks) {
				m.companyRepo.EXPECT().GetWithMembers(gomock.Any(), "comp01").Return(testCompany(), nil)
				m.recipientRepo.EXPECT().GetByID(gomock.Any(), "recp01").Return(testRecipient(true), nil)
			},
			wantErr: ErrIssPercentageOutOfRange,
		},
		{
			name: "ISS acima de 5% do valor",
			draft: func() *domain.Invoice {
				draft := testDraft()
				draft.Iss = 60
				return draft
			},
			setup: func(m *invoiceMocks) {
				m.companyRepo.EXPECT().GetWithMembers(gomock.Any(), "comp01").Return(testCompany(), nil)
				m.recipientRepo.EXPECT().GetByID(gomock.Any(), "recp01").Return(testRecipient(true), nil)
			},
			wantErr: ErrIssPercentageOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newInvoiceService(ctrl)
			tt.setup(m)

			_, err := service.Create(context.Background(), tt.draft())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateInvoice_TaxBoundaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newInvoiceService(ctrl)

	// Soma dos tributos exatamente igual ao valor da nota: passa
	m.companyRepo.EXPECT().GetWithMembers(gomock.Any(), "comp01").Return(testCompany(), nil)
	m.recipientRepo.EXPECT().GetByID(gomock.Any(), "recp01").Return(testRecipient(true), nil)
	m.invoiceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	draft := testDraft()
	draft.Ir = 900
	draft.Csll = 0
	draft.Cofins = 0
	draft.Pis = 0
	draft.Inss = 70 // 30 (ISS deduzido) + 900 + 70 = 1000

	_, err := service.Create(context.Background(), draft)
	assert.NoError(t, err)
}

func TestCreateInvoice_RecipientNaturalPersonSkipsDateRule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newInvoiceService(ctrl)

	// Tomador pessoa física: a regra da data de criação não se aplica
	m.companyRepo.EXPECT().GetWithMembers(gomock.Any(), "comp01").Return(testCompany(), nil)
	m.recipientRepo.EXPECT().GetByID(gomock.Any(), "recp01").Return(testRecipient(false), nil)
	m.invoiceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	draft := testDraft()
	draft.IssueDate = recipientCreation.AddDate(0, 0, -1)

	_, err := service.Create(context.Background(), draft)
	assert.NoError(t, err)
}

func TestCreateInvoice_IssNotDeductedStillBoundsPercentage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newInvoiceService(ctrl)

	// Com decuctIss falso o ISS sai da soma de tributos, mas o percentual
	// continua tendo que ficar entre 2% e 5%
	m.companyRepo.EXPECT().GetWithMembers(gomock.Any(), "comp01").Return(testCompany(), nil)
	m.recipientRepo.EXPECT().GetByID(gomock.Any(), "recp01").Return(testRecipient(true), nil)

	draft := testDraft()
	draft.DecuctIss = false
	draft.Iss = 10

	_, err := service.Create(context.Background(), draft)
	assert.ErrorIs(t, err, ErrIssPercentageOutOfRange)
}
