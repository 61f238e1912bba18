package company

import (
	"context"
	"regexp"
	"time"

	"github.com/contafy/bookkeeper-api/infrastructure/repository"
	"github.com/contafy/bookkeeper-api/internal/domain"
	"github.com/contafy/bookkeeper-api/internal/usecases/regimes"
	"github.com/contafy/bookkeeper-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// formato de CNPJ com máscara: 00.000.000/0000-00
var cnpjPattern = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)

type CreateCompanyRequest struct {
	Name         string  `json:"name"`
	Document     string  `json:"document"`
	ShareCapital float64 `json:"share_capital"`
	Address      string  `json:"address"`
	Number       string  `json:"number"`
	Complement   string  `json:"complement"`
	District     string  `json:"district"`
	CityID       int     `json:"city_id"`
	Regime       int     `json:"regime"`

	Founder struct {
		MemberID           string  `json:"member_id"`
		MemberShareCapital float64 `json:"member_share_capital"`
		LegallyResponsible bool    `json:"legally_responsible"`
	} `json:"member"`
}

type CompanyService interface {
	Create(ctx context.Context, req *CreateCompanyRequest) (*domain.Company, error)
	List(ctx context.Context, filters *domain.CompanyListFilters) ([]*domain.CompanySummary, int, error)
}

type Service struct {
	companyRepo repository.CompanyRepository
	memberRepo  repository.MemberRepository
	regimes     regimes.Ledger
	now         func() time.Time
}

func NewService(
	companyRepo repository.CompanyRepository,
	memberRepo repository.MemberRepository,
	regimeLedger regimes.Ledger,
) CompanyService {
	return &Service{
		companyRepo: companyRepo,
		memberRepo:  memberRepo,
		regimes:     regimeLedger,
		now:         time.Now,
	}
}

// Create funda a empresa com o sócio informado e registra a janela inicial
// de regime tributário, com data inicial igual à data de criação.
func (s *Service) Create(ctx context.Context, req *CreateCompanyRequest) (*domain.Company, error) {
	if !cnpjPattern.MatchString(req.Document) {
		return nil, ErrInvalidDocument
	}

	if req.ShareCapital <= 0 || req.Founder.MemberShareCapital <= 0 {
		return nil, ErrInvalidShare
	}

	if req.Founder.MemberID == "" {
		return nil, ErrMissingFounder
	}

	member, err := s.memberRepo.GetByID(ctx, req.Founder.MemberID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar sócio fundador")
	}
	if member == nil {
		return nil, ErrFounderNotFound
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	creationDate := utils.TruncateToDay(s.now())

	regime := req.Regime
	if regime == 0 {
		regime = domain.RegimeSimplesNacional
	}

	// A janela de regime é validada e montada antes de qualquer escrita;
	// regime inválido não pode deixar uma empresa pela metade no banco.
	openingRegime, err := s.regimes.Opening(id, regime, creationDate, creationDate)
	if err != nil {
		return nil, err
	}

	newCompany := &domain.Company{
		ID:           id,
		Name:         req.Name,
		Document:     req.Document,
		ShareCapital: req.ShareCapital,
		Address:      req.Address,
		Number:       req.Number,
		Complement:   req.Complement,
		District:     req.District,
		CityID:       req.CityID,
		CreationDate: creationDate,
	}

	founder := &domain.MemberOfCompany{
		MemberID:           req.Founder.MemberID,
		CompanyID:          id,
		MemberShareCapital: req.Founder.MemberShareCapital,
		LegallyResponsible: req.Founder.LegallyResponsible,
	}

	if err := s.companyRepo.Create(ctx, newCompany, founder, openingRegime); err != nil {
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"company_id": id,
		"regime":     regime,
	}).Info("Empresa criada com regime inicial")

	return newCompany, nil
}

func (s *Service) List(ctx context.Context, filters *domain.CompanyListFilters) ([]*domain.CompanySummary, int, error) {
	return s.companyRepo.List(ctx, filters)
}
