package registering

import (
	"context"
	"regexp"
	"time"

	"github.com/contafy/bookkeeper-api/infrastructure/repository"
	"github.com/contafy/bookkeeper-api/internal/domain"
	"github.com/contafy/bookkeeper-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

var (
	cnaeCodePattern = regexp.MustCompile(`^\d{4}-\d{1}/\d{2}$`)
	lc116Pattern    = regexp.MustCompile(`^\d{2}\.\d{2}$`)
)

const minCnaeTitleLength = 7

// Registrar cuida dos cadastros de apoio: membros, tomadores de nota e
// códigos CNAE.
type Registrar interface {
	CreateMember(ctx context.Context, member *domain.Member) (*domain.Member, error)
	GetMember(ctx context.Context, memberID string) (*domain.Member, error)
	CreateRecipient(ctx context.Context, recipient *domain.InvoiceRecipient) (*domain.InvoiceRecipient, error)
	CreateCnae(ctx context.Context, cnae *domain.Cnae) (*domain.Cnae, error)
	UpdateCnae(ctx context.Context, cnae *domain.Cnae) error
}

type Service struct {
	memberRepo    repository.MemberRepository
	recipientRepo repository.InvoiceRecipientRepository
	cnaeRepo      repository.CnaeRepository
	userRepo      repository.UserRepository
	now           func() time.Time
}

func NewService(
	memberRepo repository.MemberRepository,
	recipientRepo repository.InvoiceRecipientRepository,
	cnaeRepo repository.CnaeRepository,
	userRepo repository.UserRepository,
) Registrar {
	return &Service{
		memberRepo:    memberRepo,
		recipientRepo: recipientRepo,
		cnaeRepo:      cnaeRepo,
		userRepo:      userRepo,
		now:           time.Now,
	}
}

func (s *Service) CreateMember(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	user, err := s.userRepo.GetUserByID(ctx, member.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	member.ID = id
	member.CreationDate = utils.TruncateToDay(s.now())

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

func (s *Service) GetMember(ctx context.Context, memberID string) (*domain.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

func (s *Service) CreateRecipient(ctx context.Context, recipient *domain.InvoiceRecipient) (*domain.InvoiceRecipient, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	recipient.ID = id
	if recipient.CreationDate.IsZero() {
		recipient.CreationDate = utils.TruncateToDay(s.now())
	}

	if err := s.recipientRepo.Create(ctx, recipient); err != nil {
		return nil, err
	}

	logrus.WithField("recipient_id", id).Info("Tomador de nota cadastrado")

	return recipient, nil
}

func (s *Service) CreateCnae(ctx context.Context, cnae *domain.Cnae) (*domain.Cnae, error) {
	if !cnaeCodePattern.MatchString(cnae.Code) {
		return nil, ErrInvalidCnaeCode
	}

	if cnae.Lc116 != nil && !lc116Pattern.MatchString(*cnae.Lc116) {
		return nil, ErrInvalidLc116
	}

	if cnae.Group != nil && (*cnae.Group < 1 || *cnae.Group > 5) {
		return nil, ErrInvalidCnaeGroup
	}

	existing, err := s.cnaeRepo.GetByCode(ctx, cnae.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCnaeAlreadyRegistered
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	cnae.ID = id

	if err := s.cnaeRepo.Create(ctx, cnae); err != nil {
		return nil, err
	}

	return cnae, nil
}

func (s *Service) UpdateCnae(ctx context.Context, cnae *domain.Cnae) error {
	if len(cnae.Title) < minCnaeTitleLength {
		return ErrTitleTooShort
	}

	if cnae.Lc116 != nil && !lc116Pattern.MatchString(*cnae.Lc116) {
		return ErrInvalidLc116
	}

	if cnae.Group != nil && (*cnae.Group < 1 || *cnae.Group > 5) {
		return ErrInvalidCnaeGroup
	}

	existing, err := s.cnaeRepo.GetByID(ctx, cnae.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCnaeNotFound
	}

	return s.cnaeRepo.Update(ctx, cnae)
}
