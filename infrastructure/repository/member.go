package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/contafy/bookkeeper-api/infrastructure/database/postgres"
	"github.com/contafy/bookkeeper-api/internal/domain"
	_ "github.com/lib/pq"
)

const membersTable = "members"

type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	GetByID(ctx context.Context, memberID string) (*domain.Member, error)
}

type memberRepository struct {
	conn *postgres.Connection
}

func NewMemberRepository(conn *postgres.Connection) MemberRepository {
	return &memberRepository{
		conn: conn,
	}
}

func (r *memberRepository) Create(ctx context.Context, member *domain.Member) error {
	membersSQL, membersArgs, err := squirrel.
		Insert(membersTable).
		Columns(
			"id", "user_id", "full_name", "document", "address",
			"number", "complement", "district", "city_id", "creation_date",
		).
		Values(
			member.ID, member.UserID, member.FullName, member.Document, member.Address,
			member.Number, member.Complement, member.District, member.CityID, member.CreationDate,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, membersSQL, membersArgs...)
	return err
}

func (r *memberRepository) GetByID(ctx context.Context, memberID string) (*domain.Member, error) {
	membersSQL, membersArgs, err := squirrel.
		Select(
			"id, user_id, full_name, document, address, " +
				"number, complement, district, city_id, creation_date",
		).
		From(membersTable).
		Where(squirrel.Eq{"id": memberID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var member domain.Member
	err = r.conn.QueryRowContext(ctx, membersSQL, membersArgs...).Scan(
		&member.ID,
		&member.UserID,
		&member.FullName,
		&member.Document,
		&member.Address,
		&member.Number,
		&member.Complement,
		&member.District,
		&member.CityID,
		&member.CreationDate,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &member, nil
}
