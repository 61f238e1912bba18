package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/contafy/bookkeeper-api/infrastructure/database/postgres"
	"github.com/contafy/bookkeeper-api/internal/domain"
)

const cnaesTable = "cnaes"

type CnaeRepository interface {
	Create(ctx context.Context, cnae *domain.Cnae) error
	GetByID(ctx context.Context, cnaeID string) (*domain.Cnae, error)
	GetByCode(ctx context.Context, code string) (*domain.Cnae, error)
	Update(ctx context.Context, cnae *domain.Cnae) error
}

type cnaeRepository struct {
	conn *postgres.Connection
}

func NewCnaeRepository(conn *postgres.Connection) CnaeRepository {
	return &cnaeRepository{
		conn: conn,
	}
}

func (r *cnaeRepository) Create(ctx context.Context, cnae *domain.Cnae) error {
	cnaeSQL, cnaeArgs, err := squirrel.
		Insert(cnaesTable).
		Columns("id", "code", "title", "lc116", "group_number").
		Values(cnae.ID, cnae.Code, cnae.Title, cnae.Lc116, cnae.Group).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, cnaeSQL, cnaeArgs...)
	return err
}

func (r *cnaeRepository) GetByID(ctx context.Context, cnaeID string) (*domain.Cnae, error) {
	return r.getCnae(ctx, squirrel.Eq{"id": cnaeID})
}

func (r *cnaeRepository) GetByCode(ctx context.Context, code string) (*domain.Cnae, error) {
	return r.getCnae(ctx, squirrel.Eq{"code": code})
}

func (r *cnaeRepository) getCnae(ctx context.Context, whereClause map[string]interface{}) (*domain.Cnae, error) {
	cnaeSQL, cnaeArgs, err := squirrel.
		Select("id, code, title, lc116, group_number").
		From(cnaesTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var cnae domain.Cnae
	err = r.conn.QueryRowContext(ctx, cnaeSQL, cnaeArgs...).Scan(
		&cnae.ID,
		&cnae.Code,
		&cnae.Title,
		&cnae.Lc116,
		&cnae.Group,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &cnae, nil
}

func (r *cnaeRepository) Update(ctx context.Context, cnae *domain.Cnae) error {
	queryBuilder := squirrel.
		Update(cnaesTable).
		Set("title", cnae.Title).
		Where(squirrel.Eq{"id": cnae.ID})

	if cnae.Lc116 != nil {
		queryBuilder = queryBuilder.Set("lc116", cnae.Lc116)
	}

	if cnae.Group != nil {
		queryBuilder = queryBuilder.Set("group_number", cnae.Group)
	}

	cnaeSQL, cnaeArgs, err := queryBuilder.
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, cnaeSQL, cnaeArgs...)
	return err
}
