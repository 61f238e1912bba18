package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/contafy/bookkeeper-api/infrastructure/database/postgres"
	"github.com/contafy/bookkeeper-api/internal/domain"
)

const simpleNationalGroupsTable = "simple_national_groups"

type SimpleNationalGroupRepository interface {
	ReviseGroup(ctx context.Context, group int, cutoff time.Time, entries []*domain.SimpleNationalGroup) error
}

type simpleNationalGroupRepository struct {
	conn *postgres.Connection
}

func NewSimpleNationalGroupRepository(conn *postgres.Connection) SimpleNationalGroupRepository {
	return &simpleNationalGroupRepository{
		conn: conn,
	}
}

// ReviseGroup encerra as janelas vigentes do anexo e insere o lote novo na
// mesma transação. Ou as duas etapas acontecem ou nenhuma: uma empresa nunca
// pode ficar com um período sem faixa correspondente.
func (r *simpleNationalGroupRepository) ReviseGroup(
	ctx context.Context,
	group int,
	cutoff time.Time,
	entries []*domain.SimpleNationalGroup,
) error {
	closeSQL, closeArgs, err := squirrel.
		Update(simpleNationalGroupsTable).
		Set("validity_end", cutoff).
		Where(squirrel.Eq{"group_number": group}).
		Where(squirrel.Or{
			squirrel.Eq{"validity_end": nil},
			squirrel.Gt{"validity_end": cutoff},
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	insertBuilder := squirrel.StatementBuilder.
		Insert(simpleNationalGroupsTable).
		Columns(
			"id", "group_number", "validity_start", "validity_end", "range_tier",
			"minimum_gross_revenue", "maximum_gross_revenue", "rate", "deduction_amount",
			"tax_irpj", "tax_csll", "tax_cofins", "tax_pis", "tax_cpp", "tax_icms", "tax_iss",
		)

	for _, entry := range entries {
		insertBuilder = insertBuilder.Values(
			entry.ID, entry.Group, entry.ValidityStart, nil, entry.RangeTier,
			entry.MinimumGrossRevenue, entry.MaximumGrossRevenue, entry.Rate, entry.DeductionAmount,
			entry.TaxIrpj, entry.TaxCsll, entry.TaxCofins, entry.TaxPis, entry.TaxCpp, entry.TaxIcms, entry.TaxIss,
		)
	}

	insertSQL, insertArgs, err := insertBuilder.
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, closeSQL, closeArgs...); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
			return err
		}

		return nil
	})
}
