package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/contafy/bookkeeper-api/infrastructure/database/postgres"
	"github.com/contafy/bookkeeper-api/internal/domain"
)

const taxRegimesTable = "tax_regimes"

type TaxRegimeRepository interface {
	Insert(ctx context.Context, regime *domain.TaxRegime) error
	GetActive(ctx context.Context, companyID string, asOf time.Time) (*domain.TaxRegime, error)
}

type taxRegimeRepository struct {
	conn *postgres.Connection
}

func NewTaxRegimeRepository(conn *postgres.Connection) TaxRegimeRepository {
	return &taxRegimeRepository{
		conn: conn,
	}
}

func (r *taxRegimeRepository) Insert(ctx context.Context, regime *domain.TaxRegime) error {
	regimeSQL, regimeArgs, err := squirrel.
		Insert(taxRegimesTable).
		Columns("id", "company_id", "regime", "initial_date", "final_date").
		Values(regime.ID, regime.CompanyID, regime.Regime, regime.InitialDate, regime.FinalDate).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, regimeSQL, regimeArgs...)
	return err
}

// GetActive retorna a janela de regime que cobre o instante pedido. Pela
// invariante de não sobreposição existe no máximo uma.
func (r *taxRegimeRepository) GetActive(ctx context.Context, companyID string, asOf time.Time) (*domain.TaxRegime, error) {
	regimeSQL, regimeArgs, err := squirrel.
		Select("id, company_id, regime, initial_date, final_date").
		From(taxRegimesTable).
		Where(squirrel.Eq{"company_id": companyID}).
		Where(squirrel.LtOrEq{"initial_date": asOf}).
		Where(squirrel.Or{
			squirrel.Eq{"final_date": nil},
			squirrel.GtOrEq{"final_date": asOf},
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var regime domain.TaxRegime
	err = r.conn.QueryRowContext(ctx, regimeSQL, regimeArgs...).Scan(
		&regime.ID,
		&regime.CompanyID,
		&regime.Regime,
		&regime.InitialDate,
		&regime.FinalDate,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &regime, nil
}
