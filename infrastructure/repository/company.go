package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/contafy/bookkeeper-api/infrastructure/database/postgres"
	"github.com/contafy/bookkeeper-api/internal/domain"
	"github.com/lib/pq"
)

const (
	companiesTable        = "companies c"
	membersOfCompanyTable = "members_of_company"
)

const companiesPerPage = 10

type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company, founder *domain.MemberOfCompany, regime *domain.TaxRegime) error
	GetWithMembers(ctx context.Context, companyID string) (*domain.Company, error)
	List(ctx context.Context, filters *domain.CompanyListFilters) ([]*domain.CompanySummary, int, error)
}

type companyRepository struct {
	conn *postgres.Connection
}

func NewCompanyRepository(conn *postgres.Connection) CompanyRepository {
	return &companyRepository{
		conn: conn,
	}
}

// Create insere a empresa, o vínculo do sócio fundador e a janela inicial de
// regime tributário na mesma transação: ou a empresa nasce completa, com
// regime vigente, ou nada é gravado.
func (r *companyRepository) Create(ctx context.Context, company *domain.Company, founder *domain.MemberOfCompany, regime *domain.TaxRegime) error {
	companySQL, companyArgs, err := squirrel.
		Insert("companies").
		Columns(
			"id", "name", "document", "share_capital", "address",
			"number", "complement", "district", "city_id", "creation_date",
		).
		Values(
			company.ID, company.Name, company.Document, company.ShareCapital, company.Address,
			company.Number, company.Complement, company.District, company.CityID, company.CreationDate,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	founderSQL, founderArgs, err := squirrel.
		Insert(membersOfCompanyTable).
		Columns("member_id", "company_id", "member_share_capital", "legally_responsible").
		Values(founder.MemberID, founder.CompanyID, founder.MemberShareCapital, founder.LegallyResponsible).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	regimeSQL, regimeArgs, err := squirrel.
		Insert(taxRegimesTable).
		Columns("id", "company_id", "regime", "initial_date", "final_date").
		Values(regime.ID, regime.CompanyID, regime.Regime, regime.InitialDate, regime.FinalDate).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, companySQL, companyArgs...); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, founderSQL, founderArgs...); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, regimeSQL, regimeArgs...); err != nil {
			return err
		}

		return nil
	})
}

// GetWithMembers carrega a empresa e os IDs dos membros vinculados.
func (r *companyRepository) GetWithMembers(ctx context.Context, companyID string) (*domain.Company, error) {
	companySQL, companyArgs, err := squirrel.
		Select(
			"c.id, c.name, c.document, c.share_capital, c.address, " +
				"c.number, c.complement, c.district, c.city_id, c.creation_date, " +
				"COALESCE(array_agg(mc.member_id) FILTER (WHERE mc.member_id IS NOT NULL), '{}')",
		).
		From(companiesTable).
		LeftJoin("members_of_company mc ON mc.company_id = c.id").
		Where(squirrel.Eq{"c.id": companyID}).
		GroupBy("c.id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var company domain.Company
	err = r.conn.QueryRowContext(ctx, companySQL, companyArgs...).Scan(
		&company.ID,
		&company.Name,
		&company.Document,
		&company.ShareCapital,
		&company.Address,
		&company.Number,
		&company.Complement,
		&company.District,
		&company.CityID,
		&company.CreationDate,
		pq.Array(&company.MemberIDs),
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &company, nil
}

// List retorna uma página de empresas com o regime tributário vigente na
// data da consulta, aplicando os filtros de nome, documento e regime.
func (r *companyRepository) List(ctx context.Context, filters *domain.CompanyListFilters) ([]*domain.CompanySummary, int, error) {
	now := time.Now()

	// O sub-select aplica a mesma janela de vigência usada pelo ledger de
	// regimes: initial_date <= hoje e final_date nulo ou ainda não vencido.
	queryBuilder := squirrel.
		Select("c.id, c.name, c.document, ci.name, ci.state").
		Column(squirrel.Expr(
			"(SELECT tr.regime FROM tax_regimes tr WHERE tr.company_id = c.id "+
				"AND tr.initial_date <= ? AND (tr.final_date IS NULL OR tr.final_date >= ?) LIMIT 1)",
			now, now,
		)).
		From(companiesTable).
		Join("cities ci ON c.city_id = ci.id").
		OrderBy("c.name ASC").
		Limit(uint64(companiesPerPage)).
		Offset(uint64(filters.PageIndex * companiesPerPage))

	countBuilder := squirrel.
		Select("COUNT(*)").
		From(companiesTable)

	if filters.Name != "" {
		like := squirrel.ILike{"c.name": "%" + filters.Name + "%"}
		queryBuilder = queryBuilder.Where(like)
		countBuilder = countBuilder.Where(like)
	}

	if filters.Document != "" {
		like := squirrel.ILike{"c.document": "%" + filters.Document + "%"}
		queryBuilder = queryBuilder.Where(like)
		countBuilder = countBuilder.Where(like)
	}

	if filters.Regime != nil {
		regimeFilter := squirrel.Expr(
			"EXISTS (SELECT 1 FROM tax_regimes tr WHERE tr.company_id = c.id AND tr.regime = ? "+
				"AND tr.initial_date <= ? AND (tr.final_date IS NULL OR tr.final_date >= ?))",
			*filters.Regime, now, now,
		)
		queryBuilder = queryBuilder.Where(regimeFilter)
		countBuilder = countBuilder.Where(regimeFilter)
	}

	companiesSQL, companiesArgs, err := queryBuilder.
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.conn.QueryContext(ctx, companiesSQL, companiesArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	companies := make([]*domain.CompanySummary, 0)

	for rows.Next() {
		var summary domain.CompanySummary
		var regime sql.NullInt64

		if err := rows.Scan(
			&summary.ID,
			&summary.Name,
			&summary.Document,
			&summary.City,
			&summary.State,
			&regime,
		); err != nil {
			return nil, 0, err
		}

		if regime.Valid {
			value := int(regime.Int64)
			summary.Regime = &value
		}

		companies = append(companies, &summary)
	}

	// Falha no meio da iteração encerra rows.Next sem erro no Scan;
	// sem esta checagem a listagem viria truncada em silêncio
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countSQL, countArgs, err := countBuilder.
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	var totalCount int
	if err := r.conn.QueryRowContext(ctx, countSQL, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	return companies, totalCount, nil
}
