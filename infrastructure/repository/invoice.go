package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/contafy/bookkeeper-api/infrastructure/database/postgres"
	"github.com/contafy/bookkeeper-api/internal/domain"
)

const invoicesTable = "invoices"

// ErrMemberNotLinked indica que o vínculo membro-empresa deixou de existir
// entre a validação e a gravação da nota.
var ErrMemberNotLinked = errors.New("member is no longer linked to the company")

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
}

type invoiceRepository struct {
	conn *postgres.Connection
}

func NewInvoiceRepository(conn *postgres.Connection) InvoiceRepository {
	return &invoiceRepository{
		conn: conn,
	}
}

// Create persiste a nota validada. O vínculo societário é reconferido dentro
// da mesma transação do insert, para que a nota não seja gravada contra uma
// empresa alterada entre a validação e o commit.
func (r *invoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	membershipSQL, membershipArgs, err := squirrel.
		Select("1").
		From(membersOfCompanyTable).
		Where(squirrel.Eq{
			"member_id":  invoice.MemberID,
			"company_id": invoice.CompanyID,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	invoiceSQL, invoiceArgs, err := squirrel.
		Insert(invoicesTable).
		Columns(
			"id", "company_id", "member_id", "recipient_id", "status", "invoice_number",
			"issue_date", "amount", "decuct_iss", "iss", "ir", "csll", "cofins", "pis", "inss",
		).
		Values(
			invoice.ID, invoice.CompanyID, invoice.MemberID, invoice.RecipientID, invoice.Status, invoice.InvoiceNumber,
			invoice.IssueDate, invoice.Amount, invoice.DecuctIss, invoice.Iss, invoice.Ir, invoice.Csll, invoice.Cofins, invoice.Pis, invoice.Inss,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		var one int
		if err := tx.QueryRowContext(ctx, membershipSQL, membershipArgs...).Scan(&one); err != nil {
			if err == sql.ErrNoRows {
				return ErrMemberNotLinked
			}
			return err
		}

		if _, err := tx.ExecContext(ctx, invoiceSQL, invoiceArgs...); err != nil {
			return err
		}

		return nil
	})
}
