package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/contafy/bookkeeper-api/infrastructure/database/postgres"
	"github.com/contafy/bookkeeper-api/internal/domain"
)

const invoiceRecipientsTable = "invoice_recipients"

type InvoiceRecipientRepository interface {
	Create(ctx context.Context, recipient *domain.InvoiceRecipient) error
	GetByID(ctx context.Context, recipientID string) (*domain.InvoiceRecipient, error)
}

type invoiceRecipientRepository struct {
	conn *postgres.Connection
}

func NewInvoiceRecipientRepository(conn *postgres.Connection) InvoiceRecipientRepository {
	return &invoiceRecipientRepository{
		conn: conn,
	}
}

func (r *invoiceRecipientRepository) Create(ctx context.Context, recipient *domain.InvoiceRecipient) error {
	recipientSQL, recipientArgs, err := squirrel.
		Insert(invoiceRecipientsTable).
		Columns(
			"id", "name", "is_company", "document", "municipal_registration", "state_registration",
			"address", "number", "complement", "district", "city_id", "creation_date",
		).
		Values(
			recipient.ID, recipient.Name, recipient.IsCompany, recipient.Document,
			recipient.MunicipalRegistration, recipient.StateRegistration,
			recipient.Address, recipient.Number, recipient.Complement,
			recipient.District, recipient.CityID, recipient.CreationDate,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, recipientSQL, recipientArgs...)
	return err
}

func (r *invoiceRecipientRepository) GetByID(ctx context.Context, recipientID string) (*domain.InvoiceRecipient, error) {
	recipientSQL, recipientArgs, err := squirrel.
		Select(
			"id, name, is_company, document, municipal_registration, state_registration, " +
				"address, number, complement, district, city_id, creation_date",
		).
		From(invoiceRecipientsTable).
		Where(squirrel.Eq{"id": recipientID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var recipient domain.InvoiceRecipient
	err = r.conn.QueryRowContext(ctx, recipientSQL, recipientArgs...).Scan(
		&recipient.ID,
		&recipient.Name,
		&recipient.IsCompany,
		&recipient.Document,
		&recipient.MunicipalRegistration,
		&recipient.StateRegistration,
		&recipient.Address,
		&recipient.Number,
		&recipient.Complement,
		&recipient.District,
		&recipient.CityID,
		&recipient.CreationDate,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &recipient, nil
}
