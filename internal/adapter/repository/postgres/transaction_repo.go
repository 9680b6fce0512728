package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/valeriy-z/simplebank/internal/domain"
	"github.com/valeriy-z/simplebank/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository over
// the append-only transactions table.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// Create appends a ledger entry inside tx and fills in its ID.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Tx, txn *domain.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO transactions (created_at, amount, transaction_type, description, internal, from_account, to_account)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	return pgxTx.QueryRow(ctx, query,
		timeToPgTimestamptz(txn.CreatedAt),
		decimalToNumeric(txn.Amount),
		txn.Type,
		txn.Description,
		txn.Internal,
		txn.FromAccountID,
		txn.ToAccountID,
	).Scan(&txn.ID)
}

const transactionColumns = `
	t.id, t.created_at, t.amount, t.transaction_type, t.description, t.internal,
	t.from_account, t.to_account, fa.account_number, ta.account_number
`

// ListByUser returns entries where either leg belongs to one of the
// user's accounts, newest first.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		LEFT JOIN accounts fa ON fa.id = t.from_account
		LEFT JOIN accounts ta ON ta.id = t.to_account
		WHERE fa.owner_id = $1 OR ta.owner_id = $1
		ORDER BY t.created_at DESC, t.id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// ListByAccount returns entries where the account is either leg,
// newest first.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		LEFT JOIN accounts fa ON fa.id = t.from_account
		LEFT JOIN accounts ta ON ta.id = t.to_account
		WHERE t.from_account = $1 OR t.to_account = $1
		ORDER BY t.created_at DESC, t.id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func collectTransactions(rows pgx.Rows) ([]*domain.Transaction, error) {
	var transactions []*domain.Transaction

	for rows.Next() {
		var (
			txn       domain.Transaction
			createdAt pgtype.Timestamptz
			amount    pgtype.Numeric
		)

		err := rows.Scan(
			&txn.ID,
			&createdAt,
			&amount,
			&txn.Type,
			&txn.Description,
			&txn.Internal,
			&txn.FromAccountID,
			&txn.ToAccountID,
			&txn.FromAccountNumber,
			&txn.ToAccountNumber,
		)
		if err != nil {
			return nil, err
		}

		txn.CreatedAt = createdAt.Time
		txn.Amount = numericToDecimal(amount)

		transactions = append(transactions, &txn)
	}

	return transactions, rows.Err()
}
