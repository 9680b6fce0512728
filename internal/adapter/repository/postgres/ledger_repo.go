package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/valeriy-z/simplebank/internal/domain"
)

// LedgerRepository implements usecase.LedgerRepository.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// FindBalanceMismatches returns accounts whose stored balance differs
// from the sum of deposits minus the sum of withdrawals in the ledger.
func (r *LedgerRepository) FindBalanceMismatches(ctx context.Context) ([]domain.BalanceMismatch, error) {
	query := `
		WITH ledger AS (
			SELECT a.id,
			       a.account_number,
			       a.balance,
			       COALESCE((
			           SELECT SUM(t.amount) FROM transactions t
			           WHERE t.to_account = a.id AND t.transaction_type = 'deposit'
			       ), 0)
			       -
			       COALESCE((
			           SELECT SUM(t.amount) FROM transactions t
			           WHERE t.from_account = a.id AND t.transaction_type = 'withdrawal'
			       ), 0) AS ledger_sum
			FROM accounts a
		)
		SELECT account_number, balance, ledger_sum
		FROM ledger
		WHERE balance <> ledger_sum
		ORDER BY account_number
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mismatches []domain.BalanceMismatch
	for rows.Next() {
		var (
			mismatch  domain.BalanceMismatch
			balance   pgtype.Numeric
			ledgerSum pgtype.Numeric
		)

		if err := rows.Scan(&mismatch.AccountNumber, &balance, &ledgerSum); err != nil {
			return nil, err
		}

		mismatch.Balance = numericToDecimal(balance)
		mismatch.LedgerSum = numericToDecimal(ledgerSum)

		mismatches = append(mismatches, mismatch)
	}

	return mismatches, rows.Err()
}
