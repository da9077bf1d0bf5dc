package db

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/markdave123-py/healthsense/internal/models"
)

// Child tables first: none of the foreign keys cascade.
var accountTables = []string{"chat_messages", "diets", "lifestyles", "medications", "symptoms"}

// DeleteAccount removes every record the user owns and then the user row, all in
// one transaction. Any failure leaves the account untouched.
func (c *DatabaseClient) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	return c.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := QuerierFromCtx(ctx, c.pool)

		for _, table := range accountTables {
			query, args, err := psql.Delete(table).Where(sq.Eq{"user_id": userID}).ToSql()
			if err != nil {
				return fmt.Errorf("build delete %s: %w", table, err)
			}
			if _, err := q.Exec(ctx, query, args...); err != nil {
				return mapError(err, "delete "+table+" for user", userID)
			}
		}

		query, args, err := psql.Delete("users").Where(sq.Eq{"id": userID}).ToSql()
		if err != nil {
			return fmt.Errorf("build delete user: %w", err)
		}
		tag, err := q.Exec(ctx, query, args...)
		if err != nil {
			return mapError(err, "user", userID)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("user %s: %w", userID, models.ErrNotFound)
		}
		return nil
	})
}
