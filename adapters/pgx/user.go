package pgx

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gabrie-lhilarion/authd/core"
)

func (a *Adapter) Insert(ctx context.Context, email, passwordHash string) (*core.User, error) {
	query := `INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING id`

	user := &core.User{Email: email, PasswordHash: passwordHash}
	err := a.pool.QueryRow(ctx, query, email, passwordHash).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, core.ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

func (a *Adapter) FindByID(ctx context.Context, id int64) (*core.User, error) {
	return a.findOne(ctx, "id", id)
}

func (a *Adapter) FindByEmail(ctx context.Context, email string) (*core.User, error) {
	return a.findOne(ctx, "email", email)
}

func (a *Adapter) FindBySessionID(ctx context.Context, sessionID string) (*core.User, error) {
	return a.findOne(ctx, "session_id", sessionID)
}

func (a *Adapter) FindByResetToken(ctx context.Context, resetToken string) (*core.User, error) {
	return a.findOne(ctx, "reset_token", resetToken)
}

// findOne loads a row by one of the indexed user columns. The column
// name is always one of the four constants above, never caller input.
func (a *Adapter) findOne(ctx context.Context, column string, value any) (*core.User, error) {
	query := `SELECT id, email, password_hash, session_id, reset_token FROM users WHERE ` + column + ` = $1`

	user := &core.User{}
	err := a.pool.QueryRow(ctx, query, value).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.SessionID, &user.ResetToken,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

func (a *Adapter) Update(ctx context.Context, id int64, upd core.UserUpdate) error {
	set := make([]string, 0, 3)
	args := []any{id}
	assign := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.PasswordHash != nil {
		assign("password_hash", *upd.PasswordHash)
	}
	switch {
	case upd.SessionID != nil:
		assign("session_id", *upd.SessionID)
	case upd.ClearSessionID:
		assign("session_id", nil)
	}
	switch {
	case upd.ResetToken != nil:
		assign("reset_token", *upd.ResetToken)
	case upd.ClearResetToken:
		assign("reset_token", nil)
	}

	if len(set) == 0 {
		return nil
	}

	query := `UPDATE users SET ` + strings.Join(set, ", ") + ` WHERE id = $1`
	tag, err := a.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrUserNotFound
	}

	return nil
}
