package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"

	"damper-takip/internal/storage"
)

var ErrUserExists = errors.New("kullanıcı zaten mevcut")

func (s *Storage) GetUsers(ctx context.Context) ([]*storage.User, error) {
	const op = "storage.mysql.GetUsers"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, username, password_hash, full_name, is_admin, created_at FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var users []*storage.User
	for rows.Next() {
		var u storage.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FullName, &u.IsAdmin, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		users = append(users, &u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return users, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*storage.User, error) {
	const op = "storage.mysql.GetUserByUsername"

	var u storage.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, full_name, is_admin, created_at FROM users WHERE username = ?`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FullName, &u.IsAdmin, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

func (s *Storage) SaveUser(ctx context.Context, u *storage.User) (int64, error) {
	const op = "storage.mysql.SaveUser"

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, full_name, is_admin, created_at) VALUES (?, ?, ?, ?, NOW())`,
		u.Username, u.PasswordHash, u.FullName, u.IsAdmin)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return 0, fmt.Errorf("%s: %w", op, ErrUserExists)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

func (s *Storage) UpdateUser(ctx context.Context, id int64, u storage.UserUpdate) error {
	const op = "storage.mysql.UpdateUser"

	var c setClause
	if u.FullName != nil {
		c.set("full_name", *u.FullName)
	}
	if u.IsAdmin != nil {
		c.set("is_admin", *u.IsAdmin)
	}
	if u.PasswordHash != nil {
		c.set("password_hash", *u.PasswordHash)
	}
	if c.empty() {
		return nil
	}

	stmt := `UPDATE users SET ` + strings.Join(c.cols, ", ") + ` WHERE id = ?`
	args := append(c.args, id)

	res, err := s.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

func (s *Storage) DeleteUser(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteUser"

	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

func (s *Storage) SaveLoginLog(ctx context.Context, l *storage.LoginLog) error {
	const op = "storage.mysql.SaveLoginLog"

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO login_logs (user_id, username, full_name, ip_address, login_at) VALUES (?, ?, ?, ?, NOW())`,
		l.UserID, l.Username, l.FullName, l.IPAddress)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Storage) GetLoginLogs(ctx context.Context, limit int) ([]*storage.LoginLog, error) {
	const op = "storage.mysql.GetLoginLogs"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, username, full_name, ip_address, login_at FROM login_logs ORDER BY login_at DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var logs []*storage.LoginLog
	for rows.Next() {
		var l storage.LoginLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Username, &l.FullName, &l.IPAddress, &l.LoginAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		logs = append(logs, &l)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return logs, nil
}
