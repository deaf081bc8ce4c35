// File: internal/store/user.go
package store

import (
	"context"
	"errors"
	"strings"

	"userdesk/internal/database"
	"userdesk/internal/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/oops"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateName = errors.New("duplicate user name")
)

const userColumns = `id, name, password, created_at, updated_at`

// UserStore 以 database.DB 實作使用者的持久化
type UserStore struct {
	db database.DB
}

func NewUserStore(db database.DB) *UserStore {
	return &UserStore{db: db}
}

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Password,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return u, nil
}

// likePattern 把輸入當作字面子字串，跳脫 LIKE 的萬用字元
func likePattern(name string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(name) + "%"
}

func (s *UserStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n); err != nil {
		return 0, oops.Code("USER_COUNT_FAILED").Wrap(err)
	}
	return n, nil
}

func (s *UserStore) CountByName(ctx context.Context, name string) (int, error) {
	var n int
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM users WHERE name = $1`, name).Scan(&n); err != nil {
		return 0, oops.Code("USER_COUNT_FAILED").With("name", name).Wrap(err)
	}
	return n, nil
}

// CountMatching 回傳名稱包含 name 的筆數；name 空白時等同 Count
func (s *UserStore) CountMatching(ctx context.Context, name string) (int, error) {
	if strings.TrimSpace(name) == "" {
		return s.Count(ctx)
	}
	var n int
	if err := s.db.QueryRow(ctx,
		`SELECT count(*) FROM users WHERE name LIKE $1 ESCAPE '\'`,
		likePattern(name),
	).Scan(&n); err != nil {
		return 0, oops.Code("USER_COUNT_FAILED").With("pattern", name).Wrap(err)
	}
	return n, nil
}

func (s *UserStore) FindByID(ctx context.Context, id int) (*model.User, error) {
	u, err := scanUser(s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("USER_NOT_FOUND").With("id", id).Wrap(ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("USER_GET_FAILED").With("id", id).Wrap(err)
	}
	return u, nil
}

func (s *UserStore) FindByName(ctx context.Context, name string) (*model.User, error) {
	u, err := scanUser(s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE name = $1`, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("USER_NOT_FOUND").With("name", name).Wrap(ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("USER_GET_FAILED").With("name", name).Wrap(err)
	}
	return u, nil
}

// Insert 寫入新使用者並回填 id 與時間戳
func (s *UserStore) Insert(ctx context.Context, u *model.User) (*model.User, error) {
	row := s.db.QueryRow(ctx,
		`INSERT INTO users (name, password)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		u.Name,
		u.Password,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, oops.Code("USER_NAME_TAKEN").With("name", u.Name).Wrap(ErrDuplicateName)
		}
		return nil, oops.Code("USER_INSERT_FAILED").With("name", u.Name).Wrap(err)
	}
	return u, nil
}

func (s *UserStore) UpdatePassword(ctx context.Context, id int, password string) error {
	_, err := s.db.Exec(ctx,
		`UPDATE users
		 SET password = $1, updated_at = NOW()
		 WHERE id = $2`,
		password,
		id,
	)
	if err != nil {
		return oops.Code("USER_UPDATE_PASSWORD_FAILED").With("id", id).Wrap(err)
	}
	return nil
}

// DeleteWithProfile 在 READ COMMITTED 交易中刪除使用者及其 profile，回傳刪除的使用者筆數
func (s *UserStore) DeleteWithProfile(ctx context.Context, id int) (int64, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return 0, oops.Code("USER_DELETE_FAILED").With("id", id).With("operation", "begin").Wrap(err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM user_profiles WHERE user_id = $1`, id); err != nil {
		_ = tx.Rollback(ctx)
		return 0, oops.Code("USER_DELETE_FAILED").With("id", id).With("operation", "delete profiles").Wrap(err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		_ = tx.Rollback(ctx)
		return 0, oops.Code("USER_DELETE_FAILED").With("id", id).With("operation", "delete user").Wrap(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, oops.Code("USER_DELETE_FAILED").With("id", id).With("operation", "commit").Wrap(err)
	}
	return tag.RowsAffected(), nil
}

// Query 依 id 排序回傳一頁使用者，name 非空白時以子字串過濾
func (s *UserStore) Query(ctx context.Context, name string, p *model.Pager) ([]model.User, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if strings.TrimSpace(name) == "" {
		rows, err = s.db.Query(ctx,
			`SELECT `+userColumns+` FROM users ORDER BY id LIMIT $1 OFFSET $2`,
			p.PageSize, p.Offset())
	} else {
		rows, err = s.db.Query(ctx,
			`SELECT `+userColumns+` FROM users WHERE name LIKE $1 ESCAPE '\' ORDER BY id LIMIT $2 OFFSET $3`,
			likePattern(name), p.PageSize, p.Offset())
	}
	if err != nil {
		return nil, oops.Code("USER_QUERY_FAILED").With("pattern", name).Wrap(err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, oops.Code("USER_QUERY_FAILED").With("pattern", name).Wrap(err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.Code("USER_QUERY_FAILED").With("pattern", name).Wrap(err)
	}
	return users, nil
}
