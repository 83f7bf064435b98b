package store

import (
	"context"
	"fmt"
	"time"

	"bibliophile/internal/booklist"
	"bibliophile/internal/entity"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BookListPG holds named lists and their membership rows. List edits are
// partial, so this store builds its statements with goqu instead of the
// fixed-text SQL used elsewhere.
type BookListPG struct {
	db *pgxpool.Pool
	g  goqu.DialectWrapper
}

func NewBookListPG(db *pgxpool.Pool) *BookListPG {
	return &BookListPG{db: db, g: goqu.Dialect("postgres")}
}

type pgxBookList struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	IsPublic    bool      `db:"is_public"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (row pgxBookList) toEntity() entity.BookList {
	return entity.BookList{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		IsPublic:    row.IsPublic,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func (r *BookListPG) ListByUser(ctx context.Context, userID string) ([]entity.BookList, error) {
	sql, params, err := r.g.From("book_lists").
		Select("id", "user_id", "name", "description", "is_public", "created_at", "updated_at").
		Where(goqu.C("user_id").Eq(userID)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, err
	}

	var rows []pgxBookList
	if err := pgxscan.Select(ctx, r.db, &rows, sql, params...); err != nil {
		return nil, err
	}

	lists := make([]entity.BookList, 0, len(rows))
	for _, row := range rows {
		lists = append(lists, row.toEntity())
	}
	return lists, nil
}

func (r *BookListPG) Insert(ctx context.Context, userID, name, description string, isPublic bool) (entity.BookList, error) {
	now := time.Now().UTC()
	sql, params, err := r.g.Insert("book_lists").
		Rows(goqu.Record{
			"id":          uuid.New().String(),
			"user_id":     userID,
			"name":        name,
			"description": description,
			"is_public":   isPublic,
			"created_at":  now,
			"updated_at":  now,
		}).
		Returning("id", "user_id", "name", "description", "is_public", "created_at", "updated_at").
		Prepared(true).
		ToSQL()
	if err != nil {
		return entity.BookList{}, err
	}

	var row pgxBookList
	if err := pgxscan.Get(ctx, r.db, &row, sql, params...); err != nil {
		return entity.BookList{}, fmt.Errorf("insert list: %w", err)
	}
	return row.toEntity(), nil
}

func (r *BookListPG) Update(ctx context.Context, userID, listID string, fields booklist.UpdateFields) error {
	record := goqu.Record{"updated_at": time.Now().UTC()}
	if fields.Name != nil {
		record["name"] = *fields.Name
	}
	if fields.Description != nil {
		record["description"] = *fields.Description
	}
	if fields.IsPublic != nil {
		record["is_public"] = *fields.IsPublic
	}

	sql, params, err := r.g.Update("book_lists").
		Set(record).
		Where(goqu.C("id").Eq(listID), goqu.C("user_id").Eq(userID)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return err
	}

	commandTag, err := r.db.Exec(ctx, sql, params...)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BookListPG) Delete(ctx context.Context, userID, listID string) error {
	sql, params, err := r.g.Delete("book_lists").
		Where(goqu.C("id").Eq(listID), goqu.C("user_id").Eq(userID)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return err
	}

	commandTag, err := r.db.Exec(ctx, sql, params...)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BookListPG) CountBooks(ctx context.Context, listID string) (int, error) {
	sql, params, err := r.g.From("list_books").
		Select(goqu.COUNT("*")).
		Where(goqu.C("list_id").Eq(listID)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, params...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BookListPG) MembershipExists(ctx context.Context, listID, bookID string) (bool, error) {
	sql, params, err := r.g.From("list_books").
		Select(goqu.COUNT("*")).
		Where(goqu.C("list_id").Eq(listID), goqu.C("book_id").Eq(bookID)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return false, err
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, params...).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookListPG) InsertMembership(ctx context.Context, listID, bookID string) error {
	sql, params, err := r.g.Insert("list_books").
		Rows(goqu.Record{
			"list_id":  listID,
			"book_id":  bookID,
			"added_at": time.Now().UTC(),
		}).
		Prepared(true).
		ToSQL()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, sql, params...); err != nil {
		return fmt.Errorf("insert membership: %w", err)
	}
	return nil
}

func (r *BookListPG) DeleteMembership(ctx context.Context, listID, bookID string) error {
	sql, params, err := r.g.Delete("list_books").
		Where(goqu.C("list_id").Eq(listID), goqu.C("book_id").Eq(bookID)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, sql, params...); err != nil {
		return err
	}
	return nil
}

func (r *BookListPG) ListBookIDs(ctx context.Context, listID string) ([]string, error) {
	sql, params, err := r.g.From("list_books").
		Select("book_id").
		Where(goqu.C("list_id").Eq(listID)).
		Order(goqu.C("added_at").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := pgxscan.Select(ctx, r.db, &ids, sql, params...); err != nil {
		return nil, err
	}
	return ids, nil
}
