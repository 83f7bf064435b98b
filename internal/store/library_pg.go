package store

import (
	"context"
	"errors"
	"fmt"

	"bibliophile/internal/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrDuplicateBook = errors.New("book already in library")

// LibraryPG holds per-user saved books. Every statement carries an explicit
// user_id filter; row operations add the book_id.
type LibraryPG struct {
	db *pgxpool.Pool
}

func NewLibraryPG(db *pgxpool.Pool) *LibraryPG {
	return &LibraryPG{db: db}
}

func (r *LibraryPG) ListByUser(ctx context.Context, userID string) ([]entity.Book, error) {
	const selectSQL = `
		SELECT book_id, title, authors, description, categories,
		       thumbnail, small_thumbnail, published_date, publisher,
		       page_count, is_read, date_added, notes, rating
		FROM user_books
		WHERE user_id = $1
	`
	rows, err := r.db.Query(ctx, selectSQL, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []entity.Book
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Authors, &b.Description, &b.Categories,
			&b.ImageLinks.Thumbnail, &b.ImageLinks.SmallThumbnail,
			&b.PublishedDate, &b.Publisher,
			&b.PageCount, &b.IsRead, &b.DateAdded, &b.Notes, &b.Rating,
		); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *LibraryPG) Insert(ctx context.Context, userID string, b entity.Book) error {
	const insertSQL = `
		INSERT INTO user_books
			(user_id, book_id, title, authors, description, categories,
			 thumbnail, small_thumbnail, published_date, publisher,
			 page_count, is_read, date_added, notes, rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.db.Exec(ctx, insertSQL,
		userID, b.ID, b.Title, b.Authors, b.Description, b.Categories,
		b.ImageLinks.Thumbnail, b.ImageLinks.SmallThumbnail,
		b.PublishedDate, b.Publisher,
		b.PageCount, b.IsRead, b.DateAdded, b.Notes, b.Rating,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateBook
		}
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

func (r *LibraryPG) Delete(ctx context.Context, userID, bookID string) error {
	const deleteSQL = `
		DELETE FROM user_books
		WHERE user_id = $1 AND book_id = $2
	`
	commandTag, err := r.db.Exec(ctx, deleteSQL, userID, bookID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *LibraryPG) SetRead(ctx context.Context, userID, bookID string, read bool) error {
	return r.setColumn(ctx, userID, bookID, "is_read", read)
}

func (r *LibraryPG) SetNotes(ctx context.Context, userID, bookID, notes string) error {
	return r.setColumn(ctx, userID, bookID, "notes", notes)
}

func (r *LibraryPG) SetRating(ctx context.Context, userID, bookID string, rating int) error {
	return r.setColumn(ctx, userID, bookID, "rating", rating)
}

// setColumn writes one column of one (user, book) row. Column names come
// from the three callers above, never from input.
func (r *LibraryPG) setColumn(ctx context.Context, userID, bookID, column string, value any) error {
	updateSQL := fmt.Sprintf(`
		UPDATE user_books
		SET %s = $3
		WHERE user_id = $1 AND book_id = $2
	`, column)
	commandTag, err := r.db.Exec(ctx, updateSQL, userID, bookID, value)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
