package bookrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/tranvhq/golibrary/internal/domain"
	"github.com/tranvhq/golibrary/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const bookColumns = `id, title, author, publisher, publish_year, coalesce(isbn, ''), description,
               category_id, total_copies, available_copies, is_active, created_at, updated_at`

func scanBook(row pgx.Row) (*domain.Book, error) {
	var book domain.Book
	err := row.Scan(
		&book.ID, &book.Title, &book.Author, &book.Publisher, &book.PublishYear,
		&book.ISBN, &book.Description, &book.CategoryID, &book.TotalCopies,
		&book.AvailableCopies, &book.IsActive, &book.CreatedAt, &book.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *Repository) GetByID(ctx context.Context, bookID int) (*domain.Book, error) {
	query := `
        SELECT ` + bookColumns + `
        FROM books
        WHERE id = $1
    `
	book, err := scanBook(r.db.QueryRow(ctx, query, bookID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find book", zap.Error(err))
		return nil, err
	}
	return book, nil
}

// TryReserve decrements available_copies by one iff the book is active and a
// copy remains. The conditional UPDATE makes check and decrement a single
// atomic step, so concurrent callers cannot both take the last copy.
func (r *Repository) TryReserve(ctx context.Context, bookID int) (bool, error) {
	query := `
        UPDATE books
        SET available_copies = available_copies - 1, updated_at = NOW()
        WHERE id = $1 AND is_active AND available_copies > 0
    `
	tag, err := r.db.Exec(ctx, query, bookID)
	if err != nil {
		zap.L().Error("can't reserve book copy", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// TryRelease increments available_copies by one iff it stays within
// total_copies. Returns false when the increment was clamped; the caller
// decides how loudly to complain.
func (r *Repository) TryRelease(ctx context.Context, bookID int) (bool, error) {
	query := `
        UPDATE books
        SET available_copies = available_copies + 1, updated_at = NOW()
        WHERE id = $1 AND available_copies < total_copies
    `
	tag, err := r.db.Exec(ctx, query, bookID)
	if err != nil {
		zap.L().Error("can't release book copy", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) FindActive(ctx context.Context) ([]domain.Book, error) {
	query := `
        SELECT ` + bookColumns + `
        FROM books
        WHERE is_active
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get books", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			zap.L().Error("can't scan book row", zap.Error(err))
			return nil, err
		}
		books = append(books, *book)
	}
	return books, nil
}

func (r *Repository) Create(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	query := `
        INSERT INTO books (title, author, publisher, publish_year, isbn, description,
                           category_id, total_copies, available_copies, is_active)
        VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $8, TRUE)
        RETURNING ` + bookColumns + `
	`
	created, err := scanBook(r.db.QueryRow(ctx, query,
		book.Title, book.Author, book.Publisher, book.PublishYear, book.ISBN,
		book.Description, book.CategoryID, book.TotalCopies,
	))
	if err != nil {
		zap.L().Error("can't create book", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// Update changes catalog fields. A change to total_copies shifts
// available_copies by the same delta so outstanding loans stay accounted
// for; the table constraint rejects a shrink below the number on loan.
func (r *Repository) Update(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	var updated *domain.Book
	query := `
        UPDATE books
        SET title = $2, author = $3, publisher = $4, publish_year = $5,
            isbn = NULLIF($6, ''), description = $7, category_id = $8,
            available_copies = available_copies + ($9 - total_copies),
            total_copies = $9, is_active = $10, updated_at = NOW()
        WHERE id = $1
        RETURNING ` + bookColumns + `
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		updated, err = scanBook(r.db.QueryRow(ctx, query,
			book.ID, book.Title, book.Author, book.Publisher, book.PublishYear,
			book.ISBN, book.Description, book.CategoryID, book.TotalCopies, book.IsActive,
		))
		if err != nil {
			zap.L().Error("can't update book", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Repository) FindCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
        SELECT id, name, is_active
        FROM categories
        WHERE is_active
        ORDER BY name
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get categories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.IsActive); err != nil {
			zap.L().Error("can't scan category row", zap.Error(err))
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func (r *Repository) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	query := `
        INSERT INTO categories (name)
        VALUES ($1)
        RETURNING id, name, is_active
    `
	var c domain.Category
	err := r.db.QueryRow(ctx, query, name).Scan(&c.ID, &c.Name, &c.IsActive)
	if err != nil {
		zap.L().Error("can't create category", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *Repository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM books WHERE is_active`).Scan(&count)
	if err != nil {
		zap.L().Error("can't count books", zap.Error(err))
		return 0, err
	}
	return count, nil
}
