package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/db"
)

type PostgresProductRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

func NewProductRepository(pg *db.PostgresDB) *PostgresProductRepository {
	return &PostgresProductRepository{db: pg, sb: statementBuilder()}
}

func (r *PostgresProductRepository) Create(ctx context.Context, product *models.Product) error {
	sql, args, err := r.sb.Insert("products").
		Columns("name", "description", "price", "student_id").
		Values(product.Name, product.Description, product.Price, product.StudentID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create product query: %w", err)
	}
	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&product.ID); err != nil {
		return fmt.Errorf("error creating product: %w", err)
	}
	return nil
}

func (r *PostgresProductRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Product, error) {
	sql, args, err := r.sb.Select("id", "name", "description", "price", "student_id").
		From("products").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list products query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.StudentID); err != nil {
			return nil, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}
