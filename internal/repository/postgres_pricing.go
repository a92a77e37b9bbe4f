package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/ticket-service/internal/domain"
)

type PostgresPricingComponentRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPricingComponentRepository(db *pgxpool.Pool) *PostgresPricingComponentRepository {
	return &PostgresPricingComponentRepository{
		db: db,
	}
}

func (p *PostgresPricingComponentRepository) Create(ctx context.Context, component *domain.PricingComponent) error {
	query := `INSERT INTO pricing_components (name, amount)
		VALUES ($1, $2)
		RETURNING id`

	err := p.db.QueryRow(ctx, query, component.Name, component.Amount).Scan(&component.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}

		return err
	}

	return nil
}

func (p *PostgresPricingComponentRepository) GetByName(ctx context.Context, name string) (*domain.PricingComponent, error) {
	query := `SELECT id, name, amount FROM pricing_components WHERE name = $1`

	var component domain.PricingComponent

	err := p.db.QueryRow(ctx, query, name).Scan(&component.ID, &component.Name, &component.Amount)
	if err != nil {
		return nil, notFoundOr(err)
	}

	return &component, nil
}

func (p *PostgresPricingComponentRepository) GetByIDs(ctx context.Context, ids []int) ([]domain.PricingComponent, error) {
	query := `SELECT id, name, amount
		FROM pricing_components
		WHERE id = ANY($1)
		ORDER BY id`

	rows, err := p.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	components := make([]domain.PricingComponent, 0, len(ids))

	for rows.Next() {
		var component domain.PricingComponent

		err = rows.Scan(&component.ID, &component.Name, &component.Amount)
		if err != nil {
			return nil, err
		}

		components = append(components, component)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return components, nil
}
