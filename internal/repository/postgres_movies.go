package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/ticket-service/internal/domain"
)

const movieComponentsQuery = `SELECT movie_id, pricing_component_id
	FROM movie_pricing_components
	WHERE movie_id = ANY($1)`

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `INSERT INTO movies (title, genre, runtime)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := p.db.QueryRow(ctx, query, movie.Title, movie.Genre, movie.Runtime).Scan(&movie.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}

		return err
	}

	return nil
}

func (p *PostgresMovieRepository) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	query := `SELECT id, title, genre, runtime
		FROM movies
		WHERE title = $1`

	var movie domain.Movie

	err := p.db.QueryRow(ctx, query, title).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Genre,
		&movie.Runtime,
	)
	if err != nil {
		return nil, notFoundOr(err)
	}

	sets, err := componentIds(ctx, p.db, movieComponentsQuery, []int{movie.ID})
	if err != nil {
		return nil, err
	}

	movie.PricingComponents = sets[movie.ID]

	return &movie, nil
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context) ([]domain.Movie, error) {
	query := `SELECT id, title, genre, runtime
		FROM movies
		ORDER BY id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []domain.Movie{}
	ids := []int{}

	for rows.Next() {
		var movie domain.Movie

		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Genre,
			&movie.Runtime,
		)
		if err != nil {
			return nil, err
		}

		movies = append(movies, movie)
		ids = append(ids, movie.ID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	sets, err := componentIds(ctx, p.db, movieComponentsQuery, ids)
	if err != nil {
		return nil, err
	}

	for i := range movies {
		movies[i].PricingComponents = sets[movies[i].ID]
	}

	return movies, nil
}

func (p *PostgresMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	query := `UPDATE movies
		SET genre = $1, runtime = $2
		WHERE id = $3`

	tag, err := p.db.Exec(ctx, query, movie.Genre, movie.Runtime, movie.ID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresMovieRepository) Delete(ctx context.Context, movie *domain.Movie) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, movie.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return &domain.InUseError{Entity: "movie"}
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresMovieRepository) AttachPricingComponent(ctx context.Context, movieID, componentID int) error {
	query := `INSERT INTO movie_pricing_components (movie_id, pricing_component_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`

	_, err := p.db.Exec(ctx, query, movieID, componentID)

	return err
}
