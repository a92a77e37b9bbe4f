package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/ticket-service/internal/domain"
)

// roomLockNamespace is the first key of the two-key advisory lock taken while
// scheduling into a room; the second key is the room id.
const roomLockNamespace = 1001

const screeningColumns = `SELECT s.id, s.start_time,
		m.id, m.title, m.genre, m.runtime,
		r.id, r.name, r.row_count, r.column_count
	FROM screenings s
	JOIN movies m ON m.id = s.movie_id
	JOIN rooms r ON r.id = s.room_id`

const screeningComponentsQuery = `SELECT screening_id, pricing_component_id
	FROM screening_pricing_components
	WHERE screening_id = ANY($1)`

type PostgresScreeningRepository struct {
	db *pgxpool.Pool
}

func NewPostgresScreeningRepository(db *pgxpool.Pool) *PostgresScreeningRepository {
	return &PostgresScreeningRepository{
		db: db,
	}
}

func (p *PostgresScreeningRepository) CreateChecked(
	ctx context.Context,
	screening *domain.Screening,
	check func(existing []domain.Screening) error) error {

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1, $2)`, roomLockNamespace, screening.RoomID)
		if err != nil {
			return err
		}

		existing, err := p.list(ctx, tx, screeningColumns+` WHERE s.room_id = $1 ORDER BY s.start_time`, screening.RoomID)
		if err != nil {
			return err
		}

		err = check(existing)
		if err != nil {
			return err
		}

		query := `INSERT INTO screenings (movie_id, room_id, start_time)
			VALUES ($1, $2, $3)
			RETURNING id`

		err = tx.QueryRow(ctx, query, screening.MovieID, screening.RoomID, screening.StartTime).Scan(&screening.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrAlreadyExists
			}

			return err
		}

		return nil
	})
}

func (p *PostgresScreeningRepository) GetByKey(ctx context.Context, key domain.ScreeningKey) (*domain.Screening, error) {
	query := screeningColumns + ` WHERE m.title = $1 AND r.name = $2 AND s.start_time = $3`

	screenings, err := p.list(ctx, p.db, query, key.MovieTitle, key.RoomName, key.StartTime)
	if err != nil {
		return nil, err
	}

	if len(screenings) == 0 {
		return nil, domain.ErrRecordNotFound
	}

	return &screenings[0], nil
}

func (p *PostgresScreeningRepository) GetAll(ctx context.Context) ([]domain.Screening, error) {
	return p.list(ctx, p.db, screeningColumns+` ORDER BY s.start_time, r.name`)
}

func (p *PostgresScreeningRepository) Delete(ctx context.Context, screening *domain.Screening) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM screenings WHERE id = $1`, screening.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return &domain.InUseError{Entity: "screening"}
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresScreeningRepository) AttachPricingComponent(ctx context.Context, screeningID, componentID int) error {
	query := `INSERT INTO screening_pricing_components (screening_id, pricing_component_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`

	_, err := p.db.Exec(ctx, query, screeningID, componentID)

	return err
}

// list runs a screeningColumns query and resolves the component sets of every
// screening together with those of its movie and room.
func (p *PostgresScreeningRepository) list(ctx context.Context, q querier, query string, args ...any) ([]domain.Screening, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	screenings := []domain.Screening{}

	for rows.Next() {
		var s domain.Screening

		err = rows.Scan(
			&s.ID,
			&s.StartTime,
			&s.Movie.ID,
			&s.Movie.Title,
			&s.Movie.Genre,
			&s.Movie.Runtime,
			&s.Room.ID,
			&s.Room.Name,
			&s.Room.Rows,
			&s.Room.Columns,
		)
		if err != nil {
			return nil, err
		}

		s.MovieID = s.Movie.ID
		s.RoomID = s.Room.ID

		screenings = append(screenings, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(screenings) == 0 {
		return screenings, nil
	}

	screeningIds := make([]int, len(screenings))
	movieIds := make([]int, len(screenings))
	roomIds := make([]int, len(screenings))

	for i, s := range screenings {
		screeningIds[i] = s.ID
		movieIds[i] = s.MovieID
		roomIds[i] = s.RoomID
	}

	screeningSets, err := componentIds(ctx, q, screeningComponentsQuery, screeningIds)
	if err != nil {
		return nil, err
	}

	movieSets, err := componentIds(ctx, q, movieComponentsQuery, movieIds)
	if err != nil {
		return nil, err
	}

	roomSets, err := componentIds(ctx, q, roomComponentsQuery, roomIds)
	if err != nil {
		return nil, err
	}

	for i := range screenings {
		screenings[i].PricingComponents = screeningSets[screenings[i].ID]
		screenings[i].Movie.PricingComponents = movieSets[screenings[i].MovieID]
		screenings[i].Room.PricingComponents = roomSets[screenings[i].RoomID]
	}

	return screenings, nil
}
