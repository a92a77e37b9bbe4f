package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/ticket-service/internal/domain"
)

const roomComponentsQuery = `SELECT room_id, pricing_component_id
	FROM room_pricing_components
	WHERE room_id = ANY($1)`

type PostgresRoomRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRoomRepository(db *pgxpool.Pool) *PostgresRoomRepository {
	return &PostgresRoomRepository{
		db: db,
	}
}

func (p *PostgresRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	query := `INSERT INTO rooms (name, row_count, column_count)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := p.db.QueryRow(ctx, query, room.Name, room.Rows, room.Columns).Scan(&room.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}

		return err
	}

	return nil
}

func (p *PostgresRoomRepository) GetByName(ctx context.Context, name string) (*domain.Room, error) {
	query := `SELECT id, name, row_count, column_count
		FROM rooms
		WHERE name = $1`

	var room domain.Room

	err := p.db.QueryRow(ctx, query, name).Scan(
		&room.ID,
		&room.Name,
		&room.Rows,
		&room.Columns,
	)
	if err != nil {
		return nil, notFoundOr(err)
	}

	sets, err := componentIds(ctx, p.db, roomComponentsQuery, []int{room.ID})
	if err != nil {
		return nil, err
	}

	room.PricingComponents = sets[room.ID]

	return &room, nil
}

func (p *PostgresRoomRepository) GetAll(ctx context.Context) ([]domain.Room, error) {
	query := `SELECT id, name, row_count, column_count
		FROM rooms
		ORDER BY id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := []domain.Room{}
	ids := []int{}

	for rows.Next() {
		var room domain.Room

		err := rows.Scan(
			&room.ID,
			&room.Name,
			&room.Rows,
			&room.Columns,
		)
		if err != nil {
			return nil, err
		}

		rooms = append(rooms, room)
		ids = append(ids, room.ID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	sets, err := componentIds(ctx, p.db, roomComponentsQuery, ids)
	if err != nil {
		return nil, err
	}

	for i := range rooms {
		rooms[i].PricingComponents = sets[rooms[i].ID]
	}

	return rooms, nil
}

func (p *PostgresRoomRepository) Update(ctx context.Context, room *domain.Room) error {
	query := `UPDATE rooms
		SET row_count = $1, column_count = $2
		WHERE id = $3`

	tag, err := p.db.Exec(ctx, query, room.Rows, room.Columns, room.ID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresRoomRepository) Delete(ctx context.Context, room *domain.Room) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, room.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return &domain.InUseError{Entity: "room"}
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresRoomRepository) AttachPricingComponent(ctx context.Context, roomID, componentID int) error {
	query := `INSERT INTO room_pricing_components (room_id, pricing_component_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`

	_, err := p.db.Exec(ctx, query, roomID, componentID)

	return err
}
