package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/ticket-service/internal/domain"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO bookings (reference, user_id, screening_id, price, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`

		err := tx.QueryRow(
			ctx,
			query,
			booking.Reference,
			booking.UserID,
			booking.ScreeningID,
			booking.Price,
			booking.CreatedAt).Scan(&booking.ID)

		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(booking.Seats))
		for i, seat := range booking.Seats {
			rows = append(rows, []any{
				booking.ID,
				booking.ScreeningID,
				seat,
				i,
			})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"booked_seats"},
			[]string{"booking_id", "screening_id", "seat", "position"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return &domain.SeatTakenError{}
			}

			return err
		}

		return nil
	})
}

func (p *PostgresBookingRepository) IsSeatTaken(ctx context.Context, screeningID int, seat string) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM booked_seats WHERE screening_id = $1 AND seat = $2
	)`

	var taken bool

	err := p.db.QueryRow(ctx, query, screeningID, seat).Scan(&taken)
	if err != nil {
		return false, err
	}

	return taken, nil
}

func (p *PostgresBookingRepository) GetAllByUserId(ctx context.Context, userID int) ([]domain.Booking, error) {
	query := `
		SELECT
			b.id,
			b.reference,
			b.user_id,
			u.username,
			b.screening_id,
			b.price,
			b.created_at,
			s.start_time,
			m.id,
			m.title,
			m.genre,
			m.runtime,
			r.id,
			r.name,
			r.row_count,
			r.column_count,
			ARRAY(
				SELECT bs.seat FROM booked_seats bs
				WHERE bs.booking_id = b.id
				ORDER BY bs.position
			)
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		JOIN screenings s ON s.id = b.screening_id
		JOIN movies m ON m.id = s.movie_id
		JOIN rooms r ON r.id = s.room_id
		WHERE b.user_id = $1
		ORDER BY b.created_at, b.id
	`

	rows, err := p.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking

		err := rows.Scan(
			&b.ID,
			&b.Reference,
			&b.UserID,
			&b.Username,
			&b.ScreeningID,
			&b.Price,
			&b.CreatedAt,
			&b.Screening.StartTime,
			&b.Screening.Movie.ID,
			&b.Screening.Movie.Title,
			&b.Screening.Movie.Genre,
			&b.Screening.Movie.Runtime,
			&b.Screening.Room.ID,
			&b.Screening.Room.Name,
			&b.Screening.Room.Rows,
			&b.Screening.Room.Columns,
			&b.Seats,
		)
		if err != nil {
			return nil, err
		}

		b.Screening.ID = b.ScreeningID
		b.Screening.MovieID = b.Screening.Movie.ID
		b.Screening.RoomID = b.Screening.Room.ID

		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}
