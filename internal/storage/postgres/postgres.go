package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fitnessBooker/internal/config"
	"fitnessBooker/internal/models"
	"fitnessBooker/internal/storage"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = initSchema(db); err != nil {
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return &Storage{DB: db}, nil
}

func initSchema(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS fitness_classes (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			instructor VARCHAR(100) NOT NULL,
			start_time TIMESTAMPTZ NOT NULL,
			end_time TIMESTAMPTZ NOT NULL,
			timezone VARCHAR(50) NOT NULL DEFAULT 'UTC',
			capacity INT NOT NULL CHECK (capacity > 0),
			booked_count INT NOT NULL DEFAULT 0 CHECK (booked_count >= 0 AND booked_count <= capacity),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS bookings (
			id UUID PRIMARY KEY,
			fitness_class_id INT NOT NULL REFERENCES fitness_classes (id) ON DELETE CASCADE,
			client_name VARCHAR(100) NOT NULL,
			client_email VARCHAR(255) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (client_email, fitness_class_id)
		);

		CREATE INDEX IF NOT EXISTS idx_fitness_classes_start_time ON fitness_classes (start_time);
		CREATE INDEX IF NOT EXISTS idx_bookings_client_email ON bookings (client_email);`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

const classColumns = `id, name, description, instructor, start_time, end_time, timezone, capacity, booked_count, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanClass(row rowScanner, class *models.FitnessClass) error {
	return row.Scan(
		&class.ID,
		&class.Name,
		&class.Description,
		&class.Instructor,
		&class.StartTime,
		&class.EndTime,
		&class.Timezone,
		&class.Capacity,
		&class.BookedCount,
		&class.CreatedAt,
		&class.UpdatedAt,
	)
}

func (s *Storage) CreateClass(ctx context.Context, class models.FitnessClass) (*models.FitnessClass, error) {
	query := `
		INSERT INTO fitness_classes (name, description, instructor, start_time, end_time, timezone, capacity)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, booked_count, created_at, updated_at`

	err := s.DB.QueryRowContext(ctx, query,
		class.Name,
		class.Description,
		class.Instructor,
		class.StartTime,
		class.EndTime,
		class.Timezone,
		class.Capacity,
	).Scan(&class.ID, &class.BookedCount, &class.CreatedAt, &class.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create fitness class: %w", err)
	}

	return &class, nil
}

func (s *Storage) GetClass(ctx context.Context, id int) (*models.FitnessClass, error) {
	query := `
		SELECT ` + classColumns + `
		FROM fitness_classes
		WHERE id = $1`

	var class models.FitnessClass
	err := scanClass(s.DB.QueryRowContext(ctx, query, id), &class)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrClassNotFound
		}
		return nil, fmt.Errorf("failed to get fitness class: %w", err)
	}

	return &class, nil
}

func (s *Storage) ListUpcomingClasses(ctx context.Context, after time.Time, skip, limit int) ([]models.FitnessClass, error) {
	query := `
		SELECT ` + classColumns + `
		FROM fitness_classes
		WHERE start_time >= $1
		ORDER BY start_time ASC
		OFFSET $2 LIMIT $3`

	rows, err := s.DB.QueryContext(ctx, query, after, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get fitness classes: %w", err)
	}
	defer rows.Close()

	var classes []models.FitnessClass
	for rows.Next() {
		var class models.FitnessClass
		if err = scanClass(rows, &class); err != nil {
			return nil, fmt.Errorf("failed to scan fitness class: %w", err)
		}
		classes = append(classes, class)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fitness classes: %w", err)
	}

	return classes, nil
}

// BookClass reserves one slot in a class and records the booking.
// The class row is locked with SELECT ... FOR UPDATE so concurrent
// bookings for the same class are serialized and the class can never
// be overbooked.
func (s *Storage) BookClass(ctx context.Context, classID int, clientName, clientEmail string) (*models.Booking, *models.FitnessClass, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `
		SELECT ` + classColumns + `
		FROM fitness_classes
		WHERE id = $1
		FOR UPDATE`

	var class models.FitnessClass
	err = scanClass(tx.QueryRowContext(ctx, lockQuery, classID), &class)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, storage.ErrClassNotFound
		}
		return nil, nil, fmt.Errorf("failed to lock fitness class: %w", err)
	}

	if class.IsFull() {
		return nil, nil, storage.ErrClassFull
	}

	var alreadyBooked bool
	checkQuery := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE fitness_class_id = $1 AND client_email = $2
		)`

	err = tx.QueryRowContext(ctx, checkQuery, classID, clientEmail).Scan(&alreadyBooked)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check existing booking: %w", err)
	}

	if alreadyBooked {
		return nil, nil, storage.ErrDuplicateBooking
	}

	updateQuery := `
		UPDATE fitness_classes
		SET booked_count = booked_count + 1, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`

	if err = tx.QueryRowContext(ctx, updateQuery, classID).Scan(&class.UpdatedAt); err != nil {
		return nil, nil, fmt.Errorf("failed to increment booked count: %w", err)
	}

	booking := models.Booking{
		ID:             uuid.New().String(),
		FitnessClassID: classID,
		ClientName:     clientName,
		ClientEmail:    clientEmail,
	}

	insertQuery := `
		INSERT INTO bookings (id, fitness_class_id, client_name, client_email)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	err = tx.QueryRowContext(ctx, insertQuery,
		booking.ID,
		booking.FitnessClassID,
		booking.ClientName,
		booking.ClientEmail,
	).Scan(&booking.CreatedAt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	class.BookedCount++

	return &booking, &class, nil
}

func (s *Storage) ListBookingsByEmail(ctx context.Context, email string, upcomingOnly bool, now time.Time, skip, limit int) ([]models.BookingWithClass, error) {
	query := `
		SELECT b.id, b.fitness_class_id, b.client_name, b.client_email, b.created_at,
			c.id, c.name, c.description, c.instructor, c.start_time, c.end_time,
			c.timezone, c.capacity, c.booked_count, c.created_at, c.updated_at
		FROM bookings b
		JOIN fitness_classes c ON c.id = b.fitness_class_id
		WHERE b.client_email = $1 AND ($2 = false OR c.start_time >= $3)
		ORDER BY c.start_time ASC
		OFFSET $4 LIMIT $5`

	rows, err := s.DB.QueryContext(ctx, query, email, upcomingOnly, now, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.BookingWithClass
	for rows.Next() {
		var b models.BookingWithClass
		err = rows.Scan(
			&b.ID,
			&b.FitnessClassID,
			&b.ClientName,
			&b.ClientEmail,
			&b.CreatedAt,
			&b.FitnessClass.ID,
			&b.FitnessClass.Name,
			&b.FitnessClass.Description,
			&b.FitnessClass.Instructor,
			&b.FitnessClass.StartTime,
			&b.FitnessClass.EndTime,
			&b.FitnessClass.Timezone,
			&b.FitnessClass.Capacity,
			&b.FitnessClass.BookedCount,
			&b.FitnessClass.CreatedAt,
			&b.FitnessClass.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

// CancelBooking removes a booking and releases its slot back to the class.
func (s *Storage) CancelBooking(ctx context.Context, bookingID string) (*models.FitnessClass, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var classID int
	bookingQuery := `
		SELECT fitness_class_id FROM bookings
		WHERE id = $1
		FOR UPDATE`

	err = tx.QueryRowContext(ctx, bookingQuery, bookingID).Scan(&classID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	updateQuery := `
		UPDATE fitness_classes
		SET booked_count = booked_count - 1, updated_at = now()
		WHERE id = $1
		RETURNING ` + classColumns

	var class models.FitnessClass
	if err = scanClass(tx.QueryRowContext(ctx, updateQuery, classID), &class); err != nil {
		return nil, fmt.Errorf("failed to release slot: %w", err)
	}

	deleteQuery := `DELETE FROM bookings WHERE id = $1`

	if _, err = tx.ExecContext(ctx, deleteQuery, bookingID); err != nil {
		return nil, fmt.Errorf("failed to delete booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &class, nil
}
