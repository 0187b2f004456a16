package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/seniorconnect-sg/community-api/internal/domain/booking"
	"github.com/seniorconnect-sg/community-api/internal/models"
)

const dateLayout = "2006-01-02"

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Create / conflict
// --------------------------------------------------

func (r *BookingGormRepository) Create(
	ctx context.Context,
	b *models.Booking,
) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return translateSlotViolation(err)
	}
	return nil
}

func (r *BookingGormRepository) FindConfirmedSlot(
	ctx context.Context,
	location string,
	date time.Time,
	slot string,
) (*models.Booking, error) {

	var b models.Booking
	err := r.db.WithContext(ctx).
		Where(
			"location = ? AND booking_date = ? AND time_slot = ? AND status = ?",
			location, date.Format(dateLayout), slot, string(domain.StatusConfirmed),
		).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) HasConfirmedConflict(
	ctx context.Context,
	location string,
	date time.Time,
	slot string,
	excludeID string,
) (bool, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"location = ? AND booking_date = ? AND time_slot = ? AND status = ? AND id <> ?",
			location, date.Format(dateLayout), slot, string(domain.StatusConfirmed), excludeID,
		).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *BookingGormRepository) FindByIDForUser(
	ctx context.Context,
	id string,
	userID string,
) (*models.Booking, error) {

	var b models.Booking
	err := r.db.WithContext(ctx).
		Where("id = ? AND booked_by_user_id = ?", id, userID).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListForUser(
	ctx context.Context,
	userID string,
) ([]models.Booking, error) {

	var rows []models.Booking
	err := r.db.WithContext(ctx).
		Where("booked_by_user_id = ?", userID).
		Order("booking_date ASC, time_slot ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BookingGormRepository) ListConfirmedForDay(
	ctx context.Context,
	location string,
	date time.Time,
) ([]models.Booking, error) {

	var rows []models.Booking
	err := r.db.WithContext(ctx).
		Select("time_slot").
		Where(
			"location = ? AND booking_date = ? AND status = ?",
			location, date.Format(dateLayout), string(domain.StatusConfirmed),
		).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BookingGormRepository) ListConfirmedThrough(
	ctx context.Context,
	day time.Time,
) ([]models.Booking, error) {

	var rows []models.Booking
	err := r.db.WithContext(ctx).
		Where(
			"status = ? AND booking_date <= ?",
			string(domain.StatusConfirmed), day.Format(dateLayout),
		).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *BookingGormRepository) Update(
	ctx context.Context,
	b *models.Booking,
) error {
	if err := r.db.WithContext(ctx).Save(b).Error; err != nil {
		return translateSlotViolation(err)
	}
	return nil
}

func (r *BookingGormRepository) MarkCompleted(
	ctx context.Context,
	ids []string,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Booking{}).
			Where("id IN ? AND status = ?", ids, string(domain.StatusConfirmed)).
			Update("status", string(domain.StatusCompleted)).Error
	})
}

// translateSlotViolation maps the composite unique index violation to the
// domain's ErrSlotTaken so the race between pre-check and insert always
// resolves the same way, regardless of which request wins.
func translateSlotViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" &&
		strings.Contains(pgErr.ConstraintName, "uq_booking_slot_status") {
		return fmt.Errorf("%w: %s", domain.ErrSlotTaken, pgErr.ConstraintName)
	}
	return err
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
