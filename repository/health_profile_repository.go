package repository

import (
	"context"
	"errors"

	"healthmate-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HealthProfileRepository handles database operations for health profiles
type HealthProfileRepository struct {
	db *pgxpool.Pool
}

// NewHealthProfileRepository creates a new health profile repository
func NewHealthProfileRepository(db *pgxpool.Pool) *HealthProfileRepository {
	return &HealthProfileRepository{db: db}
}

// Upsert creates the profile for profile.UserID or replaces its fields if one
// already exists. The original created_at survives updates; updated_at is
// bumped. A single statement keeps the write atomic.
func (r *HealthProfileRepository) Upsert(ctx context.Context, profile *models.HealthProfile) error {
	query := `
		INSERT INTO health_profiles (
			user_id, sleep_pattern, sleep_hours, hydration_level, stress_level,
			exercise_frequency, diet_type, existing_conditions, lifestyle_notes,
			health_persona
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
		ON CONFLICT (user_id) DO UPDATE SET
			sleep_pattern = EXCLUDED.sleep_pattern,
			sleep_hours = EXCLUDED.sleep_hours,
			hydration_level = EXCLUDED.hydration_level,
			stress_level = EXCLUDED.stress_level,
			exercise_frequency = EXCLUDED.exercise_frequency,
			diet_type = EXCLUDED.diet_type,
			existing_conditions = EXCLUDED.existing_conditions,
			lifestyle_notes = EXCLUDED.lifestyle_notes,
			health_persona = EXCLUDED.health_persona,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(
		ctx, query,
		profile.UserID,
		profile.SleepPattern,
		profile.SleepHours,
		profile.HydrationLevel,
		profile.StressLevel,
		profile.ExerciseFrequency,
		profile.DietType,
		profile.ExistingConditions,
		profile.LifestyleNotes,
		profile.HealthPersona,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

// GetByUserID retrieves the profile for a user. A missing profile is a valid
// outcome for new users and returns (nil, nil), not an error.
func (r *HealthProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.HealthProfile, error) {
	profile := &models.HealthProfile{}
	query := `
		SELECT id, user_id, sleep_pattern, sleep_hours, hydration_level,
			stress_level, exercise_frequency, diet_type, existing_conditions,
			lifestyle_notes, health_persona, created_at, updated_at
		FROM health_profiles
		WHERE user_id = $1`

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.SleepPattern,
		&profile.SleepHours,
		&profile.HydrationLevel,
		&profile.StressLevel,
		&profile.ExerciseFrequency,
		&profile.DietType,
		&profile.ExistingConditions,
		&profile.LifestyleNotes,
		&profile.HealthPersona,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return profile, nil
}
