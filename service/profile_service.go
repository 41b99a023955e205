package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"healthmate-backend/llm"
	"healthmate-backend/models"

	"github.com/google/uuid"
)

// ProfileStore is the persistence surface ProfileService depends on
type ProfileStore interface {
	Upsert(ctx context.Context, profile *models.HealthProfile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.HealthProfile, error)
}

// PersonaResult is the outcome of a persona generation attempt. Fallback is
// set when the external call failed and the default label was used instead;
// the profile write proceeds either way.
type PersonaResult struct {
	Persona  string
	Fallback bool
}

// ProfileService handles the per-user health profile
type ProfileService struct {
	profiles ProfileStore
	ai       llm.Client
}

// ProfileServiceOption is a functional option for ProfileService
type ProfileServiceOption func(*ProfileService)

// ProfileWithRepository sets the profile store
func ProfileWithRepository(profiles ProfileStore) ProfileServiceOption {
	return func(s *ProfileService) {
		s.profiles = profiles
	}
}

// ProfileWithLLMClient sets the AI client used for persona generation
func ProfileWithLLMClient(ai llm.Client) ProfileServiceOption {
	return func(s *ProfileService) {
		s.ai = ai
	}
}

// NewProfileService creates a new profile service
func NewProfileService(opts ...ProfileServiceOption) *ProfileService {
	s := &ProfileService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UpsertProfileRequest carries the validated profile fields for one user
type UpsertProfileRequest struct {
	UserID             uuid.UUID
	SleepPattern       models.SleepPattern
	SleepHours         int
	HydrationLevel     models.HydrationLevel
	StressLevel        models.StressLevel
	ExerciseFrequency  models.ExerciseFrequency
	DietType           models.DietType
	ExistingConditions *string
	LifestyleNotes     *string
}

// Upsert creates or replaces the user's profile. The persona is regenerated
// from the new fields on every write; generation failure falls back to a
// default label and never fails the write itself.
func (s *ProfileService) Upsert(ctx context.Context, req UpsertProfileRequest) (*models.HealthProfile, error) {
	if s.profiles == nil {
		return nil, errors.New("profile repository not set")
	}

	profile := &models.HealthProfile{
		UserID:             req.UserID,
		SleepPattern:       req.SleepPattern,
		SleepHours:         req.SleepHours,
		HydrationLevel:     req.HydrationLevel,
		StressLevel:        req.StressLevel,
		ExerciseFrequency:  req.ExerciseFrequency,
		DietType:           req.DietType,
		ExistingConditions: req.ExistingConditions,
		LifestyleNotes:     req.LifestyleNotes,
	}

	persona := s.GeneratePersona(ctx, profile)
	profile.HealthPersona = persona.Persona

	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// Get retrieves the user's profile. (nil, nil) means the user has none yet.
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*models.HealthProfile, error) {
	if s.profiles == nil {
		return nil, errors.New("profile repository not set")
	}
	return s.profiles.GetByUserID(ctx, userID)
}

// GeneratePersona asks the model for a playful persona label on a per-user
// session. Any failure yields the default persona as a fallback outcome.
func (s *ProfileService) GeneratePersona(ctx context.Context, profile *models.HealthProfile) PersonaResult {
	if s.ai == nil {
		return PersonaResult{Persona: defaultPersona, Fallback: true}
	}

	sessionID := "persona_" + profile.UserID.String()
	reply, err := s.ai.SendMessage(ctx, sessionID, personaSystemMessage, BuildPersonaPrompt(profile))
	if err != nil {
		log.Printf("Persona generation failed for user %s: %v", profile.UserID, err)
		return PersonaResult{Persona: defaultPersona, Fallback: true}
	}

	return PersonaResult{Persona: strings.TrimSpace(reply)}
}
