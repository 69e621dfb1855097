package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/certsprint/ppt-lms-backend/internal/model"
	"github.com/certsprint/ppt-lms-backend/internal/repository"
)

// CoursePattern matches the PowerPoint certification course by name. Class
// batches of other courses never grant access to this content module.
const CoursePattern = "%powerpoint%"

// AccessService gates course content behind enrollment checks.
type AccessService struct {
	enrollmentRepo *repository.EnrollmentRepository
	log            zerolog.Logger
}

// NewAccessService creates a new AccessService.
func NewAccessService(enrollmentRepo *repository.EnrollmentRepository, log zerolog.Logger) *AccessService {
	return &AccessService{
		enrollmentRepo: enrollmentRepo,
		log:            log.With().Str("component", "access_service").Logger(),
	}
}

// HasAccess reports whether a user may open the course pages. Admins and
// instructors always pass. Students need an active enrollment: in the
// given class batch when one is known, otherwise in any batch of the
// PowerPoint course.
func (s *AccessService) HasAccess(ctx context.Context, userID int, role model.Role, classID *int) (bool, error) {
	switch role {
	case model.RoleAdmin, model.RoleInstructor:
		return true, nil
	}

	if classID != nil {
		ok, err := s.enrollmentRepo.HasClassEnrollment(ctx, userID, *classID)
		if err != nil {
			return false, fmt.Errorf("check class enrollment: %w", err)
		}
		return ok, nil
	}

	ok, err := s.enrollmentRepo.HasActiveEnrollment(ctx, userID, CoursePattern)
	if err != nil {
		return false, fmt.Errorf("check enrollment: %w", err)
	}
	return ok, nil
}
