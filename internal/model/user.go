package model

import "time"

// Role enumerates user roles.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// User represents an account in the LMS.
type User struct {
	ID           int        `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FullName     string     `json:"full_name"`
	Role         Role       `json:"role"`
	ClassID      *int       `json:"class_id,omitempty"` // students only
	CreatedAt    time.Time  `json:"created_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

// Instructor is the subset of instructor data shown on course pages.
type Instructor struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Bio      string `json:"bio,omitempty"`
}

// ClassBatch is one scheduled run of a course.
type ClassBatch struct {
	ID           int        `json:"id"`
	CourseID     int        `json:"course_id"`
	Name         string     `json:"name"`
	InstructorID int        `json:"instructor_id"`
	StartsAt     *time.Time `json:"starts_at,omitempty"`
	EndsAt       *time.Time `json:"ends_at,omitempty"`
}

// LoginRequest is the credential payload for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
