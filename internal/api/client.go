// Package api implements the client for the university administration
// backend: authentication, user/student/teacher/course/section management,
// enrollments, grades, attendance, payments, and the student/teacher portal
// views. Responses are parsed defensively because the backend mixes legacy
// and current field names.
package api

import "context"

// LoginResult is the usable part of a login response. RawUser is nil when the
// backend answered with a token only; callers then derive the identity from
// the token payload.
type LoginResult struct {
	Token   string
	RawUser map[string]any
}

// Client is the operation surface of the backend.
//
// Every call that touches a protected resource takes the bearer token
// explicitly; the client itself keeps no session state. Methods return
// *HTTPError for non-2xx responses and wrap ErrUnavailable for transport
// failures.
type Client interface {
	Ping(ctx context.Context) error
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// FetchUser returns the raw profile object of GET /api/usuarios/{id},
	// unwrapped from usuario|user|data envelopes. Used for identity
	// enrichment after a token-only login.
	FetchUser(ctx context.Context, token string, id int64) (map[string]any, error)

	ListUsers(ctx context.Context, token string) ([]User, error)
	CreateUser(ctx context.Context, token string, u NewUser) (int64, error)
	UpdateUser(ctx context.Context, token string, id int64, fields map[string]any) error
	SetUserPassword(ctx context.Context, token string, id int64, password string) error
	DeleteUser(ctx context.Context, token string, id int64) error

	ListStudents(ctx context.Context, token string) ([]Student, error)
	StudentByUsuario(ctx context.Context, token string, usuarioID int64) (*Student, error)
	// ResolveStudentID finds the student record for a backend user id, trying
	// the dedicated route, the query-filter route, and a full-list scan.
	ResolveStudentID(ctx context.Context, token string, usuarioID int64) (int64, error)
	UpdateStudent(ctx context.Context, token string, id int64, fields map[string]any) error
	DeleteStudent(ctx context.Context, token string, id int64) error

	ListTeachers(ctx context.Context, token string) ([]Teacher, error)
	TeacherByUsuario(ctx context.Context, token string, usuarioID int64) (*Teacher, error)
	UpdateTeacher(ctx context.Context, token string, id int64, fields map[string]any) error
	DeleteTeacher(ctx context.Context, token string, id int64) error

	ListCourses(ctx context.Context, token string) ([]Course, error)
	CreateCourse(ctx context.Context, token string, fields map[string]any) error
	UpdateCourse(ctx context.Context, token string, id int64, fields map[string]any) error
	DeleteCourse(ctx context.Context, token string, id int64) error

	ListSections(ctx context.Context, token string) ([]Section, error)
	CreateSection(ctx context.Context, token string, fields map[string]any) error
	UpdateSection(ctx context.Context, token string, id int64, fields map[string]any) error
	DeleteSection(ctx context.Context, token string, id int64) error

	Enroll(ctx context.Context, token string, estudianteID, seccionID int64) error
	SubmitGrade(ctx context.Context, token string, g Grade) error
	SubmitAttendance(ctx context.Context, token string, a Attendance) error

	ListPayments(ctx context.Context, token string) ([]Payment, error)
	ListStudentPayments(ctx context.Context, token string, estudianteID int64) ([]Payment, error)
	CreatePayment(ctx context.Context, token string, p NewPayment) error
	UpdatePaymentStatus(ctx context.Context, token string, id int64, estado string) error

	StudentPortal(ctx context.Context, token string, estudianteID int64) (*StudentPortal, error)
	TeacherPortal(ctx context.Context, token string, usuarioID int64) ([]TeacherSection, error)
}
