package models

import "time"

// Grade labels accepted on the registration form.
const (
	GradePrep   = "Hazırlık Sınıfı"
	GradeFirst  = "1. Sınıf"
	GradeSecond = "2. Sınıf"
	GradeThird  = "3. Sınıf"
	GradeFourth = "4. Sınıf"
	GradeOther  = "Diğer"
)

// Grades lists every accepted class-standing label, in form order.
var Grades = []string{GradePrep, GradeFirst, GradeSecond, GradeThird, GradeFourth, GradeOther}

// RedirectSeconds is the thank-you countdown before the client navigates
// back to the code-check page.
const RedirectSeconds = 5

// Age bounds for registrants.
const (
	MinAge = 18
	MaxAge = 99
)

// User-facing messages (the event is Turkish-language; these are fixed copy,
// not an i18n layer)
const (
	MsgInvalidOrUsedCode = "Geçersiz ya da kullanılmış bir kod girdiniz."
	MsgDuplicatePhone    = "Bu telefon numarası zaten kayıt edilmiş."
	MsgGenericError      = "Bir hata oluştu"
	MsgPartialCommit     = "Kaydınızın durumu doğrulanamadı. Lütfen tekrar göndermeden önce görevliye danışın."
)

// Request types

// RegistrantInput is the form payload. Age is a pointer so that a missing or
// null age fails required-field validation rather than arriving as zero.
type RegistrantInput struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required,phonemask"`
	Department string `json:"department" validate:"required"`
	Grade      string `json:"grade" validate:"required,grade"`
	Age        *int   `json:"age" validate:"required,gte=18,lte=99"`
}

type RedeemCodeRequest struct {
	Code string `json:"code"`
}

type SubmitRequest struct {
	FormData RegistrantInput `json:"formData"`
	CodeID   string          `json:"code_id"`
}

// Response types

type RedeemCodeResponse struct {
	CodeID string `json:"code_id"`
}

type SubmitResponse struct {
	Success         bool   `json:"success"`
	SubmissionID    string `json:"submission_id"`
	RedirectSeconds int    `json:"redirect_seconds"`
}

type GradesResponse struct {
	Grades []string `json:"grades"`
}

type FormEntryResponse struct {
	CodeID string `json:"code_id"`
}

// Domain types

type Code struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	IsUsed    bool      `json:"is_used"`
	CreatedAt time.Time `json:"created_at"`
}

type Submission struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"` // digits only, 11 characters
	Department string    `json:"department"`
	Grade      string    `json:"grade"`
	Age        int       `json:"age"`
	CodeID     string    `json:"code_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
