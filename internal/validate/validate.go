// Package validate contains client-side form validation.
// Forms are validated before any network call.
package validate

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const (
	// MaxPostFileSize is a limit of a single file attached to a post.
	MaxPostFileSize = 5 << 20
	// MaxProfileImageSize is a limit of avatar and banner images.
	MaxProfileImageSize = 1 << 20

	minPasswordLength    = 8
	maxNewPasswordLength = 16
	activationCodeLength = 6
)

var (
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	digitsRe = regexp.MustCompile(`^[0-9]+$`)
	upperRe  = regexp.MustCompile(`[A-Z]`)
	digitRe  = regexp.MustCompile(`[0-9]`)
	symbolRe = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?]`)
)

// Errors is a set of field errors. Key is field name.
type Errors map[string]string

// Error ...
func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, e[k])
	}

	return strings.Join(parts, "; ")
}

func (e Errors) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func email(errs Errors, v string) {
	switch {
	case strings.TrimSpace(v) == "":
		errs["email"] = "Email is required"
	case !emailRe.MatchString(v):
		errs["email"] = "Please enter a valid email"
	}
}

func password(errs Errors, v string) {
	switch {
	case v == "":
		errs["password"] = "Password is required"
	case len(v) < minPasswordLength:
		errs["password"] = fmt.Sprintf("Password must be at least %d characters", minPasswordLength)
	}
}

// SignIn validates sign in form.
func SignIn(e, p string) error {
	errs := Errors{}
	email(errs, e)
	password(errs, p)

	return errs.orNil()
}

// SignUpForm ...
type SignUpForm struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	DateOfBirth     string
	Gender          string
}

// SignUp validates sign up form.
func SignUp(f SignUpForm) error {
	errs := Errors{}

	if strings.TrimSpace(f.Username) == "" {
		errs["username"] = "Username is required"
	}
	email(errs, f.Email)
	password(errs, f.Password)
	if f.Password != f.ConfirmPassword {
		errs["confirmPassword"] = "Passwords do not match"
	}
	if f.DateOfBirth == "" {
		errs["dob"] = "Date of birth is required"
	}
	if f.Gender == "" {
		errs["gender"] = "Please select your gender"
	}

	return errs.orNil()
}

// ActivationCode validates one-time code sent on registration.
func ActivationCode(code string) error {
	if len(code) != activationCodeLength || !digitsRe.MatchString(code) {
		return Errors{"code": fmt.Sprintf("Please enter all %d digits", activationCodeLength)}
	}

	return nil
}

// NewPassword validates password chosen on password reset.
func NewPassword(p string) error {
	var problems []string

	if len(p) < minPasswordLength || len(p) > maxNewPasswordLength {
		problems = append(problems, fmt.Sprintf("Password must be %d-%d characters", minPasswordLength, maxNewPasswordLength))
	}
	if !upperRe.MatchString(p) {
		problems = append(problems, "At least one uppercase letter")
	}
	if !symbolRe.MatchString(p) {
		problems = append(problems, "At least one symbol (!@#$%^&*)")
	}
	if !digitRe.MatchString(p) {
		problems = append(problems, "At least one number")
	}

	if len(problems) > 0 {
		return Errors{"password": strings.Join(problems, ", ")}
	}

	return nil
}

// Post validates compose form. Sizes are sizes of attached files.
func Post(text string, sizes ...int64) error {
	if strings.TrimSpace(text) == "" && len(sizes) == 0 {
		return Errors{"text": "Post cannot be empty"}
	}

	for _, s := range sizes {
		if s > MaxPostFileSize {
			return Errors{"files": "File must be smaller than 5MB"}
		}
	}

	return nil
}

// ProfileImage validates avatar or banner size.
func ProfileImage(size int64) error {
	if size > MaxProfileImageSize {
		return Errors{"file": "File must be smaller than 1MB"}
	}

	return nil
}
