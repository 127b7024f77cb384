package validation

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/radian/internal/client/models"
)

// MaxFileSize is the largest attachment accepted, 5 MiB.
const MaxFileSize = 5 * 1024 * 1024

const (
	minAge = 18
	maxAge = 100

	passwordMin     = 8
	passwordMax     = 16
	passwordSymbols = "!@#$%^&*"

	dateLayout = "2006-01-02"
)

var (
	nameRe          = regexp.MustCompile(`^[A-Za-z]+$`)
	middleInitialRe = regexp.MustCompile(`^[A-Za-z]?$`)
	usernameRe      = regexp.MustCompile(`^[A-Za-z0-9]{8,14}$`)
	emailRe         = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe         = regexp.MustCompile(`^\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}$`)
)

// Rule checks one field of f and returns the message to display, or "".
type Rule func(ctx context.Context, v *Validator, f *models.Form) string

func defaultRules() map[models.Field]Rule {
	return map[models.Field]Rule{
		models.FieldFirstName:           checkFirstName,
		models.FieldMiddleInitial:       checkMiddleInitial,
		models.FieldLastName:            checkLastName,
		models.FieldUsername:            checkUsername,
		models.FieldEmail:               checkEmail,
		models.FieldAltEmail:            checkAltEmail,
		models.FieldPassword:            checkPassword,
		models.FieldConfirmPassword:     checkConfirmPassword,
		models.FieldPhoneCode:           checkPhoneCode,
		models.FieldPhone:               checkPhone,
		models.FieldAltPhoneCode:        checkAltPhoneCode,
		models.FieldAltPhone:            checkAltPhone,
		models.FieldDOB:                 checkDOB,
		models.FieldGender:              checkGender,
		models.FieldAddress:             checkAddress,
		models.FieldDepartment:          checkDepartment,
		models.FieldLocationPreferences: checkLocationPreferences,
		models.FieldPlan:                checkPlan,
		models.FieldPaymentCycle:        checkPaymentCycle,
		models.FieldFile:                checkFile,
		models.FieldTerms:               checkTerms,
	}
}

func checkFirstName(_ context.Context, _ *Validator, f *models.Form) string {
	return checkName(f.FirstName, MsgFirstNameRequired, MsgFirstNameLetters)
}

func checkLastName(_ context.Context, _ *Validator, f *models.Form) string {
	return checkName(f.LastName, MsgLastNameRequired, MsgLastNameLetters)
}

func checkName(value, required, letters string) string {
	if value == "" {
		return required
	}
	if !nameRe.MatchString(value) {
		return letters
	}
	return ""
}

func checkMiddleInitial(_ context.Context, _ *Validator, f *models.Form) string {
	if f.MiddleInitial != "" && !middleInitialRe.MatchString(f.MiddleInitial) {
		return MsgMiddleInitial
	}
	return ""
}

func checkUsername(ctx context.Context, v *Validator, f *models.Form) string {
	if f.Username == "" {
		return MsgUsernameRequired
	}
	if !usernameRe.MatchString(f.Username) {
		return MsgUsernameFormat
	}
	if v.users == nil {
		return ""
	}
	taken, err := v.users.UsernameTaken(ctx, f.Username)
	if err != nil {
		v.log.Error(ctx, "username lookup failed", "error", err)
		return MsgUsernameUnavailable
	}
	if taken {
		return MsgUsernameTaken
	}
	return ""
}

func checkEmail(_ context.Context, _ *Validator, f *models.Form) string {
	if f.Email == "" {
		return MsgEmailRequired
	}
	if !emailRe.MatchString(f.Email) {
		return MsgEmailFormat
	}
	return ""
}

func checkAltEmail(_ context.Context, _ *Validator, f *models.Form) string {
	if f.AltEmail != "" && !emailRe.MatchString(f.AltEmail) {
		return MsgEmailFormat
	}
	return ""
}

func checkPassword(_ context.Context, _ *Validator, f *models.Form) string {
	if f.Password == "" {
		return MsgPasswordRequired
	}
	if !strongPassword(f.Password) {
		return MsgPasswordFormat
	}
	return ""
}

// strongPassword requires 8 to 16 characters (no line breaks) with at least
// one upper case letter, one lower case letter, one digit and one of
// !@#$%^&*.
func strongPassword(pw string) bool {
	n := utf8.RuneCountInString(pw)
	if n < passwordMin || n > passwordMax {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range pw {
		switch {
		case r == '\n' || r == '\r':
			return false
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

func checkConfirmPassword(_ context.Context, _ *Validator, f *models.Form) string {
	if f.ConfirmPassword == "" {
		return MsgConfirmRequired
	}
	if f.ConfirmPassword != f.Password {
		return MsgPasswordMismatch
	}
	return ""
}

func checkPhoneCode(_ context.Context, _ *Validator, f *models.Form) string {
	return checkCountryCode(f.PhoneCode)
}

func checkAltPhoneCode(_ context.Context, _ *Validator, f *models.Form) string {
	return checkCountryCode(f.AltPhoneCode)
}

func checkCountryCode(code string) string {
	if !models.Contains(models.PhoneCodes, code) {
		return MsgCountryCode
	}
	return ""
}

func checkPhone(_ context.Context, _ *Validator, f *models.Form) string {
	if f.Phone == "" {
		return MsgPhoneRequired
	}
	if !phoneRe.MatchString(f.Phone) {
		return MsgPhoneInvalid
	}
	return ""
}

func checkAltPhone(_ context.Context, _ *Validator, f *models.Form) string {
	if f.AltPhone != "" && !phoneRe.MatchString(f.AltPhone) {
		return MsgPhoneInvalid
	}
	return ""
}

func checkDOB(_ context.Context, v *Validator, f *models.Form) string {
	if f.DOB == "" {
		return MsgDOBRequired
	}
	dob, err := time.Parse(dateLayout, f.DOB)
	if err != nil {
		return MsgDOBInvalid
	}

	now := v.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !dob.Before(today) {
		return MsgDOBFuture
	}

	age := Age(dob, today)
	if age < minAge {
		return MsgDOBTooYoung
	}
	if age > maxAge {
		return MsgDOBTooOld
	}
	return ""
}

// Age returns the number of whole years between dob and today.
func Age(dob, today time.Time) int {
	age := today.Year() - dob.Year()
	if today.Month() < dob.Month() || (today.Month() == dob.Month() && today.Day() < dob.Day()) {
		age--
	}
	return age
}

func checkGender(_ context.Context, _ *Validator, f *models.Form) string {
	if f.Gender != "" && !models.Contains(models.Genders, f.Gender) {
		return MsgGender
	}
	return ""
}

func checkAddress(_ context.Context, _ *Validator, f *models.Form) string {
	if strings.TrimFunc(f.Address, unicode.IsSpace) == "" {
		return MsgAddressRequired
	}
	return ""
}

func checkDepartment(_ context.Context, _ *Validator, f *models.Form) string {
	if !models.Contains(models.Departments, f.Department) {
		return MsgDepartment
	}
	return ""
}

func checkLocationPreferences(_ context.Context, _ *Validator, f *models.Form) string {
	if len(f.LocationPreferences) == 0 {
		return MsgLocationRequired
	}
	for _, p := range f.LocationPreferences {
		if !models.Contains(models.LocationPreferences, p) {
			return MsgLocationUnknown
		}
	}
	return ""
}

func checkPlan(_ context.Context, _ *Validator, f *models.Form) string {
	if !models.Contains(models.Plans, f.Plan) {
		return MsgPlan
	}
	return ""
}

func checkPaymentCycle(_ context.Context, _ *Validator, f *models.Form) string {
	if !models.Contains(models.PaymentCycles, f.PaymentCycle) {
		return MsgPaymentCycle
	}
	return ""
}

// checkFile accepts no attachment. A known content type must be
// application/pdf; without one the name must end in .pdf. The size limit is
// checked last and its message replaces the type message.
func checkFile(_ context.Context, _ *Validator, f *models.Form) string {
	a := f.File
	if a == nil {
		return ""
	}
	msg := ""
	if a.ContentType != "" {
		if a.ContentType != "application/pdf" {
			msg = MsgFileType
		}
	} else if !strings.HasSuffix(strings.ToLower(a.Name), ".pdf") {
		msg = MsgFileType
	}
	if a.Size > MaxFileSize {
		msg = MsgFileSize
	}
	return msg
}

func checkTerms(_ context.Context, _ *Validator, f *models.Form) string {
	if !f.Terms {
		return MsgTermsRequired
	}
	return ""
}
