package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Form holds the values of a registration in progress, exactly as entered.
// It is never persisted: ToUser produces the record that is.
type Form struct {
	FirstName           string
	MiddleInitial       string
	LastName            string
	Username            string
	Email               string
	AltEmail            string
	Password            string
	ConfirmPassword     string
	PhoneCode           string
	Phone               string
	AltPhoneCode        string
	AltPhone            string
	DOB                 string
	Gender              string
	Address             string
	Department          string
	LocationPreferences []string
	Plan                string
	PaymentCycle        string
	File                *Attachment
	Terms               bool
}

// NewForm returns a form populated with its default values.
func NewForm() *Form {
	f := &Form{}
	f.Reset()
	return f
}

// Reset clears every value and restores the defaults.
func (f *Form) Reset() {
	*f = Form{
		PhoneCode:    DefaultPhoneCode,
		AltPhoneCode: DefaultPhoneCode,
		PaymentCycle: PaymentCycleMonthly,
	}
}

// Set assigns a textual value to field. Terms accepts y/yes/true/1,
// location preferences are comma separated and a file value is a local path.
func (f *Form) Set(field Field, value string) error {
	if !field.Known() {
		return fmt.Errorf("unknown field %q", field)
	}
	switch field {
	case FieldFirstName:
		f.FirstName = value
	case FieldMiddleInitial:
		f.MiddleInitial = value
	case FieldLastName:
		f.LastName = value
	case FieldUsername:
		f.Username = value
	case FieldEmail:
		f.Email = value
	case FieldAltEmail:
		f.AltEmail = value
	case FieldPassword:
		f.Password = value
	case FieldConfirmPassword:
		f.ConfirmPassword = value
	case FieldPhoneCode:
		f.PhoneCode = value
	case FieldPhone:
		f.Phone = value
	case FieldAltPhoneCode:
		f.AltPhoneCode = value
	case FieldAltPhone:
		f.AltPhone = value
	case FieldDOB:
		f.DOB = value
	case FieldGender:
		f.Gender = value
	case FieldAddress:
		f.Address = value
	case FieldDepartment:
		f.Department = value
	case FieldLocationPreferences:
		f.LocationPreferences = splitList(value)
	case FieldPlan:
		f.Plan = value
	case FieldPaymentCycle:
		f.PaymentCycle = value
	case FieldFile:
		if strings.TrimSpace(value) == "" {
			f.File = nil
			return nil
		}
		f.File = &Attachment{Name: filepath.Base(value), Path: value}
	case FieldTerms:
		f.Terms = parseBool(value)
	}
	return nil
}

// ToUser builds the persisted record. The caller supplies the generated id
// and the password hash; ConfirmPassword is dropped.
func (f *Form) ToUser(id, passwordHash string) User {
	u := User{
		ID:                  id,
		FirstName:           f.FirstName,
		MiddleInitial:       f.MiddleInitial,
		LastName:            f.LastName,
		Username:            f.Username,
		Email:               f.Email,
		AltEmail:            f.AltEmail,
		Password:            passwordHash,
		PhoneCode:           f.PhoneCode,
		Phone:               f.Phone,
		AltPhone:            f.AltPhone,
		DOB:                 f.DOB,
		Gender:              f.Gender,
		Address:             strings.TrimSpace(f.Address),
		Department:          f.Department,
		LocationPreferences: append([]string(nil), f.LocationPreferences...),
		Plan:                f.Plan,
		PaymentCycle:        f.PaymentCycle,
		Terms:               f.Terms,
	}
	if f.AltPhone != "" {
		u.AltPhoneCode = f.AltPhoneCode
	}
	if f.File != nil {
		file := *f.File
		file.Path = ""
		u.File = &file
	}
	return u
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "y", "yes", "true", "1":
		return true
	default:
		return false
	}
}
