package models

// Enumerations accepted by the registration form.
var (
	Departments         = []string{"IT", "Sales", "Marketing", "Admin"}
	Plans               = []string{"High", "Medium", "Low"}
	PaymentCycles       = []string{PaymentCycleMonthly, PaymentCycleAnnual}
	Genders             = []string{"Male", "Female", "Other"}
	PhoneCodes          = []string{"+1", "+91", "+44"}
	LocationPreferences = []string{"Tennessee", "Minnesota"}
)

const (
	PaymentCycleMonthly = "Monthly"
	PaymentCycleAnnual  = "Annual"

	DefaultPhoneCode = "+1"
)

// Attachment describes an uploaded document. Path is only meaningful while
// the form is being filled in; StorageKey is set once the content has been
// handed to an attachment store.
type Attachment struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType,omitempty"`
	Size        int64  `json:"size"`
	StorageKey  string `json:"storageKey,omitempty"`
	Path        string `json:"-"`
}

// User is a persisted registrant. Password always holds a bcrypt hash.
type User struct {
	ID                  string      `json:"id"`
	FirstName           string      `json:"firstName"`
	MiddleInitial       string      `json:"middleInitial,omitempty"`
	LastName            string      `json:"lastName"`
	Username            string      `json:"username"`
	Email               string      `json:"email"`
	AltEmail            string      `json:"altEmail,omitempty"`
	Password            string      `json:"password"`
	PhoneCode           string      `json:"phoneCode"`
	Phone               string      `json:"phone"`
	AltPhoneCode        string      `json:"altPhoneCode,omitempty"`
	AltPhone            string      `json:"altPhone,omitempty"`
	DOB                 string      `json:"dob"`
	Gender              string      `json:"gender,omitempty"`
	Address             string      `json:"address"`
	Department          string      `json:"department"`
	LocationPreferences []string    `json:"locationPreferences"`
	Plan                string      `json:"plan"`
	PaymentCycle        string      `json:"paymentCycle"`
	Terms               bool        `json:"terms"`
	File                *Attachment `json:"file,omitempty"`
}

// FullName joins first, middle and last name, skipping empty parts.
func (u User) FullName() string {
	name := u.FirstName
	for _, part := range []string{u.MiddleInitial, u.LastName} {
		if part == "" {
			continue
		}
		if name != "" {
			name += " "
		}
		name += part
	}
	return name
}

// Contains reports whether v is one of options.
func Contains(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
