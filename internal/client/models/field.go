package models

// Field identifies one input of the registration form. The string value is
// the JSON name the field is persisted under.
type Field string

const (
	FieldFirstName           Field = "firstName"
	FieldMiddleInitial       Field = "middleInitial"
	FieldLastName            Field = "lastName"
	FieldUsername            Field = "username"
	FieldEmail               Field = "email"
	FieldAltEmail            Field = "altEmail"
	FieldPassword            Field = "password"
	FieldConfirmPassword     Field = "confirmPassword"
	FieldPhoneCode           Field = "phoneCode"
	FieldPhone               Field = "phone"
	FieldAltPhoneCode        Field = "altPhoneCode"
	FieldAltPhone            Field = "altPhone"
	FieldDOB                 Field = "dob"
	FieldGender              Field = "gender"
	FieldAddress             Field = "address"
	FieldDepartment          Field = "department"
	FieldLocationPreferences Field = "locationPreferences"
	FieldPlan                Field = "plan"
	FieldPaymentCycle        Field = "paymentCycle"
	FieldFile                Field = "file"
	FieldTerms               Field = "terms"
)

// FieldOrder is the declared order of the form. Whole-form validation walks
// it and reports the first failing field.
var FieldOrder = []Field{
	FieldFirstName,
	FieldMiddleInitial,
	FieldLastName,
	FieldUsername,
	FieldEmail,
	FieldAltEmail,
	FieldPassword,
	FieldConfirmPassword,
	FieldPhoneCode,
	FieldPhone,
	FieldAltPhoneCode,
	FieldAltPhone,
	FieldDOB,
	FieldGender,
	FieldAddress,
	FieldDepartment,
	FieldLocationPreferences,
	FieldPlan,
	FieldPaymentCycle,
	FieldFile,
	FieldTerms,
}

var fieldLabels = map[Field]string{
	FieldFirstName:           "First Name",
	FieldMiddleInitial:       "Middle Initial",
	FieldLastName:            "Last Name",
	FieldUsername:            "Username",
	FieldEmail:               "Email",
	FieldAltEmail:            "Alternate Email",
	FieldPassword:            "Password",
	FieldConfirmPassword:     "Confirm Password",
	FieldPhoneCode:           "Phone Country Code",
	FieldPhone:               "Phone",
	FieldAltPhoneCode:        "Alternate Phone Country Code",
	FieldAltPhone:            "Alternate Phone",
	FieldDOB:                 "Date of Birth",
	FieldGender:              "Gender",
	FieldAddress:             "Address",
	FieldDepartment:          "Department",
	FieldLocationPreferences: "Location Preferences",
	FieldPlan:                "Plan",
	FieldPaymentCycle:        "Payment Cycle",
	FieldFile:                "Attachment",
	FieldTerms:               "Terms and Conditions",
}

// Label returns the human-readable caption of the field.
func (f Field) Label() string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return string(f)
}

// Known reports whether f is one of the form fields.
func (f Field) Known() bool {
	_, ok := fieldLabels[f]
	return ok
}
