package validation

const (
	MsgFirstNameRequired   = "First name is required"
	MsgFirstNameLetters    = "First name must contain only letters"
	MsgMiddleInitial       = "Middle initial must be one letter"
	MsgLastNameRequired    = "Last name is required"
	MsgLastNameLetters     = "Last name must contain only letters"
	MsgUsernameRequired    = "Username is required"
	MsgUsernameFormat      = "Username must be 8-14 characters long and contain only letters and numbers"
	MsgUsernameTaken       = "Username already exists"
	MsgUsernameUnavailable = "Unable to verify username availability"
	MsgEmailRequired       = "Email is required"
	MsgEmailFormat         = "Invalid email format"
	MsgPasswordRequired    = "Password is required"
	MsgPasswordFormat      = "Password must be 8-16 characters, and include 1 uppercase, 1 lowercase, 1 number, 1 special character"
	MsgConfirmRequired     = "Please confirm your password"
	MsgPasswordMismatch    = "Passwords do not match"
	MsgPhoneRequired       = "Phone number is required"
	MsgPhoneInvalid        = "Phone number is invalid"
	MsgCountryCode         = "Unsupported country code"
	MsgDOBRequired         = "Date of birth is required"
	MsgDOBInvalid          = "Date of birth is invalid"
	MsgDOBFuture           = "Date of birth cannot be in the future"
	MsgDOBTooYoung         = "You must be at least 18 years old"
	MsgDOBTooOld           = "Date of birth cannot be more than 100 years ago"
	MsgGender              = "Please select a valid gender"
	MsgAddressRequired     = "Address is required"
	MsgDepartment          = "Please select a department"
	MsgLocationRequired    = "Please select at least one location preference"
	MsgLocationUnknown     = "Unknown location preference"
	MsgPlan                = "Please select a plan"
	MsgPaymentCycle        = "Please select a payment cycle"
	MsgFileType            = "Only pdf files are allowed"
	MsgFileSize            = "File size must be less than 5MB"
	MsgTermsRequired       = "You must accept the terms and conditions"
)
