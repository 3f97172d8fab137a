package errors

var (
	PhoneNumberAlreadyExists = Kind{Code: 4001, Template: "This phone number is already registered."}
	InvalidPhoneNumber       = Kind{Code: 4002, Template: "Invalid phone number format."}
	NotAllowed               = Kind{Code: 4003, Template: "You are not allowed to register a phone number for another user."}
)
