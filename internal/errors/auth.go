package errors

// Registration and login.
var (
	InvalidEmailFormat = Kind{Code: 1001, Template: "Invalid email format."}
	PasswordTooShort   = Kind{Code: 1002, Template: "Password must be at least {0} characters long."}
	EmailAlreadyExists = Kind{Code: 1003, Template: "An account with this email already exists."}
	InvalidCredentials = Kind{Code: 1004, Template: "Invalid email or password."}
	AccountNotFound    = Kind{Code: 1005, Template: "No account found with this email."}
	EmailRequired      = Kind{Code: 1006, Template: "Email is required."}
	PasswordRequired   = Kind{Code: 1007, Template: "Password is required."}
)

// Logout and token refresh.
var (
	RefreshTokenRequired = Kind{Code: 2001, Template: "Refresh token is required."}
	InvalidToken         = Kind{Code: 2002, Template: "Invalid or expired refresh token."}
)
