package errors

var (
	InsufficientBalance = Kind{Code: 3001, Template: "Insufficient balance in wallet."}
	WalletNotFound      = Kind{Code: 3002, Template: "Wallet not found."}
	InvalidAmount       = Kind{Code: 3003, Template: "Amount must be greater than zero."}
	AlreadyProcessed    = Kind{Code: 3004, Template: "Transaction has already been processed."}
	TransactionNotFound = Kind{Code: 3005, Template: "Transaction not found."}
	PermissionDenied    = Kind{Code: 3006, Template: "You do not have permission to perform this action."}
	InvalidStatus       = Kind{Code: 3007, Template: "Invalid status {0}."}
	PhoneNumberNotFound = Kind{Code: 3008, Template: "Phone number not found."}
)
