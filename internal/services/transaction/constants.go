package transaction

// Operation names used for metrics and logs
const (
	OpCreateCreditRequest = "create_credit_request"
	OpUpdateCreditRequest = "update_credit_request"
	OpSellCharge          = "sell_charge"
)

const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Amounts are stored as numeric(12,2).
const (
	amountScale     = 2
	maxAmountDigits = 12
)
