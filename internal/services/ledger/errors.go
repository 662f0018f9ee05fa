package ledger

// LedgerError is a custom error type for ledger-related errors
type LedgerError string

// Error implements the error interface
func (e LedgerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInsufficientFunds  LedgerError = "insufficient funds"
	ErrStorageUnavailable LedgerError = "ledger storage unavailable"
	ErrNilConfig          LedgerError = "config cannot be nil"
	ErrNilAccountRepo     LedgerError = "account repository cannot be nil"
	ErrNilClock           LedgerError = "clock cannot be nil"
	ErrNilRoller          LedgerError = "roller cannot be nil"
)
