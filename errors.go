package expense

import "errors"

var (
	// ErrStoreCorrupt is reported when the store document exists but cannot be decoded.
	ErrStoreCorrupt = errors.New("store is corrupted")
	// ErrInvalidAmount is reported when an amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be a positive number")
	// ErrInvalidDate is reported when a date is not a YYYY-MM-DD calendar date.
	ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")
	// ErrInvalidMonth is reported when a month filter is outside 1-12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	// ErrNotFound is reported when no expense has the requested id.
	ErrNotFound = errors.New("expense not found")
	// ErrExportPermission is reported when the export target cannot be written for lack of permission.
	ErrExportPermission = errors.New("permission denied")
	// ErrExportFailed is reported for any other export failure.
	ErrExportFailed = errors.New("export failed")
)
