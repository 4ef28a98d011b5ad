package utils

const (
	// Pagination
	CustomersPerPage = 10

	// Colors
	ErrorColor   = 0xFF0000
	SuccessColor = 0x00FF00
	InfoColor    = 0x0099FF
	WarningColor = 0xFFAA00
)

// Ptr returns a pointer to v, for the option-heavy Discord API structs.
func Ptr[T any](v T) *T {
	return &v
}
