package domain

// Default schedule values, used when the config omits them
const (
	DefaultMinBookingMinutes   = 30
	DefaultMaxBookingMinutes   = 480 // 8 hours
	DefaultAdvanceBookingDays  = 30
	DefaultCancelNoticeMinutes = 0
	DefaultTimeStepMinutes     = 30
)

// Business validation constants
const (
	MaxReasonLength             = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
