// Package timezone keeps wall-clock timestamps (record metadata, log fields)
// in the agency's configured timezone.
//
//	now := timezone.Now()
//	formatted := timezone.Format(booking.CreatedAt, time.RFC3339)
//
// The timezone is configured via the APP_TIMEZONE environment variable using
// IANA names ("Asia/Kuala_Lumpur", "UTC") and is loaded when the package is
// imported. Stay dates are calendar days and never pass through this package.
package timezone
