// Package timezone pins every wall-clock value of the application to one
// IANA location.
//
// Usage Examples:
//
//  1. Current time and record timestamps:
//     now := timezone.Now()
//     createdAt := timezone.Timestamp(now) // "2025-06-01T14:30:00"
//
//  2. Getting the timezone location, e.g. to interpret a booking's local
//     date and time:
//     start, err := time.ParseInLocation("2006-01-02 15:04", "2025-03-10 09:00", timezone.GetLocation())
//
// The timezone is configured via the APP_TIMEZONE environment variable
// (e.g. "Europe/Stockholm") and is initialized when the package is imported.
// An empty or unknown name falls back to UTC.
package timezone
