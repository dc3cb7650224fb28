package domain

// Comment is a free-text note a user attaches to one of their days.
// Comments live until the owner deletes them or the daily purge clears the
// board at local midnight.
type Comment struct {
	UserID int64
	Date   DateKey
	Text   string
}
