package domain

// UserProfile holds the display data for a platform user.
// DisplayName defaults to the platform-supplied name on first contact and can
// be changed by the user afterwards.
type UserProfile struct {
	UserID      int64
	DisplayName string
}
