package model

// UserProfile maps the display columns of the users table owned by the
// surrounding application. The points engine reads it, never migrates or
// writes it.
type UserProfile struct {
	ID                string `gorm:"primaryKey;size:64"`
	DisplayName       string `gorm:"size:255"`
	TagName           string `gorm:"size:64"`
	ProfilePictureURL string `gorm:"size:512"`
}

// TableName specifies the table name for UserProfile
func (UserProfile) TableName() string {
	return "users"
}
