package models

// User is a catalog account that can create showcases or administer them
type User struct {
	BaseModel
	Name     string       `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=2,max=100"`
	Fullname string       `json:"fullname" gorm:"size:255"`
	Email    string       `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	Sysadmin bool         `json:"sysadmin" gorm:"not null;default:false"`
	State    PackageState `json:"state" gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// DisplayName returns the full name, falling back to the user name
func (u *User) DisplayName() string {
	if u.Fullname != "" {
		return u.Fullname
	}
	return u.Name
}
