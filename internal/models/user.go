package models

// None is the sentinel used for unset cosmetics and for accounts that have no
// local password (external identity provider).
const None = "NONE"

// MaxNameLength is the longest display name the server stores.
const MaxNameLength = 12

// User is a player account.
type User struct {
	ID             string  `json:"id" gorm:"primaryKey;type:varchar(128)"`
	Name           string  `json:"name" gorm:"type:varchar(12)"`
	NumVorenMoney  int     `json:"num_voren_money" gorm:"not null;default:0"`
	NumAurumMoney  int     `json:"num_aurum_money" gorm:"not null;default:0"`
	IconSelected   string  `json:"icon_selected" gorm:"default:NONE"`
	BannerSelected string  `json:"banner_selected" gorm:"default:NONE"`
	Email          string  `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	SkinSelected   string  `json:"skin_selected" gorm:"default:NONE"`
	Password       *string `json:"-"` // plaintext or NONE, never serialized
	AnimVictory    string  `json:"anim_victory" gorm:"default:NONE"`
	AnimLose       string  `json:"anim_lose" gorm:"default:NONE"`
}

func (User) TableName() string { return "user" }

// HasLocalPassword is false for NONE-password (externally authenticated) accounts.
func (u *User) HasLocalPassword() bool {
	return u.Password == nil || *u.Password != None
}

// TruncateName cuts a display name to MaxNameLength characters.
func TruncateName(name string) string {
	runes := []rune(name)
	if len(runes) > MaxNameLength {
		return string(runes[:MaxNameLength])
	}
	return name
}
