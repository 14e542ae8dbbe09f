package models

// UserUnlocks holds the cosmetics a user has unlocked, one list per kind.
type UserUnlocks struct {
	UserID        string     `json:"user_id" gorm:"primaryKey;type:varchar(128)"`
	IconProfile   StringList `json:"icon_profile"`
	BannerProfile StringList `json:"banner_profile"`
	SkinsUnlock   StringList `json:"skins_unlock"`
	AnimVictory   StringList `json:"anim_victory"`
	AnimLose      StringList `json:"anim_lose"`
}

func (UserUnlocks) TableName() string { return "user_unlocks" }

// Unlock list columns.
const (
	UnlockIconProfile   = "icon_profile"
	UnlockBannerProfile = "banner_profile"
	UnlockSkinsUnlock   = "skins_unlock"
	UnlockAnimVictory   = "anim_victory"
	UnlockAnimLose      = "anim_lose"
)

// NewDefaultUnlocks seeds every list with the NONE cosmetic.
func NewDefaultUnlocks(userID string) *UserUnlocks {
	return &UserUnlocks{
		UserID:        userID,
		IconProfile:   StringList{None},
		BannerProfile: StringList{None},
		SkinsUnlock:   StringList{None},
		AnimVictory:   StringList{None},
		AnimLose:      StringList{None},
	}
}

// List returns the list stored under column.
func (u *UserUnlocks) List(column string) (StringList, bool) {
	switch column {
	case UnlockIconProfile:
		return u.IconProfile, true
	case UnlockBannerProfile:
		return u.BannerProfile, true
	case UnlockSkinsUnlock:
		return u.SkinsUnlock, true
	case UnlockAnimVictory:
		return u.AnimVictory, true
	case UnlockAnimLose:
		return u.AnimLose, true
	}
	return nil, false
}
