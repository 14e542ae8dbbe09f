package models

// UserCompetitive is a user's leaderboard row.
type UserCompetitive struct {
	IDUser            string  `json:"id_user" gorm:"column:id_user;primaryKey;type:varchar(128)"`
	Trophies          int     `json:"trophies" gorm:"not null;default:0"`
	MaxMetersTraveled float64 `json:"max_meters_traveled" gorm:"column:max_meters_traveled;not null;default:0"`
}

func (UserCompetitive) TableName() string { return "user_competitive" }
