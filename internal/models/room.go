package models

// MultiplayerRoom pairs two players. Player2ID stays nil until a guest joins.
type MultiplayerRoom struct {
	RoomCode  string  `json:"room_code" gorm:"primaryKey;type:varchar(64)"`
	Player1ID string  `json:"player1_id" gorm:"not null;index"`
	Player2ID *string `json:"player2_id"`
}

func (MultiplayerRoom) TableName() string { return "multiplayer_rooms" }

// Complete reports whether both seats are taken.
func (r *MultiplayerRoom) Complete() bool {
	return r.Player2ID != nil
}
