package models

import (
	"time"

	"gorm.io/datatypes"
)

// ShopItem is a catalog entry. Items are immutable once listed.
type ShopItem struct {
	ID            int            `json:"id" gorm:"primaryKey;autoIncrement"`
	TypeOffer     string         `json:"type_offer" gorm:"not null"`
	ElementsOffer datatypes.JSON `json:"elements_offer"`
}

func (ShopItem) TableName() string { return "shop" }

// CurrentShop is one entry of the live offer rotation.
type CurrentShop struct {
	ID     uint `json:"-" gorm:"primaryKey;autoIncrement"`
	IDShop int  `json:"id_shop" gorm:"column:id_shop;not null;index"`
}

func (CurrentShop) TableName() string { return "current_shop" }

// UserShop assigns an offer to a user with the time it can next be spun.
type UserShop struct {
	IDUser     string    `json:"id_user" gorm:"column:id_user;primaryKey;type:varchar(128)"`
	IDShop     int       `json:"id_shop" gorm:"column:id_shop;primaryKey;autoIncrement:false"`
	TimeToSpin time.Time `json:"time_to_spin" gorm:"column:time_to_spin"`
}

func (UserShop) TableName() string { return "user_shop" }
