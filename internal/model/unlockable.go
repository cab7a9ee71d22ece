package model

// Unlockable is a reward catalog item. Users either have it or not.
type Unlockable struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Description string `json:"description" gorm:"size:255"`
	ItemType    string `json:"item_type" gorm:"size:50"`
	PointsCost  int    `json:"points_cost" gorm:"not null"`
}
