package models

type Console struct {
	ID   uint   `gorm:"primaryKey" json:"id" example:"1"`
	Name string `gorm:"uniqueIndex;not null" json:"name" example:"Nintendo"`
}

func (Console) TableName() string {
	return "consoles"
}
