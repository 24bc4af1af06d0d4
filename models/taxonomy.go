package models

// Category, Level and Topic are independent lookup tables sharing the same
// (name, description) shape. They differ only in table and name-column, which
// live in each struct's tags; Term gives the generic taxonomy manager the id
// access it needs without triplicating the CRUD logic.
type Term interface {
	TermID() uint
	SetTermID(uint)
}

type Category struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"category_name" gorm:"column:category_name;not null" binding:"required"`
	Description *string `json:"description"`
}

func (c *Category) TermID() uint      { return c.ID }
func (c *Category) SetTermID(id uint) { c.ID = id }

type Level struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"level_name" gorm:"column:level_name;not null" binding:"required"`
	Description *string `json:"description"`
}

func (l *Level) TermID() uint      { return l.ID }
func (l *Level) SetTermID(id uint) { l.ID = id }

type Topic struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"topic_name" gorm:"column:topic_name;not null" binding:"required"`
	Description *string `json:"description"`
}

func (t *Topic) TermID() uint      { return t.ID }
func (t *Topic) SetTermID(id uint) { t.ID = id }
