package models

import "time"

const DefaultSourceName = "manual"

// Article is a row of the articles table. ID and CreatedAt are filled by
// the database on insert.
type Article struct {
	ID         string    `json:"id" gorm:"primarykey"`
	Title      string    `json:"title" gorm:"not null"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	Author     string    `json:"author"`
	SourceName string    `json:"source_name"`
	URL        string    `json:"url" gorm:"column:url"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Article) TableName() string {
	return "articles"
}
