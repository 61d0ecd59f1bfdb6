package repositories

import (
	"context"
	"errors"

	"article-intake/models"

	"gorm.io/gorm"
)

var ErrNoRowReturned = errors.New("insert returned no row")

const insertArticleSQL = `
		INSERT INTO articles (title, content, author, source_name, url)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, created_at
	`

type ArticleRepository interface {
	Insert(ctx context.Context, article *models.Article) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// Insert writes article in its own transaction and fills ID and CreatedAt
// from the RETURNING clause once the transaction has committed. Any error
// rolls the transaction back and releases the connection.
func (r *articleRepository) Insert(ctx context.Context, article *models.Article) error {
	var row models.Article
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Raw(insertArticleSQL,
			article.Title,
			article.Content,
			article.Author,
			article.SourceName,
			article.URL,
		).Scan(&row)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNoRowReturned
		}
		return nil
	})
	if err != nil {
		return err
	}

	article.ID = row.ID
	article.CreatedAt = row.CreatedAt
	return nil
}
