package services

import (
	"context"

	"article-intake/models"
	"article-intake/repositories"
)

type ArticleService interface {
	SubmitArticle(ctx context.Context, req models.SubmitArticleRequest) (*models.Article, error)
}

type articleService struct {
	articleRepo repositories.ArticleRepository
}

func NewArticleService(articleRepo repositories.ArticleRepository) ArticleService {
	return &articleService{articleRepo: articleRepo}
}

// SubmitArticle stores a new article. It returns *models.ErrorValidation
// before touching the repository when title or content is empty, and
// *models.ErrorDatabase for any persistence failure.
func (s *articleService) SubmitArticle(ctx context.Context, req models.SubmitArticleRequest) (*models.Article, error) {
	article := req.ToArticle()

	if article.Title == "" {
		return nil, models.NewValidationError("title", "title is a required field")
	}
	if article.Content == "" {
		return nil, models.NewValidationError("content", "content is a required field")
	}

	if err := s.articleRepo.Insert(ctx, &article); err != nil {
		return nil, models.NewDatabaseError(err)
	}

	return &article, nil
}
