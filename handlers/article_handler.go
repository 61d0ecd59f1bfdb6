package handlers

import (
	"errors"

	"article-intake/helper"
	"article-intake/metrics"
	"article-intake/middleware"
	"article-intake/models"
	"article-intake/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
	log            *zap.Logger
}

func NewArticleHandler(articleService services.ArticleService, h *helper.HTTPHelper, log *zap.Logger) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: h, log: log}
}

func (h *ArticleHandler) SubmitArticle(c *gin.Context) {
	var req models.SubmitArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.RecordSubmitFailure("validation")
		h.Helper.SendValidationError(c, models.NewValidationError("body", err.Error()))
		return
	}

	if err := h.Helper.ValidateStruct(req); err != nil {
		metrics.RecordSubmitFailure("validation")
		h.Helper.SendError(c, err)
		return
	}

	article, err := h.articleService.SubmitArticle(c.Request.Context(), req)
	if err != nil {
		h.recordFailure(c, err)
		h.Helper.SendError(c, err)
		return
	}

	metrics.RecordSubmitSuccess()
	h.Helper.SendSuccess(c, models.NewSubmitArticleResponse(article))
}

func (h *ArticleHandler) recordFailure(c *gin.Context, err error) {
	var dbErr *models.ErrorDatabase
	if !errors.As(err, &dbErr) {
		metrics.RecordSubmitFailure("validation")
		return
	}

	metrics.RecordSubmitFailure(string(dbErr.Kind))
	h.log.Error("article insert failed",
		zap.String("kind", string(dbErr.Kind)),
		zap.String("request_id", middleware.RequestID(c)),
		zap.Error(dbErr.Err),
	)
}
