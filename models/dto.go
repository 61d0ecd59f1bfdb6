package models

import "time"

type SubmitArticleRequest struct {
	Title      string  `json:"title" validate:"required,min=1"`
	Content    string  `json:"content" validate:"required,min=1"`
	Author     *string `json:"author"`
	SourceName *string `json:"source_name"`
	URL        *string `json:"url"`
}

// ToArticle applies the defaults for omitted optional fields.
func (r SubmitArticleRequest) ToArticle() Article {
	a := Article{
		Title:      r.Title,
		Content:    r.Content,
		SourceName: DefaultSourceName,
	}
	if r.Author != nil {
		a.Author = *r.Author
	}
	if r.SourceName != nil && *r.SourceName != "" {
		a.SourceName = *r.SourceName
	}
	if r.URL != nil {
		a.URL = *r.URL
	}
	return a
}

type SubmitArticleResponse struct {
	OK        bool   `json:"ok"`
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
}

func NewSubmitArticleResponse(a *Article) SubmitArticleResponse {
	return SubmitArticleResponse{
		OK:        true,
		ID:        a.ID,
		CreatedAt: FormatTimestamp(a.CreatedAt),
	}
}

type PingResponse struct {
	OK bool   `json:"ok"`
	TS string `json:"ts"`
}

type ErrorResponse struct {
	Detail interface{} `json:"detail"`
}

// FormatTimestamp renders t as RFC 3339 in UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
