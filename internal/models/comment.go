package models

import (
	"fmt"
	"time"

	"imuhira/internal/apperr"

	"github.com/google/uuid"
)

// Comment — строка таблицы comments. Ровно одно из ArticleID/DebateID задано.
type Comment struct {
	ID         uuid.UUID  `json:"id"`
	ArticleID  *uuid.UUID `json:"articleId,omitempty"`
	DebateID   *uuid.UUID `json:"debateId,omitempty"`
	ParentID   *uuid.UUID `json:"parentId"`
	AuthorName string     `json:"authorName"`
	Content    string     `json:"content"`
	Likes      int        `json:"likes"`
	IsApproved bool       `json:"isApproved"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// Ref — материал, к которому относится комментарий.
func (c *Comment) Ref() ContentRef {
	if c.ArticleID != nil {
		return ContentRef{Kind: KindArticle, ID: *c.ArticleID}
	}
	if c.DebateID != nil {
		return ContentRef{Kind: KindDebate, ID: *c.DebateID}
	}
	return ContentRef{}
}

// ContentRef — ссылка на материал (статья или дебаты).
type ContentRef struct {
	Kind ContentKind
	ID   uuid.UUID
}

// NewContentRef собирает ссылку из пары необязательных id; задано должно быть ровно одно.
func NewContentRef(articleID, debateID *uuid.UUID) (ContentRef, error) {
	switch {
	case articleID != nil && debateID != nil:
		return ContentRef{}, fmt.Errorf("%w: only one of articleId/debateId may be set", apperr.ErrValidation)
	case articleID != nil && *articleID != uuid.Nil:
		return ContentRef{Kind: KindArticle, ID: *articleID}, nil
	case debateID != nil && *debateID != uuid.Nil:
		return ContentRef{Kind: KindDebate, ID: *debateID}, nil
	}
	return ContentRef{}, fmt.Errorf("%w: articleId or debateId is required", apperr.ErrValidation)
}

func (r ContentRef) Valid() bool {
	return (r.Kind == KindArticle || r.Kind == KindDebate) && r.ID != uuid.Nil
}

// ArticleID / DebateID — значения для nullable-колонок.
func (r ContentRef) ArticleID() *uuid.UUID {
	if r.Kind != KindArticle {
		return nil
	}
	id := r.ID
	return &id
}

func (r ContentRef) DebateID() *uuid.UUID {
	if r.Kind != KindDebate {
		return nil
	}
	id := r.ID
	return &id
}

func (r ContentRef) String() string {
	return string(r.Kind) + ":" + r.ID.String()
}

// NewComment — входные данные для создания комментария или ответа.
type NewComment struct {
	Ref        ContentRef
	ParentID   *uuid.UUID
	AuthorName string
	Content    string
}

// swagger:model CreateCommentRequest
type CreateCommentRequest struct {
	ArticleID  *uuid.UUID `json:"articleId,omitempty"`
	DebateID   *uuid.UUID `json:"debateId,omitempty"`
	ParentID   *uuid.UUID `json:"parentId,omitempty"`
	AuthorName string     `json:"authorName" validate:"max=80"   example:"Amani"`
	Content    string     `json:"content"    validate:"max=5000" example:"Both sides raise good points."`
}

// AdminComment — комментарий для модерации вместе с заголовком материала.
type AdminComment struct {
	Comment
	ContentKind  ContentKind `json:"contentKind"`
	ContentTitle string      `json:"contentTitle"`
	ContentSlug  string      `json:"contentSlug"`
}
