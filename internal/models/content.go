package models

import (
	"time"

	"github.com/google/uuid"
)

type ContentKind string

const (
	KindArticle ContentKind = "article"
	KindDebate  ContentKind = "debate"
)

// Article — статья. Базовые поля на английском, варианты с суффиксами Fr/Sw/Kym.
type Article struct {
	ID         uuid.UUID `json:"id"`
	Slug       string    `json:"slug"`
	Category   string    `json:"category"`
	AuthorName string    `json:"authorName"`

	Title    string  `json:"title"`
	TitleFr  *string `json:"titleFr,omitempty"`
	TitleSw  *string `json:"titleSw,omitempty"`
	TitleKym *string `json:"titleKym,omitempty"`

	Excerpt    string  `json:"excerpt"`
	ExcerptFr  *string `json:"excerptFr,omitempty"`
	ExcerptSw  *string `json:"excerptSw,omitempty"`
	ExcerptKym *string `json:"excerptKym,omitempty"`

	Content    string  `json:"content"`
	ContentFr  *string `json:"contentFr,omitempty"`
	ContentSw  *string `json:"contentSw,omitempty"`
	ContentKym *string `json:"contentKym,omitempty"`

	CoverImage  *string   `json:"coverImage,omitempty"`
	VideoURL    *string   `json:"videoUrl,omitempty"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Field возвращает значение поля по имени (title, titleFr, ...); nil — поля нет или оно NULL.
func (a *Article) Field(name string) *string {
	switch name {
	case "title":
		return &a.Title
	case "titleFr":
		return a.TitleFr
	case "titleSw":
		return a.TitleSw
	case "titleKym":
		return a.TitleKym
	case "excerpt":
		return &a.Excerpt
	case "excerptFr":
		return a.ExcerptFr
	case "excerptSw":
		return a.ExcerptSw
	case "excerptKym":
		return a.ExcerptKym
	case "content":
		return &a.Content
	case "contentFr":
		return a.ContentFr
	case "contentSw":
		return a.ContentSw
	case "contentKym":
		return a.ContentKym
	}
	return nil
}

// Debate — дебаты двух сторон. Названия сторон не переводятся, переводятся только аргументы.
type Debate struct {
	ID         uuid.UUID `json:"id"`
	Slug       string    `json:"slug"`
	Category   string    `json:"category"`
	AuthorName string    `json:"authorName"`

	Title    string  `json:"title"`
	TitleFr  *string `json:"titleFr,omitempty"`
	TitleSw  *string `json:"titleSw,omitempty"`
	TitleKym *string `json:"titleKym,omitempty"`

	Summary    string  `json:"summary"`
	SummaryFr  *string `json:"summaryFr,omitempty"`
	SummarySw  *string `json:"summarySw,omitempty"`
	SummaryKym *string `json:"summaryKym,omitempty"`

	ProposerName         string  `json:"proposerName"`
	ProposerArguments    string  `json:"proposerArguments"`
	ProposerArgumentsFr  *string `json:"proposerArgumentsFr,omitempty"`
	ProposerArgumentsSw  *string `json:"proposerArgumentsSw,omitempty"`
	ProposerArgumentsKym *string `json:"proposerArgumentsKym,omitempty"`

	OpposerName         string  `json:"opposerName"`
	OpposerArguments    string  `json:"opposerArguments"`
	OpposerArgumentsFr  *string `json:"opposerArgumentsFr,omitempty"`
	OpposerArgumentsSw  *string `json:"opposerArgumentsSw,omitempty"`
	OpposerArgumentsKym *string `json:"opposerArgumentsKym,omitempty"`

	YoutubeVideoID *string   `json:"youtubeVideoId,omitempty"`
	MainImageURL   *string   `json:"mainImageUrl,omitempty"`
	IsPublished    bool      `json:"isPublished"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (d *Debate) Field(name string) *string {
	switch name {
	case "title":
		return &d.Title
	case "titleFr":
		return d.TitleFr
	case "titleSw":
		return d.TitleSw
	case "titleKym":
		return d.TitleKym
	case "summary":
		return &d.Summary
	case "summaryFr":
		return d.SummaryFr
	case "summarySw":
		return d.SummarySw
	case "summaryKym":
		return d.SummaryKym
	case "proposerName":
		return &d.ProposerName
	case "proposerArguments":
		return &d.ProposerArguments
	case "proposerArgumentsFr":
		return d.ProposerArgumentsFr
	case "proposerArgumentsSw":
		return d.ProposerArgumentsSw
	case "proposerArgumentsKym":
		return d.ProposerArgumentsKym
	case "opposerName":
		return &d.OpposerName
	case "opposerArguments":
		return &d.OpposerArguments
	case "opposerArgumentsFr":
		return d.OpposerArgumentsFr
	case "opposerArgumentsSw":
		return d.OpposerArgumentsSw
	case "opposerArgumentsKym":
		return d.OpposerArgumentsKym
	}
	return nil
}

// LocalizedArticle — отображаемые поля статьи на выбранном языке.
type LocalizedArticle struct {
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
}

type LocalizedDebate struct {
	Title             string `json:"title"`
	Summary           string `json:"summary"`
	ProposerName      string `json:"proposerName"`
	ProposerArguments string `json:"proposerArguments"`
	OpposerName       string `json:"opposerName"`
	OpposerArguments  string `json:"opposerArguments"`
}

// ContentView — ответ страницы материала: локализованные поля и исходная запись.
type ContentView struct {
	Kind        ContentKind       `json:"kind"`
	Locale      string            `json:"locale"`
	Resolved    map[string]string `json:"resolved"`
	Article     *Article          `json:"article,omitempty"`
	Debate      *Debate           `json:"debate,omitempty"`
	Placeholder bool              `json:"placeholder,omitempty"`
}

// ID материала, к которому привязываются комментарии.
func (v *ContentView) Ref() (ContentRef, bool) {
	switch {
	case v.Article != nil:
		return ContentRef{Kind: KindArticle, ID: v.Article.ID}, true
	case v.Debate != nil:
		return ContentRef{Kind: KindDebate, ID: v.Debate.ID}, true
	}
	return ContentRef{}, false
}

// ContentCard — элемент публичных списков и поиска.
type ContentCard struct {
	Kind       ContentKind `json:"kind"`
	ID         uuid.UUID   `json:"id"`
	Slug       string      `json:"slug"`
	Category   string      `json:"category"`
	Title      string      `json:"title"`
	Excerpt    string      `json:"excerpt"`
	ImageURL   *string     `json:"imageUrl,omitempty"`
	AuthorName string      `json:"authorName"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// swagger:model ArticleRequest
type ArticleRequest struct {
	Slug       string  `json:"slug"       validate:"required,max=200" example:"rains-return-to-uvira"`
	Category   string  `json:"category"   validate:"max=100"          example:"News"`
	AuthorName string  `json:"authorName" validate:"max=120"`
	Title      string  `json:"title"      validate:"required,max=300" example:"Rains return to Uvira"`
	TitleFr    *string `json:"titleFr"    validate:"omitempty,max=300"`
	TitleSw    *string `json:"titleSw"    validate:"omitempty,max=300"`
	TitleKym   *string `json:"titleKym"   validate:"omitempty,max=300"`
	Excerpt    string  `json:"excerpt"`
	ExcerptFr  *string `json:"excerptFr"`
	ExcerptSw  *string `json:"excerptSw"`
	ExcerptKym *string `json:"excerptKym"`
	Content    string  `json:"content"    validate:"required"        example:"<p>Body</p>"`
	ContentFr  *string `json:"contentFr"`
	ContentSw  *string `json:"contentSw"`
	ContentKym *string `json:"contentKym"`
	CoverImage *string `json:"coverImage"`
	VideoURL   *string `json:"videoUrl"`
	// IsPublished — nil означает «не менять» при обновлении и false при создании.
	IsPublished *bool `json:"isPublished"`
}

// swagger:model DebateRequest
type DebateRequest struct {
	Slug                 string  `json:"slug"         validate:"required,max=200" example:"should-schools-teach-in-kinyamulenge"`
	Category             string  `json:"category"     validate:"required,max=100" example:"Education"`
	AuthorName           string  `json:"authorName"   validate:"max=120"`
	Title                string  `json:"title"        validate:"required,max=300"`
	TitleFr              *string `json:"titleFr"      validate:"omitempty,max=300"`
	TitleSw              *string `json:"titleSw"      validate:"omitempty,max=300"`
	TitleKym             *string `json:"titleKym"     validate:"omitempty,max=300"`
	Summary              string  `json:"summary"`
	SummaryFr            *string `json:"summaryFr"`
	SummarySw            *string `json:"summarySw"`
	SummaryKym           *string `json:"summaryKym"`
	ProposerName         string  `json:"proposerName" validate:"max=120"`
	ProposerArguments    string  `json:"proposerArguments"`
	ProposerArgumentsFr  *string `json:"proposerArgumentsFr"`
	ProposerArgumentsSw  *string `json:"proposerArgumentsSw"`
	ProposerArgumentsKym *string `json:"proposerArgumentsKym"`
	OpposerName          string  `json:"opposerName"  validate:"max=120"`
	OpposerArguments     string  `json:"opposerArguments"`
	OpposerArgumentsFr   *string `json:"opposerArgumentsFr"`
	OpposerArgumentsSw   *string `json:"opposerArgumentsSw"`
	OpposerArgumentsKym  *string `json:"opposerArgumentsKym"`
	YoutubeVideoID       *string `json:"youtubeVideoId"`
	MainImageURL         *string `json:"mainImageUrl"`
	IsPublished          *bool   `json:"isPublished"`
}
