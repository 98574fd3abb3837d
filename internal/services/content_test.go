package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"imuhira/internal/apperr"
	"imuhira/internal/cache"
	"imuhira/internal/i18n"
	"imuhira/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sp(s string) *string { return &s }

func publishedArticle(slug string) *models.Article {
	return &models.Article{
		ID:          uuid.New(),
		Slug:        slug,
		Title:       "Hello",
		TitleFr:     sp("Bonjour"),
		Content:     "<p>Body</p>",
		IsPublished: true,
		CreatedAt:   time.Now(),
	}
}

func publishedDebate(slug string) *models.Debate {
	return &models.Debate{
		ID:           uuid.New(),
		Slug:         slug,
		Title:        "Debate",
		ProposerName: "Yes",
		OpposerName:  "No",
		IsPublished:  true,
		CreatedAt:    time.Now(),
	}
}

func TestLoadContentForDisplay_Article(t *testing.T) {
	svc := NewContentService(newFakeArticleRepo(publishedArticle("rain")), newFakeDebateRepo(), nil, time.Minute)

	view, err := svc.LoadContentForDisplay(context.Background(), "rain", i18n.French)
	require.NoError(t, err)
	assert.Equal(t, models.KindArticle, view.Kind)
	assert.Equal(t, "Bonjour", view.Resolved["title"])
	assert.Equal(t, "<p>Body</p>", view.Resolved["content"])
	assert.False(t, view.Placeholder)

	view, err = svc.LoadContentForDisplay(context.Background(), "rain", i18n.Swahili)
	require.NoError(t, err)
	assert.Equal(t, "Hello", view.Resolved["title"])
}

func TestLoadContentForDisplay_Debate(t *testing.T) {
	svc := NewContentService(newFakeArticleRepo(), newFakeDebateRepo(publishedDebate("schools")), nil, time.Minute)

	view, err := svc.LoadContentForDisplay(context.Background(), "schools", i18n.French)
	require.NoError(t, err)
	assert.Equal(t, models.KindDebate, view.Kind)
	assert.Equal(t, "Debate", view.Resolved["title"])
	assert.Equal(t, "Yes", view.Resolved["proposerName"])
	ref, ok := view.Ref()
	require.True(t, ok)
	assert.Equal(t, models.KindDebate, ref.Kind)
}

func TestLoadContentForDisplay_ArticleWinsSlugCollision(t *testing.T) {
	a := publishedArticle("same")
	svc := NewContentService(newFakeArticleRepo(a), newFakeDebateRepo(publishedDebate("same")), nil, time.Minute)

	view, err := svc.LoadContentForDisplay(context.Background(), "same", i18n.English)
	require.NoError(t, err)
	assert.Equal(t, models.KindArticle, view.Kind)
	assert.Equal(t, a.ID, view.Article.ID)
	assert.Nil(t, view.Debate)
}

func TestLoadContentForDisplay_UnpublishedIsNotFound(t *testing.T) {
	a := publishedArticle("draft")
	a.IsPublished = false
	svc := NewContentService(newFakeArticleRepo(a), newFakeDebateRepo(), nil, time.Minute)

	_, err := svc.LoadContentForDisplay(context.Background(), "draft", i18n.English)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.LoadContentForDisplay(context.Background(), "missing", i18n.English)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.LoadContentForDisplay(context.Background(), "  ", i18n.English)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestLoadContentForDisplay_StoreUnavailableGivesPlaceholder(t *testing.T) {
	articles := newFakeArticleRepo()
	articles.err = apperr.ErrStoreUnavailable
	svc := NewContentService(articles, newFakeDebateRepo(), nil, time.Minute)

	view, err := svc.LoadContentForDisplay(context.Background(), "rain", i18n.French)
	require.NoError(t, err)
	assert.True(t, view.Placeholder)
	assert.Equal(t, "fr", view.Locale)
	_, ok := view.Ref()
	assert.False(t, ok)
}

func TestLoadContentForDisplay_CacheAndInvalidate(t *testing.T) {
	articles := newFakeArticleRepo(publishedArticle("rain"))
	svc := NewContentService(articles, newFakeDebateRepo(), cache.NewLRU(16), time.Minute)
	ctx := context.Background()

	_, err := svc.LoadContentForDisplay(ctx, "rain", i18n.English)
	require.NoError(t, err)
	view, err := svc.LoadContentForDisplay(ctx, "rain", i18n.French)
	require.NoError(t, err)
	assert.Equal(t, "Bonjour", view.Resolved["title"])
	assert.Equal(t, 1, articles.lookups)

	svc.Invalidate(ctx, "rain")
	_, err = svc.LoadContentForDisplay(ctx, "rain", i18n.English)
	require.NoError(t, err)
	assert.Equal(t, 2, articles.lookups)
}

func TestSearch(t *testing.T) {
	older := publishedArticle("old")
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := publishedDebate("new")
	svc := NewContentService(newFakeArticleRepo(older), newFakeDebateRepo(newer), nil, time.Minute)

	_, err := svc.Search(context.Background(), " a ", i18n.English)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	cards, err := svc.Search(context.Background(), "de", i18n.French)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, models.KindDebate, cards[0].Kind)
	assert.Equal(t, "Bonjour", cards[1].Title)
}

func TestArticleCard_ExcerptFallback(t *testing.T) {
	a := publishedArticle("long")
	a.Content = "<p>" + strings.Repeat("word ", 100) + "</p>"
	svc := NewContentService(newFakeArticleRepo(a), newFakeDebateRepo(), nil, time.Minute)

	cards, err := svc.ListArticles(context.Background(), i18n.English, 20, 0)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.True(t, strings.HasSuffix(cards[0].Excerpt, "..."))
	assert.NotContains(t, cards[0].Excerpt, "<p>")
	assert.Equal(t, excerptRunes+3, len([]rune(cards[0].Excerpt)))
}
