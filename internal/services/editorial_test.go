package services

import (
	"context"
	"testing"

	"imuhira/internal/apperr"
	"imuhira/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleCreate_DefaultsAndSanitize(t *testing.T) {
	repo := newFakeArticleRepo()
	inv := &recordingInvalidator{}
	svc := NewArticleService(repo, inv)

	a, err := svc.Create(context.Background(), models.ArticleRequest{
		Slug:      "  Rains-Return ",
		Title:     "Rains return",
		TitleFr:   sp("   "),
		Content:   `<p onclick="x()">Body</p><script>alert(1)</script><img src="https://images.unsplash.com/a.jpg" alt="a">`,
		ContentSw: sp("<p>Mwili</p>"),
	})
	require.NoError(t, err)
	assert.Equal(t, "rains-return", a.Slug)
	assert.Equal(t, defaultCategory, a.Category)
	assert.Equal(t, defaultAuthor, a.AuthorName)
	assert.Nil(t, a.TitleFr)
	assert.NotContains(t, a.Content, "script")
	assert.NotContains(t, a.Content, "onclick")
	assert.Contains(t, a.Content, "<img")
	require.NotNil(t, a.ContentSw)
	assert.Equal(t, "<p>Mwili</p>", *a.ContentSw)
	assert.False(t, a.IsPublished)
	assert.Equal(t, []string{"rains-return"}, inv.slugs)
}

func TestArticleCreate_Validation(t *testing.T) {
	svc := NewArticleService(newFakeArticleRepo(), &recordingInvalidator{})
	ctx := context.Background()

	bad := []models.ArticleRequest{
		{Slug: "", Title: "T", Content: "C"},
		{Slug: "bad slug", Title: "T", Content: "C"},
		{Slug: "ok", Title: " ", Content: "C"},
		{Slug: "ok", Title: "T", Content: "<script>x</script>"},
		{Slug: "ok", Title: "T", Content: "C", CoverImage: sp("http://images.unsplash.com/a.jpg")},
		{Slug: "ok", Title: "T", Content: "C", CoverImage: sp("https://evil.example.com/a.jpg")},
		{Slug: "ok", Title: "T", Content: "C", VideoURL: sp("https://vimeo.example.org/1")},
	}
	for _, req := range bad {
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, apperr.ErrValidation, "%+v", req)
	}
}

func TestArticleUpdate_KeepsPublishWhenOmitted(t *testing.T) {
	repo := newFakeArticleRepo()
	inv := &recordingInvalidator{}
	svc := NewArticleService(repo, inv)
	ctx := context.Background()

	yes := true
	a, err := svc.Create(ctx, models.ArticleRequest{Slug: "one", Title: "T", Content: "C", IsPublished: &yes})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, a.ID, models.ArticleRequest{Slug: "two", Title: "T2", Content: "C"})
	require.NoError(t, err)
	assert.True(t, updated.IsPublished)
	assert.Equal(t, "two", updated.Slug)
	assert.Equal(t, []string{"one", "one", "two"}, inv.slugs)

	unpub, err := svc.SetPublish(ctx, a.ID, false)
	require.NoError(t, err)
	assert.False(t, unpub.IsPublished)

	require.NoError(t, svc.Delete(ctx, a.ID))
	_, err = svc.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPreviewHTML(t *testing.T) {
	svc := NewArticleService(newFakeArticleRepo(), &recordingInvalidator{})
	out := svc.PreviewHTML(`<h2>Title</h2><iframe src="x"></iframe>`)
	assert.Equal(t, "<h2>Title</h2>", out)
}

func TestDebateCreate(t *testing.T) {
	repo := newFakeDebateRepo()
	inv := &recordingInvalidator{}
	svc := NewDebateService(repo, inv)

	d, err := svc.Create(context.Background(), models.DebateRequest{
		Slug:           "schools",
		Category:       "Education",
		Title:          "Teach in mother tongue?",
		YoutubeVideoID: sp("https://www.youtube.com/watch?v=dQw4w9WgXcQ"),
	})
	require.NoError(t, err)
	assert.Equal(t, defaultProposer, d.ProposerName)
	assert.Equal(t, defaultOpposer, d.OpposerName)
	assert.Equal(t, defaultAuthor, d.AuthorName)
	require.NotNil(t, d.YoutubeVideoID)
	assert.Equal(t, "dQw4w9WgXcQ", *d.YoutubeVideoID)
	assert.Equal(t, []string{"schools"}, inv.slugs)
}

func TestDebateCreate_Validation(t *testing.T) {
	svc := NewDebateService(newFakeDebateRepo(), &recordingInvalidator{})
	ctx := context.Background()

	bad := []models.DebateRequest{
		{Slug: "s", Title: "T"},
		{Slug: "s", Category: "C", Title: "T", YoutubeVideoID: sp("not a video")},
		{Slug: "s", Category: "C", Title: "T", MainImageURL: sp("https://images.unsplash.com/../etc/passwd")},
	}
	for _, req := range bad {
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, apperr.ErrValidation, "%+v", req)
	}
}
