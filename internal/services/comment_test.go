package services

import (
	"context"
	"strings"
	"sync"
	"testing"

	"imuhira/internal/apperr"
	"imuhira/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var articleRef = models.ContentRef{Kind: models.KindArticle, ID: uuid.MustParse("11111111-1111-1111-1111-111111111111")}

func TestCreateComment_Validation(t *testing.T) {
	repo := newFakeCommentRepo()
	svc := NewCommentService(repo, 0)
	ctx := context.Background()

	cases := []models.NewComment{
		{Ref: articleRef, AuthorName: "", Content: "text"},
		{Ref: articleRef, AuthorName: "Amani", Content: "   "},
		{Ref: articleRef, AuthorName: "<b></b>", Content: "text"},
		{Ref: models.ContentRef{}, AuthorName: "Amani", Content: "text"},
		{Ref: articleRef, AuthorName: strings.Repeat("a", maxAuthorRunes+1), Content: "text"},
		{Ref: articleRef, AuthorName: "Amani", Content: strings.Repeat("я", maxCommentRunes+1)},
	}
	for _, in := range cases {
		_, err := svc.CreateComment(ctx, in)
		assert.ErrorIs(t, err, apperr.ErrValidation, "%+v", in)
	}
	assert.Zero(t, repo.creates)
}

func TestCreateComment_StripsMarkup(t *testing.T) {
	repo := newFakeCommentRepo()
	svc := NewCommentService(repo, 0)

	c, err := svc.CreateComment(context.Background(), models.NewComment{
		Ref:        articleRef,
		AuthorName: "  Amani  ",
		Content:    "<script>alert(1)</script><b>Good</b> point &amp; more",
	})
	require.NoError(t, err)
	assert.Equal(t, "Amani", c.AuthorName)
	assert.Equal(t, "Good point & more", c.Content)
	assert.Nil(t, c.ParentID)
}

func TestCreateComment_NilParentIsTopLevel(t *testing.T) {
	repo := newFakeCommentRepo()
	svc := NewCommentService(repo, 0)

	nilID := uuid.Nil
	c, err := svc.CreateComment(context.Background(), models.NewComment{
		Ref: articleRef, ParentID: &nilID, AuthorName: "A", Content: "B",
	})
	require.NoError(t, err)
	assert.Nil(t, c.ParentID)
}

func TestCreateComment_ParentMustMatchContent(t *testing.T) {
	repo := newFakeCommentRepo()
	svc := NewCommentService(repo, 0)
	ctx := context.Background()

	parent, err := svc.CreateComment(ctx, models.NewComment{Ref: articleRef, AuthorName: "A", Content: "root"})
	require.NoError(t, err)

	reply, err := svc.CreateComment(ctx, models.NewComment{Ref: articleRef, ParentID: &parent.ID, AuthorName: "B", Content: "reply"})
	require.NoError(t, err)
	assert.Equal(t, parent.ID, *reply.ParentID)

	other := models.ContentRef{Kind: models.KindDebate, ID: articleRef.ID}
	_, err = svc.CreateComment(ctx, models.NewComment{Ref: other, ParentID: &parent.ID, AuthorName: "C", Content: "x"})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestIncrementLike_Accumulates(t *testing.T) {
	repo := newFakeCommentRepo()
	svc := NewCommentService(repo, 0)
	ctx := context.Background()

	c, err := svc.CreateComment(ctx, models.NewComment{Ref: articleRef, AuthorName: "A", Content: "B"})
	require.NoError(t, err)

	require.NoError(t, svc.IncrementLike(ctx, c.ID))
	require.NoError(t, svc.IncrementLike(ctx, c.ID))
	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Likes)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.IncrementLike(ctx, c.ID))
		}()
	}
	wg.Wait()
	got, err = repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 52, got.Likes)

	assert.ErrorIs(t, svc.IncrementLike(ctx, uuid.New()), apperr.ErrNotFound)
}

func TestListComments_OnlyApprovedNewestFirst(t *testing.T) {
	repo := newFakeCommentRepo()
	svc := NewCommentService(repo, 0)
	ctx := context.Background()

	first, err := svc.CreateComment(ctx, models.NewComment{Ref: articleRef, AuthorName: "A", Content: "first"})
	require.NoError(t, err)
	second, err := svc.CreateComment(ctx, models.NewComment{Ref: articleRef, AuthorName: "A", Content: "second"})
	require.NoError(t, err)
	hidden, err := svc.CreateComment(ctx, models.NewComment{Ref: articleRef, AuthorName: "A", Content: "hidden"})
	require.NoError(t, err)
	_, err = svc.SetApproval(ctx, hidden.ID, false)
	require.NoError(t, err)

	list, err := svc.ListComments(ctx, articleRef)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestListComments_StoreUnavailableGivesEmptyList(t *testing.T) {
	repo := newFakeCommentRepo()
	repo.err = apperr.ErrStoreUnavailable
	svc := NewCommentService(repo, 0)

	list, err := svc.ListComments(context.Background(), articleRef)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	_, err = svc.ListComments(context.Background(), models.ContentRef{})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestThread_BuildsTree(t *testing.T) {
	repo := newFakeCommentRepo()
	svc := NewCommentService(repo, 0)
	ctx := context.Background()

	root, err := svc.CreateComment(ctx, models.NewComment{Ref: articleRef, AuthorName: "A", Content: "root"})
	require.NoError(t, err)
	_, err = svc.CreateComment(ctx, models.NewComment{Ref: articleRef, ParentID: &root.ID, AuthorName: "B", Content: "reply"})
	require.NoError(t, err)

	tree, err := svc.Thread(ctx, articleRef)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, root.ID, tree[0].Comment.ID)
	assert.Len(t, tree[0].Replies, 1)
}
