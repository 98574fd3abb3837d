package thread

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"imuhira/internal/apperr"
	"imuhira/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listResult struct {
	list []models.Comment
	err  error
}

// fakeSource отвечает на ListComments из очереди каналов, что позволяет задерживать отдельные ответы.
type fakeSource struct {
	mu      sync.Mutex
	lists   []chan listResult
	likeErr error
	likeGo  chan struct{}
	likes   map[uuid.UUID]int
	created []models.NewComment
}

func newFakeSource() *fakeSource {
	return &fakeSource{likes: map[uuid.UUID]int{}}
}

// queue добавляет ответ для следующего вызова ListComments.
func (f *fakeSource) queue() chan listResult {
	ch := make(chan listResult, 1)
	f.mu.Lock()
	f.lists = append(f.lists, ch)
	f.mu.Unlock()
	return ch
}

func (f *fakeSource) ListComments(_ context.Context, _ models.ContentRef) ([]models.Comment, error) {
	f.mu.Lock()
	ch := f.lists[0]
	f.lists = f.lists[1:]
	f.mu.Unlock()
	r := <-ch
	return r.list, r.err
}

func (f *fakeSource) CreateComment(_ context.Context, in models.NewComment) (*models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, in)
	return &models.Comment{ID: uuid.New(), ParentID: in.ParentID, AuthorName: in.AuthorName, Content: in.Content}, nil
}

func (f *fakeSource) IncrementLike(_ context.Context, id uuid.UUID) error {
	if f.likeGo != nil {
		<-f.likeGo
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.likeErr != nil {
		return f.likeErr
	}
	f.likes[id]++
	return nil
}

var testRef = models.ContentRef{Kind: models.KindArticle, ID: id(200)}

func withLikes(c models.Comment, n int) models.Comment {
	c.Likes = n
	return c
}

func TestView_RefreshDiscardsStaleResponse(t *testing.T) {
	src := newFakeSource()
	v := NewView(src, testRef)
	ctx := context.Background()

	first := src.queue()
	second := src.queue()

	var (
		wg         sync.WaitGroup
		firstFresh bool
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		firstFresh, _ = v.Refresh(ctx)
	}()
	// Ждём, пока первый запрос займёт свой ответ из очереди.
	require.Eventually(t, func() bool {
		src.mu.Lock()
		defer src.mu.Unlock()
		return len(src.lists) == 1
	}, time.Second, time.Millisecond)

	second <- listResult{list: []models.Comment{comment(2, nil)}}
	fresh, err := v.Refresh(ctx)
	require.NoError(t, err)
	assert.True(t, fresh)

	first <- listResult{list: []models.Comment{comment(1, nil)}}
	wg.Wait()
	assert.False(t, firstFresh)

	got := v.Comments()
	require.Len(t, got, 1)
	assert.Equal(t, id(2), got[0].ID)
}

func TestView_RefreshErrorKeepsList(t *testing.T) {
	src := newFakeSource()
	v := NewView(src, testRef)
	ctx := context.Background()

	src.queue() <- listResult{list: []models.Comment{comment(1, nil)}}
	_, err := v.Refresh(ctx)
	require.NoError(t, err)

	src.queue() <- listResult{err: apperr.ErrStoreUnavailable}
	_, err = v.Refresh(ctx)
	assert.ErrorIs(t, err, apperr.ErrStoreUnavailable)
	assert.Len(t, v.Comments(), 1)
}

func TestView_LikeIsOptimisticAndReconciles(t *testing.T) {
	src := newFakeSource()
	src.likeGo = make(chan struct{})
	v := NewView(src, testRef)
	ctx := context.Background()

	src.queue() <- listResult{list: []models.Comment{comment(1, nil)}}
	_, err := v.Refresh(ctx)
	require.NoError(t, err)

	v.Like(ctx, id(1))
	assert.Equal(t, 1, v.Comments()[0].Likes)

	// Хранилище ещё не засчитало лайк: локальный счётчик не должен уменьшиться.
	src.queue() <- listResult{list: []models.Comment{comment(1, nil)}}
	_, err = v.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Comments()[0].Likes)

	close(src.likeGo)
	v.Wait()
	assert.Equal(t, 1, src.likes[id(1)])

	src.queue() <- listResult{list: []models.Comment{withLikes(comment(1, nil), 1)}}
	_, err = v.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Comments()[0].Likes)
}

func TestView_LikeFailureKeepsLocalCount(t *testing.T) {
	src := newFakeSource()
	src.likeErr = errors.New("boom")
	v := NewView(src, testRef)
	ctx := context.Background()

	src.queue() <- listResult{list: []models.Comment{comment(1, nil)}}
	_, err := v.Refresh(ctx)
	require.NoError(t, err)

	v.Like(ctx, id(1))
	v.Like(ctx, id(1))
	v.Wait()
	assert.Equal(t, 2, v.Comments()[0].Likes)
}

func TestView_LikeSurvivesCanceledContext(t *testing.T) {
	src := newFakeSource()
	v := NewView(src, testRef)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v.Like(ctx, id(7))
	v.Wait()
	assert.Equal(t, 1, src.likes[id(7)])
}

func TestView_PostReplyClosesForm(t *testing.T) {
	src := newFakeSource()
	v := NewView(src, testRef)
	ctx := context.Background()

	v.ToggleReply(id(1))
	src.queue() <- listResult{list: []models.Comment{comment(1, nil)}}

	_, err := v.Post(ctx, "Amani", "Agreed")
	require.NoError(t, err)

	require.Len(t, src.created, 1)
	require.NotNil(t, src.created[0].ParentID)
	assert.Equal(t, id(1), *src.created[0].ParentID)
	assert.Equal(t, testRef, src.created[0].Ref)
	_, open := v.Replying()
	assert.False(t, open)
}

func TestView_PostRejectsBlank(t *testing.T) {
	src := newFakeSource()
	v := NewView(src, testRef)

	_, err := v.Post(context.Background(), "  ", "text")
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Empty(t, src.created)
}
