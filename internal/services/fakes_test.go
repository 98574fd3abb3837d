package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"imuhira/internal/apperr"
	"imuhira/internal/models"

	"github.com/google/uuid"
)

// Заглушки хранилищ для тестов сервисов.

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments map[uuid.UUID]*models.Comment
	order    []uuid.UUID
	creates  int
	err      error
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[uuid.UUID]*models.Comment{}}
}

func (r *fakeCommentRepo) List(_ context.Context, ref models.ContentRef, onlyApproved bool) ([]models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := []models.Comment{}
	for i := len(r.order) - 1; i >= 0; i-- {
		c := r.comments[r.order[i]]
		if c.Ref() != ref || (onlyApproved && !c.IsApproved) {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok {
		return nil, fmt.Errorf("%w: comment %s", apperr.ErrNotFound, id)
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCommentRepo) Create(_ context.Context, in models.NewComment) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	if in.ParentID != nil {
		p, ok := r.comments[*in.ParentID]
		if !ok || p.Ref() != in.Ref {
			return nil, fmt.Errorf("%w: parent comment", apperr.ErrValidation)
		}
	}
	r.creates++
	c := &models.Comment{
		ID:         uuid.New(),
		ArticleID:  in.Ref.ArticleID(),
		DebateID:   in.Ref.DebateID(),
		ParentID:   in.ParentID,
		AuthorName: in.AuthorName,
		Content:    in.Content,
		IsApproved: true,
		CreatedAt:  time.Now(),
	}
	r.comments[c.ID] = c
	r.order = append(r.order, c.ID)
	cp := *c
	return &cp, nil
}

func (r *fakeCommentRepo) IncrementLike(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok {
		return fmt.Errorf("%w: comment %s", apperr.ErrNotFound, id)
	}
	c.Likes++
	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[id]; !ok {
		return fmt.Errorf("%w: comment %s", apperr.ErrNotFound, id)
	}
	delete(r.comments, id)
	return nil
}

func (r *fakeCommentRepo) SetApproval(_ context.Context, id uuid.UUID, approved bool) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok {
		return nil, fmt.Errorf("%w: comment %s", apperr.ErrNotFound, id)
	}
	c.IsApproved = approved
	cp := *c
	return &cp, nil
}

func (r *fakeCommentRepo) ListRecent(_ context.Context, limit int) ([]models.AdminComment, error) {
	return []models.AdminComment{}, nil
}

type fakeArticleRepo struct {
	mu      sync.Mutex
	bySlug  map[string]*models.Article
	lookups int
	err     error
}

func newFakeArticleRepo(list ...*models.Article) *fakeArticleRepo {
	r := &fakeArticleRepo{bySlug: map[string]*models.Article{}}
	for _, a := range list {
		r.bySlug[a.Slug] = a
	}
	return r
}

func (r *fakeArticleRepo) Create(_ context.Context, a *models.Article) (*models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bySlug[a.Slug]; ok {
		return nil, fmt.Errorf("%w: slug taken", apperr.ErrConflict)
	}
	cp := *a
	cp.ID = uuid.New()
	r.bySlug[cp.Slug] = &cp
	return &cp, nil
}

func (r *fakeArticleRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.bySlug {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("%w: article %s", apperr.ErrNotFound, id)
}

func (r *fakeArticleRepo) GetBySlug(_ context.Context, slug string, onlyPublished bool) (*models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookups++
	if r.err != nil {
		return nil, r.err
	}
	a, ok := r.bySlug[slug]
	if !ok || (onlyPublished && !a.IsPublished) {
		return nil, fmt.Errorf("%w: article %s", apperr.ErrNotFound, slug)
	}
	cp := *a
	return &cp, nil
}

func (r *fakeArticleRepo) List(_ context.Context, limit, offset int, onlyPublished bool) ([]*models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Article
	for _, a := range r.bySlug {
		if !onlyPublished || a.IsPublished {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeArticleRepo) Search(_ context.Context, _ string, _ int) ([]*models.Article, error) {
	return r.List(context.Background(), 0, 0, true)
}

func (r *fakeArticleRepo) Update(_ context.Context, a *models.Article) (*models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for slug, old := range r.bySlug {
		if old.ID == a.ID {
			delete(r.bySlug, slug)
		}
	}
	cp := *a
	r.bySlug[cp.Slug] = &cp
	return &cp, nil
}

func (r *fakeArticleRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for slug, a := range r.bySlug {
		if a.ID == id {
			delete(r.bySlug, slug)
			return nil
		}
	}
	return fmt.Errorf("%w: article %s", apperr.ErrNotFound, id)
}

func (r *fakeArticleRepo) UpdatePublish(_ context.Context, id uuid.UUID, publish bool) (*models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.bySlug {
		if a.ID == id {
			a.IsPublished = publish
			cp := *a
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("%w: article %s", apperr.ErrNotFound, id)
}

type fakeDebateRepo struct {
	mu     sync.Mutex
	bySlug map[string]*models.Debate
	err    error
}

func newFakeDebateRepo(list ...*models.Debate) *fakeDebateRepo {
	r := &fakeDebateRepo{bySlug: map[string]*models.Debate{}}
	for _, d := range list {
		r.bySlug[d.Slug] = d
	}
	return r
}

func (r *fakeDebateRepo) Create(_ context.Context, d *models.Debate) (*models.Debate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *d
	cp.ID = uuid.New()
	r.bySlug[cp.Slug] = &cp
	return &cp, nil
}

func (r *fakeDebateRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Debate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.bySlug {
		if d.ID == id {
			cp := *d
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("%w: debate %s", apperr.ErrNotFound, id)
}

func (r *fakeDebateRepo) GetBySlug(_ context.Context, slug string, onlyPublished bool) (*models.Debate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	d, ok := r.bySlug[slug]
	if !ok || (onlyPublished && !d.IsPublished) {
		return nil, fmt.Errorf("%w: debate %s", apperr.ErrNotFound, slug)
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDebateRepo) List(_ context.Context, limit, offset int, onlyPublished bool) ([]*models.Debate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Debate
	for _, d := range r.bySlug {
		if !onlyPublished || d.IsPublished {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDebateRepo) Search(_ context.Context, _ string, _ int) ([]*models.Debate, error) {
	return r.List(context.Background(), 0, 0, true)
}

func (r *fakeDebateRepo) Update(_ context.Context, d *models.Debate) (*models.Debate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *d
	r.bySlug[cp.Slug] = &cp
	return &cp, nil
}

func (r *fakeDebateRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for slug, d := range r.bySlug {
		if d.ID == id {
			delete(r.bySlug, slug)
			return nil
		}
	}
	return fmt.Errorf("%w: debate %s", apperr.ErrNotFound, id)
}

func (r *fakeDebateRepo) UpdatePublish(_ context.Context, id uuid.UUID, publish bool) (*models.Debate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.bySlug {
		if d.ID == id {
			d.IsPublished = publish
			cp := *d
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("%w: debate %s", apperr.ErrNotFound, id)
}

// recordingInvalidator запоминает сброшенные slug.
type recordingInvalidator struct {
	mu    sync.Mutex
	slugs []string
}

func (r *recordingInvalidator) Invalidate(_ context.Context, slugs ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slugs = append(r.slugs, slugs...)
}
