package services

import (
	"context"
	"fmt"
	"html"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"imuhira/internal/apperr"
	"imuhira/internal/cache"
	"imuhira/internal/i18n"
	"imuhira/internal/logger"
	"imuhira/internal/models"
	"imuhira/internal/repository"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	excerptRunes    = 150
	searchMinRunes  = 2
	searchLimit     = 20
	contentCacheKey = "content:slug:"
)

// ContentService — чтение опубликованных материалов для читателей.
type ContentService interface {
	// LoadContentForDisplay ищет опубликованный материал по slug в обоих хранилищах и
	// возвращает локализованные поля. Комментарии не загружает.
	LoadContentForDisplay(ctx context.Context, slug string, loc i18n.Locale) (*models.ContentView, error)
	ListArticles(ctx context.Context, loc i18n.Locale, limit, offset int) ([]models.ContentCard, error)
	ListDebates(ctx context.Context, loc i18n.Locale, limit, offset int) ([]models.ContentCard, error)
	Search(ctx context.Context, query string, loc i18n.Locale) ([]models.ContentCard, error)
	Invalidator
}

// Invalidator сбрасывает кэш материалов после правок редакции.
type Invalidator interface {
	Invalidate(ctx context.Context, slugs ...string)
}

type contentService struct {
	articles repository.ArticleRepo
	debates  repository.DebateRepo
	cache    cache.Cache
	ttl      time.Duration
	strip    *bluemonday.Policy
}

// NewContentService: cache может быть nil — тогда кэширование выключено.
func NewContentService(articles repository.ArticleRepo, debates repository.DebateRepo, c cache.Cache, ttl time.Duration) ContentService {
	return &contentService{
		articles: articles,
		debates:  debates,
		cache:    c,
		ttl:      ttl,
		strip:    bluemonday.StrictPolicy(),
	}
}

// cachedRecord — то, что лежит в кэше: сырая запись, независимая от языка.
type cachedRecord struct {
	Article *models.Article `json:"article,omitempty"`
	Debate  *models.Debate  `json:"debate,omitempty"`
}

func (s *contentService) LoadContentForDisplay(ctx context.Context, slug string, loc i18n.Locale) (*models.ContentView, error) {
	log := logger.WithCtx(ctx)
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", apperr.ErrValidation)
	}

	rec, hit := s.fromCache(ctx, slug)
	if !hit {
		var err error
		rec, err = s.lookup(ctx, slug)
		if apperr.IsStoreUnavailable(err) {
			log.Error("Хранилище недоступно, отдаём заглушку", zap.String("slug", slug), zap.Error(err))
			return placeholder(loc), nil
		}
		if err != nil {
			log.Error("Ошибка загрузки материала", zap.String("slug", slug), zap.Error(err))
			return nil, err
		}
		if rec == nil {
			log.Debug("Материал не найден", zap.String("slug", slug))
			return nil, fmt.Errorf("%w: content %q", apperr.ErrNotFound, slug)
		}
		s.toCache(ctx, slug, rec)
	}

	view := &models.ContentView{Locale: string(loc), Article: rec.Article, Debate: rec.Debate}
	if rec.Article != nil {
		view.Kind = models.KindArticle
		view.Resolved = i18n.ResolveFields(rec.Article, i18n.ArticleFields, loc)
	} else {
		view.Kind = models.KindDebate
		view.Resolved = i18n.ResolveFields(rec.Debate, i18n.DebateFields, loc)
	}
	log.Debug("Материал загружен",
		zap.String("slug", slug), zap.String("kind", string(view.Kind)),
		zap.String("locale", string(loc)), zap.Bool("cache_hit", hit))
	return view, nil
}

// lookup опрашивает оба хранилища параллельно. Если slug нашёлся в обоих, выигрывает статья.
// (nil, nil) — не найдено нигде.
func (s *contentService) lookup(ctx context.Context, slug string) (*cachedRecord, error) {
	var (
		article *models.Article
		debate  *models.Debate
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := s.articles.GetBySlug(gctx, slug, true)
		if err != nil && !apperr.IsNotFound(err) {
			return err
		}
		article = a
		return nil
	})
	g.Go(func() error {
		d, err := s.debates.GetBySlug(gctx, slug, true)
		if err != nil && !apperr.IsNotFound(err) {
			return err
		}
		debate = d
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	switch {
	case article != nil:
		return &cachedRecord{Article: article}, nil
	case debate != nil:
		return &cachedRecord{Debate: debate}, nil
	}
	return nil, nil
}

func placeholder(loc i18n.Locale) *models.ContentView {
	return &models.ContentView{
		Locale:      string(loc),
		Resolved:    map[string]string{},
		Placeholder: true,
	}
}

func (s *contentService) fromCache(ctx context.Context, slug string) (*cachedRecord, bool) {
	if s.cache == nil {
		return nil, false
	}
	var rec cachedRecord
	found, err := cache.GetJSON(ctx, s.cache, contentCacheKey+slug, &rec)
	if err != nil {
		logger.WithCtx(ctx).Warn("Кэш: ошибка чтения", zap.String("slug", slug), zap.Error(err))
		return nil, false
	}
	if !found || (rec.Article == nil && rec.Debate == nil) {
		return nil, false
	}
	return &rec, true
}

func (s *contentService) toCache(ctx context.Context, slug string, rec *cachedRecord) {
	if s.cache == nil {
		return
	}
	if err := cache.SetJSON(ctx, s.cache, contentCacheKey+slug, rec, s.ttl); err != nil {
		logger.WithCtx(ctx).Warn("Кэш: ошибка записи", zap.String("slug", slug), zap.Error(err))
	}
}

func (s *contentService) Invalidate(ctx context.Context, slugs ...string) {
	if s.cache == nil || len(slugs) == 0 {
		return
	}
	keys := make([]string, 0, len(slugs))
	for _, sl := range slugs {
		if sl != "" {
			keys = append(keys, contentCacheKey+sl)
		}
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		logger.WithCtx(ctx).Warn("Кэш: ошибка инвалидации", zap.Strings("slugs", slugs), zap.Error(err))
	}
}

func (s *contentService) ListArticles(ctx context.Context, loc i18n.Locale, limit, offset int) ([]models.ContentCard, error) {
	list, err := s.articles.List(ctx, limit, offset, true)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения списка статей", zap.Error(err))
		return nil, err
	}
	cards := make([]models.ContentCard, 0, len(list))
	for _, a := range list {
		cards = append(cards, s.articleCard(a, loc))
	}
	return cards, nil
}

func (s *contentService) ListDebates(ctx context.Context, loc i18n.Locale, limit, offset int) ([]models.ContentCard, error) {
	list, err := s.debates.List(ctx, limit, offset, true)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения списка дебатов", zap.Error(err))
		return nil, err
	}
	cards := make([]models.ContentCard, 0, len(list))
	for _, d := range list {
		cards = append(cards, s.debateCard(d, loc))
	}
	return cards, nil
}

func (s *contentService) Search(ctx context.Context, query string, loc i18n.Locale) ([]models.ContentCard, error) {
	log := logger.WithCtx(ctx)
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < searchMinRunes {
		return nil, fmt.Errorf("%w: query must be at least %d characters", apperr.ErrValidation, searchMinRunes)
	}

	var (
		articles []*models.Article
		debates  []*models.Debate
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		articles, err = s.articles.Search(gctx, query, searchLimit)
		return err
	})
	g.Go(func() (err error) {
		debates, err = s.debates.Search(gctx, query, searchLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Error("Ошибка поиска", zap.String("query", query), zap.Error(err))
		return nil, err
	}

	cards := make([]models.ContentCard, 0, len(articles)+len(debates))
	for _, a := range articles {
		cards = append(cards, s.articleCard(a, loc))
	}
	for _, d := range debates {
		cards = append(cards, s.debateCard(d, loc))
	}
	sort.SliceStable(cards, func(i, j int) bool { return cards[i].CreatedAt.After(cards[j].CreatedAt) })
	if len(cards) > searchLimit {
		cards = cards[:searchLimit]
	}
	log.Debug("Поиск выполнен", zap.String("query", query), zap.Int("count", len(cards)))
	return cards, nil
}

func (s *contentService) articleCard(a *models.Article, loc i18n.Locale) models.ContentCard {
	la := i18n.LocalizeArticle(a, loc)
	excerpt := strings.TrimSpace(la.Excerpt)
	if excerpt == "" {
		excerpt = s.excerpt(la.Content)
	}
	return models.ContentCard{
		Kind:       models.KindArticle,
		ID:         a.ID,
		Slug:       a.Slug,
		Category:   a.Category,
		Title:      la.Title,
		Excerpt:    excerpt,
		ImageURL:   a.CoverImage,
		AuthorName: a.AuthorName,
		CreatedAt:  a.CreatedAt,
	}
}

func (s *contentService) debateCard(d *models.Debate, loc i18n.Locale) models.ContentCard {
	ld := i18n.LocalizeDebate(d, loc)
	return models.ContentCard{
		Kind:       models.KindDebate,
		ID:         d.ID,
		Slug:       d.Slug,
		Category:   d.Category,
		Title:      ld.Title,
		Excerpt:    s.excerpt(ld.Summary),
		ImageURL:   d.MainImageURL,
		AuthorName: d.AuthorName,
		CreatedAt:  d.CreatedAt,
	}
}

// excerpt — текст без разметки, не длиннее excerptRunes символов.
func (s *contentService) excerpt(raw string) string {
	text := strings.Join(strings.Fields(html.UnescapeString(s.strip.Sanitize(raw))), " ")
	if utf8.RuneCountInString(text) <= excerptRunes {
		return text
	}
	return string([]rune(text)[:excerptRunes]) + "..."
}
