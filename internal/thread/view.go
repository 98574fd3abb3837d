package thread

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"imuhira/internal/apperr"
	"imuhira/internal/logger"
	"imuhira/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Source — то, чем представление читает и пишет комментарии (сервис или HTTP-клиент).
type Source interface {
	ListComments(ctx context.Context, ref models.ContentRef) ([]models.Comment, error)
	CreateComment(ctx context.Context, in models.NewComment) (*models.Comment, error)
	IncrementLike(ctx context.Context, id uuid.UUID) error
}

// View — локальное состояние ветки комментариев одного материала, отдельное от хранилища.
//
// Правила согласования:
//   - Like сразу увеличивает счётчик локально и отправляет запрос без ожидания; при ошибке
//     счётчик не откатывается, ошибка только логируется.
//   - Refresh заменяет локальный список ответом хранилища. Лайки, запрос по которым ещё не
//     завершился, добавляются поверх пришедших значений, чтобы счётчик не «прыгал» вниз.
//   - Каждый Refresh получает порядковый номер; ответ применяется, только если он новее
//     последнего применённого. Опоздавшие ответы отбрасываются.
type View struct {
	src Source
	ref models.ContentRef

	mu       sync.Mutex
	comments []models.Comment
	inflight map[uuid.UUID]int
	issued   uint64
	applied  uint64
	reply    ReplyState

	likes sync.WaitGroup
}

func NewView(src Source, ref models.ContentRef) *View {
	return &View{
		src:      src,
		ref:      ref,
		inflight: make(map[uuid.UUID]int),
	}
}

// Refresh перечитывает комментарии. Возвращает false, если ответ устарел и был отброшен.
// Ошибка чтения не очищает уже показанный список.
func (v *View) Refresh(ctx context.Context) (bool, error) {
	v.mu.Lock()
	v.issued++
	seq := v.issued
	v.mu.Unlock()

	list, err := v.src.ListComments(ctx, v.ref)
	if err != nil {
		logger.WithCtx(ctx).Warn("thread: ошибка загрузки комментариев",
			zap.String("ref", v.ref.String()), zap.Error(err))
		return false, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if seq <= v.applied {
		logger.WithCtx(ctx).Debug("thread: устаревший ответ отброшен",
			zap.Uint64("seq", seq), zap.Uint64("applied", v.applied))
		return false, nil
	}
	v.applied = seq

	fresh := make([]models.Comment, len(list))
	copy(fresh, list)
	for i := range fresh {
		fresh[i].Likes += v.inflight[fresh[i].ID]
	}
	v.comments = fresh
	return true, nil
}

// Like — оптимистичный лайк. Запрос в хранилище идёт в фоне и не отменяется вместе с ctx.
func (v *View) Like(ctx context.Context, id uuid.UUID) {
	v.mu.Lock()
	for i := range v.comments {
		if v.comments[i].ID == id {
			v.comments[i].Likes++
		}
	}
	v.inflight[id]++
	v.mu.Unlock()

	bg := context.WithoutCancel(ctx)
	v.likes.Add(1)
	go func() {
		defer v.likes.Done()
		if err := v.src.IncrementLike(bg, id); err != nil {
			logger.WithCtx(bg).Warn("thread: лайк не сохранён",
				zap.String("comment_id", id.String()), zap.Error(err))
		}
		v.mu.Lock()
		if v.inflight[id]--; v.inflight[id] <= 0 {
			delete(v.inflight, id)
		}
		v.mu.Unlock()
	}()
}

// Wait ждёт завершения фоновых лайков.
func (v *View) Wait() {
	v.likes.Wait()
}

func (v *View) ToggleReply(id uuid.UUID) {
	v.mu.Lock()
	v.reply.Toggle(id)
	v.mu.Unlock()
}

func (v *View) CancelReply() {
	v.mu.Lock()
	v.reply.Close()
	v.mu.Unlock()
}

func (v *View) Replying() (uuid.UUID, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.reply.Active()
}

// Post публикует комментарий верхнего уровня или ответ на открытую форму.
// После успеха форма закрывается и список перечитывается.
func (v *View) Post(ctx context.Context, authorName, content string) (*models.Comment, error) {
	if strings.TrimSpace(authorName) == "" || strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: author name and content are required", apperr.ErrValidation)
	}

	v.mu.Lock()
	var parent *uuid.UUID
	if id, ok := v.reply.Active(); ok {
		parent = &id
	}
	v.mu.Unlock()

	created, err := v.src.CreateComment(ctx, models.NewComment{
		Ref:        v.ref,
		ParentID:   parent,
		AuthorName: authorName,
		Content:    content,
	})
	if err != nil {
		return nil, err
	}

	v.mu.Lock()
	if parent != nil && v.reply.IsActive(*parent) {
		v.reply.Close()
	}
	v.mu.Unlock()

	if _, err := v.Refresh(ctx); err != nil {
		logger.WithCtx(ctx).Warn("thread: не удалось обновить список после публикации", zap.Error(err))
	}
	return created, nil
}

// Comments — копия текущего локального списка.
func (v *View) Comments() []models.Comment {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]models.Comment, len(v.comments))
	copy(out, v.comments)
	return out
}

func (v *View) Tree() []*Node {
	return BuildTree(v.Comments())
}
