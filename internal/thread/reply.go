package thread

import "github.com/google/uuid"

// ReplyState — какая форма ответа открыта в списке комментариев. Открыта не больше одной.
type ReplyState struct {
	active *uuid.UUID
}

// Toggle — клик по «Ответить»: открывает форму у id, закрывает её при повторном клике,
// переключает с другой формы без подтверждения.
func (s *ReplyState) Toggle(id uuid.UUID) {
	if s.active != nil && *s.active == id {
		s.active = nil
		return
	}
	s.active = &id
}

// Close — отправка ответа или «Отмена».
func (s *ReplyState) Close() {
	s.active = nil
}

func (s *ReplyState) Active() (uuid.UUID, bool) {
	if s.active == nil {
		return uuid.Nil, false
	}
	return *s.active, true
}

func (s *ReplyState) IsActive(id uuid.UUID) bool {
	return s.active != nil && *s.active == id
}
