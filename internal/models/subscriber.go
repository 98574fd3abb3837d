package models

import (
	"time"

	"github.com/google/uuid"
)

type Subscriber struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// swagger:model SubscribeRequest
type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email,max=254" example:"reader@example.com"`
}
