package services

import (
	"context"
	"testing"

	"imuhira/internal/apperr"
	"imuhira/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubscriberRepo struct {
	emails map[string]bool
}

func (r *fakeSubscriberRepo) Create(_ context.Context, email string) (*models.Subscriber, bool, error) {
	if r.emails[email] {
		return nil, false, nil
	}
	r.emails[email] = true
	return &models.Subscriber{Email: email}, true, nil
}

func TestSubscribe(t *testing.T) {
	repo := &fakeSubscriberRepo{emails: map[string]bool{}}
	svc := NewSubscriberService(repo)
	ctx := context.Background()

	created, err := svc.Subscribe(ctx, " Reader@Example.com ")
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, repo.emails["reader@example.com"])

	created, err = svc.Subscribe(ctx, "reader@example.com")
	require.NoError(t, err)
	assert.False(t, created)

	for _, bad := range []string{"", "not-an-email", "Amani <a@b.co>"} {
		_, err = svc.Subscribe(ctx, bad)
		assert.ErrorIs(t, err, apperr.ErrValidation, bad)
	}
}
