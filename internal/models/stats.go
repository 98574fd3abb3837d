package models

import (
	"time"

	"github.com/google/uuid"
)

// Stats — сводка для админ-панели.
type Stats struct {
	TotalDebates      int `json:"totalDebates"`
	TotalArticles     int `json:"totalArticles"`
	TotalComments     int `json:"totalComments"`
	PublishedDebates  int `json:"publishedDebates"`
	PublishedArticles int `json:"publishedArticles"`
	PendingComments   int `json:"pendingComments"`
	TotalSubscribers  int `json:"totalSubscribers"`

	RecentDebates  []RecentItem    `json:"recentDebates"`
	RecentArticles []RecentItem    `json:"recentArticles"`
	RecentComments []RecentComment `json:"recentComments"`
}

type RecentItem struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
}

type RecentComment struct {
	ID         uuid.UUID `json:"id"`
	AuthorName string    `json:"authorName"`
	Content    string    `json:"content"`
	IsApproved bool      `json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`
}
