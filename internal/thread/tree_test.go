package thread

import (
	"testing"

	"imuhira/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// id — детерминированный uuid с n в последнем байте.
func id(n byte) uuid.UUID {
	var u uuid.UUID
	u[15] = n
	return u
}

func comment(n byte, parent *uuid.UUID) models.Comment {
	return models.Comment{ID: id(n), ParentID: parent, AuthorName: "a", Content: "c"}
}

func ptr(u uuid.UUID) *uuid.UUID { return &u }

func TestBuildTree_DropsOrphans(t *testing.T) {
	flat := []models.Comment{
		comment(1, nil),
		comment(2, ptr(id(1))),
		comment(3, ptr(id(99))),
	}
	tree := BuildTree(flat)

	require.Len(t, tree, 1)
	assert.Equal(t, id(1), tree[0].Comment.ID)
	require.Len(t, tree[0].Replies, 1)
	assert.Equal(t, id(2), tree[0].Replies[0].Comment.ID)
	assert.Empty(t, tree[0].Replies[0].Replies)
	assert.Equal(t, 2, Count(tree))
}

func TestBuildTree_KeepsInputOrder(t *testing.T) {
	flat := []models.Comment{
		comment(5, nil),
		comment(4, ptr(id(1))),
		comment(3, nil),
		comment(2, ptr(id(1))),
		comment(1, nil),
	}
	tree := BuildTree(flat)

	require.Len(t, tree, 3)
	assert.Equal(t, []uuid.UUID{id(5), id(3), id(1)},
		[]uuid.UUID{tree[0].Comment.ID, tree[1].Comment.ID, tree[2].Comment.ID})
	require.Len(t, tree[2].Replies, 2)
	assert.Equal(t, id(4), tree[2].Replies[0].Comment.ID)
	assert.Equal(t, id(2), tree[2].Replies[1].Comment.ID)
}

func TestBuildTree_Cycles(t *testing.T) {
	// 2 и 3 ссылаются друг на друга и недостижимы от корня.
	flat := []models.Comment{
		comment(1, nil),
		comment(2, ptr(id(3))),
		comment(3, ptr(id(2))),
		comment(4, ptr(id(4))),
	}
	tree := BuildTree(flat)
	assert.Equal(t, 1, Count(tree))

	// Дубль корня, подвешенный к собственному потомку, не зацикливает обход.
	flat = []models.Comment{
		comment(1, nil),
		comment(2, ptr(id(1))),
		comment(1, ptr(id(2))),
	}
	tree = BuildTree(flat)
	assert.Equal(t, 2, Count(tree))
}

func TestBuildTree_Empty(t *testing.T) {
	tree := BuildTree(nil)
	assert.NotNil(t, tree)
	assert.Empty(t, tree)
}

func TestWalk_Depth(t *testing.T) {
	flat := []models.Comment{
		comment(1, nil),
		comment(2, ptr(id(1))),
		comment(3, ptr(id(2))),
	}
	depths := map[uuid.UUID]int{}
	Walk(BuildTree(flat), func(n *Node, depth int) { depths[n.Comment.ID] = depth })
	assert.Equal(t, map[uuid.UUID]int{id(1): 0, id(2): 1, id(3): 2}, depths)
}

func TestReplyState(t *testing.T) {
	var s ReplyState
	_, ok := s.Active()
	assert.False(t, ok)

	s.Toggle(id(1))
	s.Toggle(id(2))
	got, ok := s.Active()
	require.True(t, ok)
	assert.Equal(t, id(2), got)
	assert.False(t, s.IsActive(id(1)))

	s.Toggle(id(2))
	_, ok = s.Active()
	assert.False(t, ok)

	s.Toggle(id(3))
	s.Close()
	assert.False(t, s.IsActive(id(3)))
}
