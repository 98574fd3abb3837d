package thread

import (
	"imuhira/internal/models"

	"github.com/google/uuid"
)

// Node — комментарий и его ответы в порядке входного списка.
type Node struct {
	Comment models.Comment `json:"comment"`
	Replies []*Node        `json:"replies"`
}

// BuildTree собирает дерево из плоского списка (новые сверху, как отдаёт хранилище).
//
// Корни — комментарии без parentId, порядок сохраняется. Ответ, чей родитель отсутствует в списке,
// в дерево не попадает. Повторно встреченный id пропускается, поэтому циклы и дубли не ломают обход.
func BuildTree(flat []models.Comment) []*Node {
	children := make(map[uuid.UUID][]int, len(flat))
	var roots []int
	for i := range flat {
		if p := flat[i].ParentID; p != nil {
			children[*p] = append(children[*p], i)
			continue
		}
		roots = append(roots, i)
	}

	visited := make(map[uuid.UUID]struct{}, len(flat))
	var expand func(i int) *Node
	expand = func(i int) *Node {
		c := flat[i]
		visited[c.ID] = struct{}{}
		n := &Node{Comment: c, Replies: []*Node{}}
		for _, j := range children[c.ID] {
			if _, seen := visited[flat[j].ID]; seen {
				continue
			}
			n.Replies = append(n.Replies, expand(j))
		}
		return n
	}

	out := make([]*Node, 0, len(roots))
	for _, i := range roots {
		if _, seen := visited[flat[i].ID]; seen {
			continue
		}
		out = append(out, expand(i))
	}
	return out
}

// Count — число комментариев, попавших в дерево.
func Count(nodes []*Node) int {
	n := 0
	for _, node := range nodes {
		n += 1 + Count(node.Replies)
	}
	return n
}

// Walk обходит дерево в глубину; depth корней — 0.
func Walk(nodes []*Node, fn func(n *Node, depth int)) {
	var walk func(ns []*Node, depth int)
	walk = func(ns []*Node, depth int) {
		for _, n := range ns {
			fn(n, depth)
			walk(n.Replies, depth+1)
		}
	}
	walk(nodes, 0)
}
