package domain

import (
	"errors"
	"sort"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrDuplicateID     = errors.New("comment id already exists")
)

// CommentSort orders a thread for display
type CommentSort string

const (
	SortTop    CommentSort = "top"
	SortNewest CommentSort = "newest"
)

type commentNode struct {
	comment  Comment // Replies is always nil here
	parent   string
	children []string
}

// CommentThread stores a comment tree as a flat arena keyed by id.
// Children are kept newest-insert-first, matching how replies are shown.
type CommentThread struct {
	nodes map[string]*commentNode
	roots []string
}

// NewCommentThread builds an arena from a nested comment list.
// Later duplicates of an id are dropped along with their replies.
func NewCommentThread(comments []Comment) *CommentThread {
	t := &CommentThread{nodes: make(map[string]*commentNode)}
	for _, c := range comments {
		if id, ok := t.insert(c, ""); ok {
			t.roots = append(t.roots, id)
		}
	}
	return t
}

func (t *CommentThread) insert(c Comment, parent string) (string, bool) {
	if _, exists := t.nodes[c.ID]; exists {
		return "", false
	}
	replies := c.Replies
	c.Replies = nil
	node := &commentNode{comment: c, parent: parent}
	t.nodes[c.ID] = node
	for _, r := range replies {
		if id, ok := t.insert(r, c.ID); ok {
			node.children = append(node.children, id)
		}
	}
	return c.ID, true
}

// Len returns the number of comments including replies
func (t *CommentThread) Len() int {
	return len(t.nodes)
}

// Find returns the comment with its replies
func (t *CommentThread) Find(id string) (Comment, bool) {
	if _, ok := t.nodes[id]; !ok {
		return Comment{}, false
	}
	return t.build(id, ""), true
}

// AuthorOf returns the author id of a comment
func (t *CommentThread) AuthorOf(id string) (string, bool) {
	node, ok := t.nodes[id]
	if !ok {
		return "", false
	}
	return node.comment.AuthorID, true
}

// Add puts a new top-level comment in front of the others
func (t *CommentThread) Add(c Comment) error {
	if _, exists := t.nodes[c.ID]; exists {
		return ErrDuplicateID
	}
	c.Replies = nil
	t.nodes[c.ID] = &commentNode{comment: c}
	t.roots = append([]string{c.ID}, t.roots...)
	return nil
}

// Reply attaches c as the newest reply of parentID
func (t *CommentThread) Reply(parentID string, c Comment) error {
	parent, ok := t.nodes[parentID]
	if !ok {
		return ErrCommentNotFound
	}
	if _, exists := t.nodes[c.ID]; exists {
		return ErrDuplicateID
	}
	c.Replies = nil
	t.nodes[c.ID] = &commentNode{comment: c, parent: parentID}
	parent.children = append([]string{c.ID}, parent.children...)
	return nil
}

// Edit replaces the text of a comment
func (t *CommentThread) Edit(id, text string) error {
	node, ok := t.nodes[id]
	if !ok {
		return ErrCommentNotFound
	}
	node.comment.Text = text
	return nil
}

// Delete removes a comment and all of its replies, returning how many were removed
func (t *CommentThread) Delete(id string) (int, error) {
	node, ok := t.nodes[id]
	if !ok {
		return 0, ErrCommentNotFound
	}

	if node.parent == "" {
		t.roots = without(t.roots, id)
	} else if parent, ok := t.nodes[node.parent]; ok {
		parent.children = without(parent.children, id)
	}

	removed := 0
	stack := []string{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n, ok := t.nodes[cur]; ok {
			stack = append(stack, n.children...)
			delete(t.nodes, cur)
			removed++
		}
	}
	return removed, nil
}

// Tree materializes the nested list. An empty order keeps insertion order.
func (t *CommentThread) Tree(order CommentSort) []Comment {
	return t.buildList(t.roots, order)
}

func (t *CommentThread) build(id string, order CommentSort) Comment {
	node := t.nodes[id]
	c := node.comment
	c.Replies = t.buildList(node.children, order)
	return c
}

func (t *CommentThread) buildList(ids []string, order CommentSort) []Comment {
	out := make([]Comment, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.build(id, order))
	}
	switch order {
	case SortTop:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Likes > out[j].Likes })
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	}
	return out
}

func without(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return ids
}
