package service

import (
	"strings"
	"testing"
	"time"

	"lines-be/internal/catalog"
	"lines-be/internal/domain"
	"lines-be/pkg/errors"
	"lines-be/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentService() (*CommentService, *catalog.Catalog) {
	cat := seededCatalog()
	return NewCommentService(cat, logger.NewNop(), func() time.Time { return fixedNow }), cat
}

func TestCommentService_List(t *testing.T) {
	svc, _ := newCommentService()

	tree, total, err := svc.List("1", domain.SortTop)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, tree, 3)
	assert.Equal(t, "c1", tree[0].ID)
	assert.Len(t, tree[0].Replies, 2)

	newest, _, err := svc.List("1", domain.SortNewest)
	require.NoError(t, err)
	assert.Equal(t, "c-current-user-1", newest[0].ID)

	_, _, err = svc.List("missing", domain.SortTop)
	assert.True(t, errors.IsType(err, errors.ErrorTypeNotFound))
}

func TestCommentService_AddWritesBack(t *testing.T) {
	svc, cat := newCommentService()

	c, err := svc.Add("3", "  Great design tips  ")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(c.ID, "comment-"))
	assert.Equal(t, "Great design tips", c.Text)
	assert.Equal(t, catalog.CurrentUserID, c.AuthorID)
	assert.Equal(t, fixedNow, c.Date)

	v, _ := cat.Get("3")
	require.Len(t, v.Comments, 1)
	assert.Equal(t, c.ID, v.Comments[0].ID)

	_, err = svc.Add("3", "   ")
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
}

func TestCommentService_Reply(t *testing.T) {
	svc, cat := newCommentService()

	r, err := svc.Reply("1", "c2", "Same here")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(r.ID, "reply-"))

	v, _ := cat.Get("1")
	var c2 domain.Comment
	for _, c := range v.Comments {
		if c.ID == "c2" {
			c2 = c
		}
	}
	require.Len(t, c2.Replies, 1)
	assert.Equal(t, "Same here", c2.Replies[0].Text)

	_, err = svc.Reply("1", "nope", "x")
	assert.True(t, errors.IsType(err, errors.ErrorTypeNotFound))
}

func TestCommentService_EditOwnComment(t *testing.T) {
	svc, cat := newCommentService()

	c, err := svc.Edit("1", "c-current-user-1", "Edited text")
	require.NoError(t, err)
	assert.Equal(t, "Edited text", c.Text)

	v, _ := cat.Get("1")
	assert.Equal(t, "Edited text", v.Comments[2].Text)
}

func TestCommentService_CannotChangeOthersComments(t *testing.T) {
	svc, _ := newCommentService()

	_, err := svc.Edit("1", "c1", "hijack")
	assert.True(t, errors.IsType(err, errors.ErrorTypeAuthorization))

	_, err = svc.Delete("1", "c1-r1")
	assert.True(t, errors.IsType(err, errors.ErrorTypeAuthorization))

	_, err = svc.Delete("1", "missing")
	assert.True(t, errors.IsType(err, errors.ErrorTypeNotFound))
}

func TestCommentService_DeleteRemovesReplies(t *testing.T) {
	svc, cat := newCommentService()

	parent, err := svc.Add("2", "Question?")
	require.NoError(t, err)
	_, err = svc.Reply("2", parent.ID, "Answer")
	require.NoError(t, err)

	removed, err := svc.Delete("2", parent.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	v, _ := cat.Get("2")
	require.Len(t, v.Comments, 1)
	assert.Equal(t, "c3", v.Comments[0].ID)
}

func TestCommentService_ClonesHaveSeparateThreads(t *testing.T) {
	svc, cat := newCommentService()

	_, err := svc.Delete("1", "c-current-user-1")
	require.NoError(t, err)

	clone, _ := cat.Get("1-clone1")
	assert.Len(t, clone.Comments, 3)

	_, total, err := svc.List("1-clone1", domain.SortTop)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
}
