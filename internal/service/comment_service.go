package service

import (
	"strings"
	"sync"
	"time"

	"lines-be/internal/catalog"
	"lines-be/internal/domain"
	"lines-be/pkg/errors"
	"lines-be/pkg/logger"

	"github.com/google/uuid"
)

const maxCommentLength = 10000

// CommentService edits the comment trees of catalog videos. Each video's
// comments are loaded into an arena on first use and written back to the
// catalog after every change.
type CommentService struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	threads map[string]*domain.CommentThread
	logger  *logger.Logger
	now     func() time.Time
}

// NewCommentService creates a new comment service
func NewCommentService(cat *catalog.Catalog, log *logger.Logger, now func() time.Time) *CommentService {
	if now == nil {
		now = time.Now
	}
	return &CommentService{
		catalog: cat,
		threads: make(map[string]*domain.CommentThread),
		logger:  log.Named("comments"),
		now:     now,
	}
}

func (s *CommentService) thread(videoID string) (*domain.CommentThread, error) {
	if t, ok := s.threads[videoID]; ok {
		return t, nil
	}
	v, ok := s.catalog.Get(videoID)
	if !ok {
		return nil, errors.NewNotFoundError("Video not found")
	}
	t := domain.NewCommentThread(v.Comments)
	s.threads[videoID] = t
	return t, nil
}

func (s *CommentService) writeBack(videoID string, t *domain.CommentThread) {
	s.catalog.SetComments(videoID, t.Tree(""))
}

func validateText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.NewValidationError("Comment text is required", nil)
	}
	if len(text) > maxCommentLength {
		return "", errors.NewValidationError("Comment text is too long", map[string]interface{}{
			"max_length": maxCommentLength,
		})
	}
	return text, nil
}

func (s *CommentService) newComment(prefix, text string) domain.Comment {
	return domain.Comment{
		ID:        prefix + "-" + uuid.NewString(),
		AuthorID:  catalog.CurrentUserID,
		Author:    catalog.CurrentUserName,
		AvatarURL: catalog.CurrentUserAvatar,
		Text:      text,
		Date:      s.now().UTC(),
		Replies:   []domain.Comment{},
	}
}

// List returns the comment tree of a video in the requested order
func (s *CommentService) List(videoID string, order domain.CommentSort) ([]domain.Comment, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.thread(videoID)
	if err != nil {
		return nil, 0, err
	}
	return t.Tree(order), t.Len(), nil
}

// Add posts a top-level comment as the current user
func (s *CommentService) Add(videoID, text string) (domain.Comment, error) {
	text, err := validateText(text)
	if err != nil {
		return domain.Comment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.thread(videoID)
	if err != nil {
		return domain.Comment{}, err
	}
	c := s.newComment("comment", text)
	if err := t.Add(c); err != nil {
		return domain.Comment{}, errors.NewInternalError("Failed to add comment", err)
	}
	s.writeBack(videoID, t)

	s.logger.WithFields(map[string]interface{}{
		"video_id":   videoID,
		"comment_id": c.ID,
	}).Debug("Comment added")
	return c, nil
}

// Reply answers an existing comment as the current user
func (s *CommentService) Reply(videoID, parentID, text string) (domain.Comment, error) {
	text, err := validateText(text)
	if err != nil {
		return domain.Comment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.thread(videoID)
	if err != nil {
		return domain.Comment{}, err
	}
	c := s.newComment("reply", text)
	if err := t.Reply(parentID, c); err != nil {
		return domain.Comment{}, errors.NewNotFoundError("Comment not found")
	}
	s.writeBack(videoID, t)
	return c, nil
}

// Edit replaces the text of one of the current user's comments
func (s *CommentService) Edit(videoID, commentID, text string) (domain.Comment, error) {
	text, err := validateText(text)
	if err != nil {
		return domain.Comment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.ownedComment(videoID, commentID)
	if err != nil {
		return domain.Comment{}, err
	}
	if err := t.Edit(commentID, text); err != nil {
		return domain.Comment{}, errors.NewNotFoundError("Comment not found")
	}
	s.writeBack(videoID, t)

	c, _ := t.Find(commentID)
	return c, nil
}

// Delete removes one of the current user's comments with all its replies
func (s *CommentService) Delete(videoID, commentID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.ownedComment(videoID, commentID)
	if err != nil {
		return 0, err
	}
	removed, err := t.Delete(commentID)
	if err != nil {
		return 0, errors.NewNotFoundError("Comment not found")
	}
	s.writeBack(videoID, t)

	s.logger.WithFields(map[string]interface{}{
		"video_id":   videoID,
		"comment_id": commentID,
		"removed":    removed,
	}).Debug("Comment deleted")
	return removed, nil
}

func (s *CommentService) ownedComment(videoID, commentID string) (*domain.CommentThread, error) {
	t, err := s.thread(videoID)
	if err != nil {
		return nil, err
	}
	author, ok := t.AuthorOf(commentID)
	if !ok {
		return nil, errors.NewNotFoundError("Comment not found")
	}
	if author != catalog.CurrentUserID {
		return nil, errors.NewAuthorizationError("Only the author can change this comment")
	}
	return t, nil
}
