package usecase

import (
	"context"
	"testing"

	"cinevault/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentLifecycle(t *testing.T) {
	s, _ := newTestService(t, false)
	ctx := context.Background()

	userID := seedUser(t, s, "alice")
	reviewID := seedReview(t, s, seedMovie(t, s, "Heat"), userID, 8)

	_, err := s.Comment.CreateComment(ctx, &request.CommentRequest{ReviewID: 404, UserID: userID, Rating: 5})
	assert.ErrorIs(t, err, ErrNotFound)

	comment, err := s.Comment.CreateComment(ctx, &request.CommentRequest{
		ReviewID: reviewID,
		UserID:   userID,
		Rating:   5,
		Content:  ptr("Agreed"),
	})
	require.NoError(t, err)

	updated, err := s.Comment.UpdateComment(ctx, comment.ID, &request.CommentUpdateRequest{Rating: ptr(6)})
	require.NoError(t, err)
	assert.Equal(t, 6, updated.Rating)
	assert.Equal(t, "Agreed", *updated.Content)

	page, err := s.Comment.GetComments(ctx, &request.PaginatedRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Pagination.Total)

	require.NoError(t, s.Review.DeleteReview(ctx, reviewID))

	_, err = s.Comment.GetCommentByID(ctx, comment.ID)
	assert.ErrorIs(t, err, ErrNotFound, "comments follow their review")
}
