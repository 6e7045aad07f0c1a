package service

import (
	"context"
	"testing"

	"school_portal/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLike_LikeThenUnlikeRestoresCount(t *testing.T) {
	repo := newMemLikeRepo()
	svc := NewLikeService(repo)
	ctx := context.Background()

	_, err := svc.ToggleLike(ctx, model.ToggleLikeRequest{UserID: 2, Subject: "math", Action: "like"})
	require.NoError(t, err)
	before, err := svc.GetLikes(ctx, "math", nil)
	require.NoError(t, err)

	after, err := svc.ToggleLike(ctx, model.ToggleLikeRequest{UserID: 1, Subject: "math", Action: "like"})
	require.NoError(t, err)
	assert.Equal(t, before.Likes+1, after)

	restored, err := svc.ToggleLike(ctx, model.ToggleLikeRequest{UserID: 1, Subject: "math", Action: "unlike"})
	require.NoError(t, err)
	assert.Equal(t, before.Likes, restored)
}

func TestToggleLike_DoubleLikeCountsOnce(t *testing.T) {
	svc := NewLikeService(newMemLikeRepo())
	ctx := context.Background()

	first, err := svc.ToggleLike(ctx, model.ToggleLikeRequest{UserID: 1, Subject: "math"})
	require.NoError(t, err)
	second, err := svc.ToggleLike(ctx, model.ToggleLikeRequest{UserID: 1, Subject: "math", Action: "like"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, first, second)
}

func TestToggleLike_UnknownActionUnlikes(t *testing.T) {
	svc := NewLikeService(newMemLikeRepo())
	ctx := context.Background()

	_, err := svc.ToggleLike(ctx, model.ToggleLikeRequest{UserID: 1, Subject: "math"})
	require.NoError(t, err)
	count, err := svc.ToggleLike(ctx, model.ToggleLikeRequest{UserID: 1, Subject: "math", Action: "whatever"})
	require.NoError(t, err)
	assert.Zero(t, count)

	// unliking twice is a no-op
	count, err = svc.ToggleLike(ctx, model.ToggleLikeRequest{UserID: 1, Subject: "math", Action: "unlike"})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestToggleLike_Validation(t *testing.T) {
	svc := NewLikeService(newMemLikeRepo())

	_, err := svc.ToggleLike(context.Background(), model.ToggleLikeRequest{Subject: "math"})
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = svc.ToggleLike(context.Background(), model.ToggleLikeRequest{UserID: 1, Subject: "  "})
	assert.ErrorAs(t, err, &ve)
}

func TestGetLikes(t *testing.T) {
	svc := NewLikeService(newMemLikeRepo())
	ctx := context.Background()
	_, err := svc.ToggleLike(ctx, model.ToggleLikeRequest{UserID: 1, Subject: "math"})
	require.NoError(t, err)

	liker, other := int64(1), int64(2)

	st, err := svc.GetLikes(ctx, "math", &liker)
	require.NoError(t, err)
	assert.Equal(t, model.LikeStatus{Likes: 1, HasLiked: true}, *st)

	st, err = svc.GetLikes(ctx, "math", &other)
	require.NoError(t, err)
	assert.False(t, st.HasLiked)

	st, err = svc.GetLikes(ctx, "math", nil)
	require.NoError(t, err)
	assert.False(t, st.HasLiked)

	st, err = svc.GetLikes(ctx, "  ", &liker)
	require.NoError(t, err)
	assert.Equal(t, model.LikeStatus{}, *st)
}
