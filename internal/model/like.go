package model

const (
	LikeActionLike   = "like"
	LikeActionUnlike = "unlike"
)

// LikeStatus is the like count of a subject and whether the asking user is among the likers.
type LikeStatus struct {
	Likes    int64 `json:"likes"`
	HasLiked bool  `json:"hasLiked"`
}

// ToggleLikeRequest adds or removes a like. Any action other than "like" removes it.
type ToggleLikeRequest struct {
	UserID  int64  `json:"userId" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Action  string `json:"action"`
}
