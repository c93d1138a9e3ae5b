package handler

import (
	"github.com/reviewhub/item-reviews/internal/core/domain"
)

// --- Service result → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt.UTC(),
	}
}

func toItemResponse(it *domain.Item) itemResponse {
	return itemResponse{
		ID:        it.ID,
		Name:      it.Name,
		Details:   it.Details,
		CreatedAt: it.CreatedAt.UTC(),
	}
}

func toItemResponses(items []*domain.Item) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out
}

func toReviewResponse(r *domain.Review) reviewResponse {
	resp := reviewResponse{
		ID:        r.ID,
		Content:   r.Content,
		Rating:    r.Rating,
		UserID:    r.UserID,
		ItemID:    r.ItemID,
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
	if r.Author != nil {
		resp.User = &authorResponse{ID: r.Author.ID, Username: r.Author.Username}
	}
	return resp
}

func toReviewResponses(reviews []*domain.Review) []reviewResponse {
	out := make([]reviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toReviewResponse(r))
	}
	return out
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		Content:   c.Content,
		UserID:    c.UserID,
		ReviewID:  c.ReviewID,
		CreatedAt: c.CreatedAt.UTC(),
		UpdatedAt: c.UpdatedAt.UTC(),
	}
}
