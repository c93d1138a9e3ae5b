package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reviewhub/item-reviews/internal/api/metrics"
	"github.com/reviewhub/item-reviews/internal/core/ports"
)

// CommentHandler handles HTTP requests for comments on reviews.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// Create handles POST /api/items/:itemId/reviews/:reviewId/comments.
//
// @Summary      Comment on a review
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        itemId    path      string          true  "Item ID"
// @Param        reviewId  path      string          true  "Review ID"
// @Param        body      body      commentRequest  true  "Comment content"
// @Success      201       {object}  commentResponse
// @Failure      400       {object}  errorResponse
// @Failure      401       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /api/items/{itemId}/reviews/{reviewId}/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req commentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.service.Create(c.Request().Context(), ports.CreateCommentInput{
		ReviewID: c.Param("reviewId"),
		UserID:   userID,
		Content:  req.Content,
	})
	if err != nil {
		return err
	}

	metrics.CommentMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, toCommentResponse(comment))
}

// Update handles PUT /api/items/:userId/comments/:commentId.
//
// @Summary      Update own comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId     path      string          true  "Ignored"
// @Param        commentId  path      string          true  "Comment ID"
// @Param        body       body      commentRequest  true  "New content"
// @Success      200        {object}  commentResponse
// @Failure      400        {object}  errorResponse
// @Failure      403        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /api/items/{userId}/comments/{commentId} [put]
func (h *CommentHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req commentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.service.Update(c.Request().Context(), ports.UpdateCommentInput{
		CommentID: c.Param("commentId"),
		UserID:    userID,
		Content:   req.Content,
	})
	if err != nil {
		countDenied(err, "comment")
		return err
	}

	metrics.CommentMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toCommentResponse(comment))
}

// Delete handles DELETE /api/items/:userId/comments/:commentId.
//
// @Summary      Delete own comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        userId     path      string  true  "Ignored"
// @Param        commentId  path      string  true  "Comment ID"
// @Success      200        {object}  messageResponse
// @Failure      403        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /api/items/{userId}/comments/{commentId} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("commentId"), userID); err != nil {
		countDenied(err, "comment")
		return err
	}

	metrics.CommentMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Comment deleted successfully"})
}
