package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reviewhub/item-reviews/internal/api/metrics"
	"github.com/reviewhub/item-reviews/internal/core/domain"
	"github.com/reviewhub/item-reviews/internal/core/ports"
)

// ReviewHandler handles HTTP requests for review operations.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// ListForItem handles GET /api/items/:itemId/reviews.
//
// @Summary      List an item's reviews
// @Tags         reviews
// @Produce      json
// @Param        itemId  path      string  true  "Item ID"
// @Success      200     {array}   reviewResponse
// @Failure      500     {object}  errorResponse
// @Router       /api/items/{itemId}/reviews [get]
func (h *ReviewHandler) ListForItem(c echo.Context) error {
	reviews, err := h.service.ListForItem(c.Request().Context(), c.Param("itemId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReviewResponses(reviews))
}

// Get handles GET /api/items/:itemId/reviews/:reviewId.
//
// @Summary      Get a review
// @Tags         reviews
// @Produce      json
// @Param        itemId    path      string  true  "Item ID"
// @Param        reviewId  path      string  true  "Review ID"
// @Success      200       {object}  reviewResponse
// @Failure      404       {object}  errorResponse
// @Router       /api/items/{itemId}/reviews/{reviewId} [get]
func (h *ReviewHandler) Get(c echo.Context) error {
	review, err := h.service.Get(c.Request().Context(), c.Param("reviewId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReviewResponse(review))
}

// Create handles POST /api/items/:itemId/reviews.
//
// @Summary      Review an item
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        itemId  path      string               true  "Item ID"
// @Param        body    body      createReviewRequest  true  "Review content and rating"
// @Success      201     {object}  reviewResponse
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /api/items/{itemId}/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.service.Create(c.Request().Context(), ports.CreateReviewInput{
		ItemID:  c.Param("itemId"),
		UserID:  userID,
		Content: req.Content,
		Rating:  req.Rating,
	})
	if err != nil {
		return err
	}

	metrics.ReviewMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, toReviewResponse(review))
}

// Update handles PUT /api/items/:userId/reviews/:reviewId. The path user ID
// is ignored; ownership is checked against the token.
//
// @Summary      Update own review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId    path      string               true  "Ignored"
// @Param        reviewId  path      string               true  "Review ID"
// @Param        body      body      updateReviewRequest  true  "Fields to change"
// @Success      200       {object}  reviewResponse
// @Failure      400       {object}  errorResponse
// @Failure      401       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /api/items/{userId}/reviews/{reviewId} [put]
func (h *ReviewHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.service.Update(c.Request().Context(), ports.UpdateReviewInput{
		ReviewID: c.Param("reviewId"),
		UserID:   userID,
		Content:  req.Content,
		Rating:   req.Rating,
	})
	if err != nil {
		countDenied(err, "review")
		return err
	}

	metrics.ReviewMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toReviewResponse(review))
}

// Delete handles DELETE /api/items/:userId/reviews/:reviewId.
//
// @Summary      Delete own review
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        userId    path      string  true  "Ignored"
// @Param        reviewId  path      string  true  "Review ID"
// @Success      200       {object}  messageResponse
// @Failure      401       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /api/items/{userId}/reviews/{reviewId} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("reviewId"), userID); err != nil {
		countDenied(err, "review")
		return err
	}

	metrics.ReviewMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Review deleted successfully"})
}

func countDenied(err error, resource string) {
	if domain.KindOf(err) == domain.KindForbidden {
		metrics.OwnershipDeniedTotal.WithLabelValues(resource).Inc()
	}
}
