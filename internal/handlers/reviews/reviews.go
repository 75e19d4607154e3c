package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tranvhq/golibrary/internal/domain"
	"github.com/tranvhq/golibrary/internal/dto"
	"github.com/tranvhq/golibrary/internal/service/reviewservice"
	"github.com/tranvhq/golibrary/pkg/auth"
	"github.com/tranvhq/golibrary/pkg/utils"
	"github.com/tranvhq/golibrary/pkg/validate"
)

//go:generate mockgen -source=reviews.go -destination=mock_reviews.go -package=reviews

type Service interface {
	Create(ctx context.Context, userID, bookID, rating int, content string) (*domain.Review, error)
	Moderate(ctx context.Context, reviewID int, approve bool, actor domain.Actor) error
	GetBookReviews(ctx context.Context, bookID int) ([]domain.Review, error)
	GetPendingReviews(ctx context.Context, actor domain.Actor) ([]domain.Review, error)
}

type ReviewHandler struct {
	reviewService Service
}

func New(reviewService Service) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// CreateReview godoc
//
//	@Summary		Submit a book review
//	@Description	Only users who have returned the book may review it
//	@Tags			Reviews
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateReviewDTO	true	"Review payload"
//	@Success		201		{object}	dto.ReviewDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		409		{object}	utils.Response	"Review not eligible"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/reviews [post]
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.ActorFromContext(r.Context())

	var req dto.CreateReviewDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	review, err := h.reviewService.Create(r.Context(), userID, req.BookID, req.Rating, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, reviewservice.ErrIneligibleReview):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toReviewDTO(review))
}

// GetBookReviews godoc
//
//	@Summary	List approved reviews for a book
//	@Tags		Reviews
//	@Produce	json
//	@Param		id	path		int	true	"Book ID"
//	@Success	200	{array}		dto.ReviewDTO
//	@Failure	204	{object}	utils.Response	"No reviews"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/books/{id}/reviews [get]
func (h *ReviewHandler) GetBookReviews(w http.ResponseWriter, r *http.Request) {
	bookID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid book id")
		return
	}

	reviews, err := h.reviewService.GetBookReviews(r.Context(), bookID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(reviews) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No reviews")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toReviewDTOs(reviews))
}

// GetPendingReviews godoc
//
//	@Summary	List reviews awaiting moderation
//	@Tags		Reviews
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.ReviewDTO
//	@Failure	204	{object}	utils.Response	"No pending reviews"
//	@Failure	403	{object}	utils.Response	"Staff capability required"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/reviews [get]
func (h *ReviewHandler) GetPendingReviews(w http.ResponseWriter, r *http.Request) {
	userID, isStaff := auth.ActorFromContext(r.Context())

	reviews, err := h.reviewService.GetPendingReviews(r.Context(), domain.Actor{ID: userID, IsStaff: isStaff})
	if err != nil {
		respondReviewError(w, err)
		return
	}
	if len(reviews) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No pending reviews")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toReviewDTOs(reviews))
}

// ModerateReview godoc
//
//	@Summary	Approve or reject a pending review
//	@Tags		Reviews
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Review ID"
//	@Param		request	body		dto.ModerateReviewDTO	true	"Moderation verdict"
//	@Success	200		{object}	utils.Response
//	@Failure	403		{object}	utils.Response	"Staff capability required"
//	@Failure	404		{object}	utils.Response	"Review not found"
//	@Failure	409		{object}	utils.Response	"Review is not pending"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/reviews/{id}/moderate [post]
func (h *ReviewHandler) ModerateReview(w http.ResponseWriter, r *http.Request) {
	userID, isStaff := auth.ActorFromContext(r.Context())
	reviewID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid review id")
		return
	}

	var req dto.ModerateReviewDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.reviewService.Moderate(r.Context(), reviewID, req.Approve, domain.Actor{ID: userID, IsStaff: isStaff})
	if err != nil {
		respondReviewError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Review moderated"})
}

func respondReviewError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reviewservice.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, reviewservice.ErrUnauthorized):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, reviewservice.ErrInvalidTransition):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toReviewDTO(review *domain.Review) dto.ReviewDTO {
	return dto.ReviewDTO{
		ID:        review.ID,
		BookID:    review.BookID,
		Rating:    review.Rating,
		Content:   review.Content,
		Status:    review.Status,
		CreatedAt: review.CreatedAt,
	}
}

func toReviewDTOs(reviews []domain.Review) []dto.ReviewDTO {
	response := make([]dto.ReviewDTO, len(reviews))
	for i, review := range reviews {
		response[i] = toReviewDTO(&review)
	}
	return response
}
