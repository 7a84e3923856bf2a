package handler

import (
	"net/http"

	"mos3ef-api/internal/delivery/dto"
	"mos3ef-api/internal/usecase"
	"mos3ef-api/pkg/response"
	"mos3ef-api/pkg/validator"

	"github.com/sirupsen/logrus"
)

type ReviewHandler struct {
	reviewUsecase usecase.ReviewUsecase
	validator     *validator.CustomValidator
	log           *logrus.Logger
}

func NewReviewHandler(reviewUsecase usecase.ReviewUsecase, validator *validator.CustomValidator, log *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewUsecase: reviewUsecase,
		validator:     validator,
		log:           log,
	}
}

func (h *ReviewHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	var req dto.CreateReviewRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.log, err, "")
		return
	}
	if err := h.validator.Check(&req); err != nil {
		writeError(w, h.log, err, "")
		return
	}

	review, err := h.reviewUsecase.AddReview(r.Context(), userID, &req)
	if err != nil {
		writeError(w, h.log, err, "Failed to add review")
		return
	}

	response.Success(w, http.StatusCreated, "Review created successfully", review)
}

func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, err, "")
		return
	}

	var req dto.UpdateReviewRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.log, err, "")
		return
	}
	if err := h.validator.Check(&req); err != nil {
		writeError(w, h.log, err, "")
		return
	}

	review, err := h.reviewUsecase.UpdateReview(r.Context(), userID, id, &req)
	if err != nil {
		writeError(w, h.log, err, "Failed to update review")
		return
	}

	response.Success(w, http.StatusOK, "Review updated successfully", review)
}

func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.log, err, "")
		return
	}

	if err := h.reviewUsecase.DeleteReview(r.Context(), userID, id); err != nil {
		writeError(w, h.log, err, "Failed to delete review")
		return
	}

	response.Success(w, http.StatusOK, "Review deleted successfully", nil)
}
