package borrow

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tranvhq/golibrary/internal/domain"
	"github.com/tranvhq/golibrary/internal/dto"
	"github.com/tranvhq/golibrary/internal/service/borrowservice"
	"github.com/tranvhq/golibrary/internal/service/ledgerservice"
	"github.com/tranvhq/golibrary/pkg/auth"
	"github.com/tranvhq/golibrary/pkg/utils"
	"github.com/tranvhq/golibrary/pkg/validate"
)

//go:generate mockgen -source=borrow.go -destination=mock_borrow.go -package=borrow

type Service interface {
	Create(ctx context.Context, userID, bookID int, expectedReturnDate time.Time, note string) (*domain.BorrowRequest, error)
	Cancel(ctx context.Context, requestID int, actor domain.Actor) error
	Approve(ctx context.Context, requestID int, actor domain.Actor) (*domain.BorrowTransaction, error)
	Reject(ctx context.Context, requestID int, actor domain.Actor) error
	GetMyRequests(ctx context.Context, userID int) ([]domain.BorrowRequest, error)
	GetPendingRequests(ctx context.Context, actor domain.Actor) ([]domain.BorrowRequest, error)
}

type BorrowHandler struct {
	borrowService Service
}

func New(borrowService Service) *BorrowHandler {
	return &BorrowHandler{
		borrowService: borrowService,
	}
}

// CreateRequest godoc
//
//	@Summary		Submit a borrow request
//	@Description	Create a PENDING borrow request for a book
//	@Tags			Borrowing
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateRequestDTO	true	"Borrow request payload"
//	@Success		201		{object}	dto.BorrowRequestResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		409		{object}	utils.Response	"Request not eligible"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/requests [post]
func (h *BorrowHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.ActorFromContext(r.Context())

	var req dto.CreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	expectedReturnDate, err := time.Parse("2006-01-02", req.ExpectedReturnDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid expected return date")
		return
	}

	created, err := h.borrowService.Create(r.Context(), userID, req.BookID, expectedReturnDate, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, borrowservice.ErrIneligibleRequest):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toRequestDTO(created))
}

// GetMyRequests godoc
//
//	@Summary	List own borrow requests
//	@Tags		Borrowing
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.BorrowRequestResponseDTO
//	@Failure	204	{object}	utils.Response	"No requests"
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/requests [get]
func (h *BorrowHandler) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.ActorFromContext(r.Context())

	requests, err := h.borrowService.GetMyRequests(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(requests) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No requests")
		return
	}

	response := make([]dto.BorrowRequestResponseDTO, len(requests))
	for i, req := range requests {
		response[i] = toRequestDTO(&req)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CancelRequest godoc
//
//	@Summary	Cancel an own pending borrow request
//	@Tags		Borrowing
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Request ID"
//	@Success	200	{object}	utils.Response
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	403	{object}	utils.Response	"Not the requester"
//	@Failure	404	{object}	utils.Response	"Request not found"
//	@Failure	409	{object}	utils.Response	"Request is not pending"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/requests/{id}/cancel [post]
func (h *BorrowHandler) CancelRequest(w http.ResponseWriter, r *http.Request) {
	userID, isStaff := auth.ActorFromContext(r.Context())
	requestID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}

	err = h.borrowService.Cancel(r.Context(), requestID, domain.Actor{ID: userID, IsStaff: isStaff})
	if err != nil {
		respondWorkflowError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Request cancelled"})
}

// GetPendingRequests godoc
//
//	@Summary	List all pending borrow requests
//	@Tags		Borrowing
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.BorrowRequestResponseDTO
//	@Failure	204	{object}	utils.Response	"No pending requests"
//	@Failure	403	{object}	utils.Response	"Staff capability required"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/requests [get]
func (h *BorrowHandler) GetPendingRequests(w http.ResponseWriter, r *http.Request) {
	userID, isStaff := auth.ActorFromContext(r.Context())

	requests, err := h.borrowService.GetPendingRequests(r.Context(), domain.Actor{ID: userID, IsStaff: isStaff})
	if err != nil {
		respondWorkflowError(w, err)
		return
	}
	if len(requests) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No pending requests")
		return
	}

	response := make([]dto.BorrowRequestResponseDTO, len(requests))
	for i, req := range requests {
		response[i] = toRequestDTO(&req)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ApproveRequest godoc
//
//	@Summary		Approve a pending borrow request
//	@Description	Reserves a copy and opens the borrow transaction
//	@Tags			Borrowing
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Request ID"
//	@Success		200	{object}	dto.TransactionResponseDTO
//	@Failure		403	{object}	utils.Response	"Staff capability required"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		409	{object}	utils.Response	"Not pending or out of stock"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/requests/{id}/approve [post]
func (h *BorrowHandler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	userID, isStaff := auth.ActorFromContext(r.Context())
	requestID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}

	txn, err := h.borrowService.Approve(r.Context(), requestID, domain.Actor{ID: userID, IsStaff: isStaff})
	if err != nil {
		respondWorkflowError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(txn))
}

// RejectRequest godoc
//
//	@Summary	Reject a pending borrow request
//	@Tags		Borrowing
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Request ID"
//	@Success	200	{object}	utils.Response
//	@Failure	403	{object}	utils.Response	"Staff capability required"
//	@Failure	404	{object}	utils.Response	"Request not found"
//	@Failure	409	{object}	utils.Response	"Request is not pending"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/requests/{id}/reject [post]
func (h *BorrowHandler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	userID, isStaff := auth.ActorFromContext(r.Context())
	requestID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}

	err = h.borrowService.Reject(r.Context(), requestID, domain.Actor{ID: userID, IsStaff: isStaff})
	if err != nil {
		respondWorkflowError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Request rejected"})
}

func respondWorkflowError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, borrowservice.ErrNotFound), errors.Is(err, ledgerservice.ErrBookNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, borrowservice.ErrUnauthorized):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, borrowservice.ErrInvalidTransition),
		errors.Is(err, ledgerservice.ErrOutOfStock),
		errors.Is(err, borrowservice.ErrIneligibleRequest):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toRequestDTO(req *domain.BorrowRequest) dto.BorrowRequestResponseDTO {
	return dto.BorrowRequestResponseDTO{
		ID:                 req.ID,
		BookID:             req.BookID,
		RequestDate:        req.RequestDate,
		ExpectedReturnDate: req.ExpectedReturnDate.Format("2006-01-02"),
		Status:             req.Status,
		Note:               req.Note,
		HandledAt:          req.HandledAt,
	}
}

func toTransactionDTO(txn *domain.BorrowTransaction) dto.TransactionResponseDTO {
	resp := dto.TransactionResponseDTO{
		ID:             txn.ID,
		RequestID:      txn.RequestID,
		BookID:         txn.BookID,
		BorrowedAt:     txn.BorrowedAt,
		DueAt:          txn.DueAt,
		ReturnedAt:     txn.ReturnedAt,
		Status:         txn.Status,
		LateReturnDays: txn.LateReturnDays,
	}
	if txn.FineAmount.Valid {
		resp.FineAmount = txn.FineAmount.Decimal.String()
	}
	return resp
}
