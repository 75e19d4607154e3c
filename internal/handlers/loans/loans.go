package loans

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tranvhq/golibrary/internal/domain"
	"github.com/tranvhq/golibrary/internal/dto"
	"github.com/tranvhq/golibrary/internal/service/loanservice"
	"github.com/tranvhq/golibrary/pkg/auth"
	"github.com/tranvhq/golibrary/pkg/utils"
)

//go:generate mockgen -source=loans.go -destination=mock_loans.go -package=loans

type Service interface {
	Return(ctx context.Context, txnID int, actor domain.Actor) (*domain.BorrowTransaction, error)
	RequestReturn(ctx context.Context, txnID int, actor domain.Actor) error
	GetActiveTransactions(ctx context.Context, actor domain.Actor) ([]domain.BorrowTransaction, error)
	GetMyLoans(ctx context.Context, userID int) ([]domain.BorrowTransaction, error)
}

type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

type LoanHandler struct {
	loanService Service
	sweeper     Sweeper
}

func New(loanService Service, sweeper Sweeper) *LoanHandler {
	return &LoanHandler{
		loanService: loanService,
		sweeper:     sweeper,
	}
}

// GetMyLoans godoc
//
//	@Summary	List own borrow transactions
//	@Tags		Loans
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.TransactionResponseDTO
//	@Failure	204	{object}	utils.Response	"No loans"
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/loans [get]
func (h *LoanHandler) GetMyLoans(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.ActorFromContext(r.Context())

	loans, err := h.loanService.GetMyLoans(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(loans) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No loans")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTOs(loans))
}

// RequestReturn godoc
//
//	@Summary		Flag an own loan for return
//	@Description	Marks the loan RETURN_PENDING until staff confirm the physical return
//	@Tags			Loans
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Transaction ID"
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Not the borrower"
//	@Failure		404	{object}	utils.Response	"Transaction not found"
//	@Failure		409	{object}	utils.Response	"Loan is not active"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/loans/{id}/return-request [post]
func (h *LoanHandler) RequestReturn(w http.ResponseWriter, r *http.Request) {
	userID, isStaff := auth.ActorFromContext(r.Context())
	txnID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	err = h.loanService.RequestReturn(r.Context(), txnID, domain.Actor{ID: userID, IsStaff: isStaff})
	if err != nil {
		respondLoanError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Return requested"})
}

// GetActiveLoans godoc
//
//	@Summary	List all active borrow transactions
//	@Tags		Loans
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.TransactionResponseDTO
//	@Failure	204	{object}	utils.Response	"No active loans"
//	@Failure	403	{object}	utils.Response	"Staff capability required"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/loans [get]
func (h *LoanHandler) GetActiveLoans(w http.ResponseWriter, r *http.Request) {
	userID, isStaff := auth.ActorFromContext(r.Context())

	loans, err := h.loanService.GetActiveTransactions(r.Context(), domain.Actor{ID: userID, IsStaff: isStaff})
	if err != nil {
		respondLoanError(w, err)
		return
	}
	if len(loans) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No active loans")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTOs(loans))
}

// ReturnLoan godoc
//
//	@Summary		Confirm a book return
//	@Description	Finalizes the loan, computes the late fine and releases the copy
//	@Tags			Loans
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Transaction ID"
//	@Success		200	{object}	dto.TransactionResponseDTO
//	@Failure		403	{object}	utils.Response	"Staff capability required"
//	@Failure		404	{object}	utils.Response	"Transaction not found"
//	@Failure		409	{object}	utils.Response	"Loan already returned"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/loans/{id}/return [post]
func (h *LoanHandler) ReturnLoan(w http.ResponseWriter, r *http.Request) {
	userID, isStaff := auth.ActorFromContext(r.Context())
	txnID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	txn, err := h.loanService.Return(r.Context(), txnID, domain.Actor{ID: userID, IsStaff: isStaff})
	if err != nil {
		respondLoanError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(txn))
}

// SweepOverdue godoc
//
//	@Summary		Run the overdue sweep now
//	@Description	Marks every BORROWING transaction past its due date as OVERDUE
//	@Tags			Loans
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SweepResponseDTO
//	@Failure		403	{object}	utils.Response	"Staff capability required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/loans/sweep [post]
func (h *LoanHandler) SweepOverdue(w http.ResponseWriter, r *http.Request) {
	marked, err := h.sweeper.Sweep(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SweepResponseDTO{
		Message: "Marked " + strconv.Itoa(marked) + " transactions overdue",
	})
}

func respondLoanError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, loanservice.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, loanservice.ErrUnauthorized):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, loanservice.ErrInvalidTransition):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
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

func toTransactionDTOs(txns []domain.BorrowTransaction) []dto.TransactionResponseDTO {
	response := make([]dto.TransactionResponseDTO, len(txns))
	for i, txn := range txns {
		response[i] = toTransactionDTO(&txn)
	}
	return response
}
