package dashboard

import (
	"context"
	"errors"
	"net/http"

	"github.com/tranvhq/golibrary/internal/domain"
	"github.com/tranvhq/golibrary/internal/dto"
	"github.com/tranvhq/golibrary/internal/service/catalogservice"
	"github.com/tranvhq/golibrary/pkg/auth"
	"github.com/tranvhq/golibrary/pkg/utils"
)

//go:generate mockgen -source=dashboard.go -destination=mock_dashboard.go -package=dashboard

type Service interface {
	GetStats(ctx context.Context, actor domain.Actor) (*catalogservice.Stats, error)
}

type DashboardHandler struct {
	catalogService Service
}

func New(catalogService Service) *DashboardHandler {
	return &DashboardHandler{
		catalogService: catalogService,
	}
}

// GetStats godoc
//
//	@Summary	Staff dashboard counters
//	@Tags		Dashboard
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.StatsDTO
//	@Failure	403	{object}	utils.Response	"Staff capability required"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/dashboard [get]
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID, isStaff := auth.ActorFromContext(r.Context())

	stats, err := h.catalogService.GetStats(r.Context(), domain.Actor{ID: userID, IsStaff: isStaff})
	if err != nil {
		if errors.Is(err, catalogservice.ErrUnauthorized) {
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.StatsDTO{
		ActiveBooks:     stats.ActiveBooks,
		PendingRequests: stats.PendingRequests,
		ActiveLoans:     stats.ActiveLoans,
		OverdueLoans:    stats.OverdueLoans,
		PendingReviews:  stats.PendingReviews,
	})
}
