package handlers

import (
	"net/http"
	"strconv"

	"github.com/LavaJover/shvark-catalog-service/internal/delivery/http/dto/catalog/request"
	"github.com/LavaJover/shvark-catalog-service/internal/delivery/http/dto/catalog/response"
	"github.com/LavaJover/shvark-catalog-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-catalog-service/internal/usecase"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	bankUsecase    usecase.BankUsecase
	depositUsecase usecase.DepositUsecase
	// nil when metrics are disabled
	metrics *metrics.CatalogMetrics
}

func NewCatalogHandler(
	bankUsecase usecase.BankUsecase,
	depositUsecase usecase.DepositUsecase,
	catalogMetrics *metrics.CatalogMetrics,
) *CatalogHandler {
	return &CatalogHandler{
		bankUsecase:    bankUsecase,
		depositUsecase: depositUsecase,
		metrics:        catalogMetrics,
	}
}

func (h *CatalogHandler) RegisterRoutes(r gin.IRouter) {
	api := r.Group("/api")
	{
		api.GET("/banks", h.ListBanks)
		api.GET("/banks/:id", h.GetBank)
		api.GET("/deposits", h.ListDeposits)
		api.GET("/deposits/:id", h.GetDeposit)
	}
}

// ListBanks GET /api/banks
func (h *CatalogHandler) ListBanks(c *gin.Context) {
	banks, err := h.bankUsecase.ListBanks(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewBankResponses(banks))
}

// GetBank GET /api/banks/:id
func (h *CatalogHandler) GetBank(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	out, err := h.bankUsecase.GetBank(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	deposits, err := response.NewDepositResponses(out.Deposits)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.BankDetailResponse{
		ID:       out.Bank.ID,
		Name:     out.Bank.Name,
		Logo:     out.Bank.Logo,
		Deposits: deposits,
	})
}

// ListDeposits GET /api/deposits?bankId=&currency=&minTerm=&maxTerm=&minAmount=&sortBy=&sortDescending=
func (h *CatalogHandler) ListDeposits(c *gin.Context) {
	var query request.DepositListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithBadRequest(c, "query", "format", err.Error())
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		respondWithError(c, err)
		return
	}

	deposits, err := h.depositUsecase.ListDeposits(c.Request.Context(), filter)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.DepositQueryResults.Observe(float64(len(deposits)))
	}

	resp, err := response.NewDepositResponses(deposits)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetDeposit GET /api/deposits/:id
func (h *CatalogHandler) GetDeposit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	deposit, err := h.depositUsecase.GetDeposit(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp, err := response.NewDepositResponse(deposit)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondWithBadRequest(c, "id", "int", "Value must be an integer")
		return 0, false
	}
	return id, true
}
