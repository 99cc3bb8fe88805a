package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_book_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_book_app/internal/dto"
	"github.com/SscSPs/ledger_book_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// entityHandler serves one kind's tree: /customers or /suppliers.
type entityHandler struct {
	kind            domain.EntityKind
	entityService   portssvc.EntitySvcFacade
	ledgerService   portssvc.LedgerSvc
	txnService      portssvc.TransactionSvc
	exportService   portssvc.ExportSvc
	settingsService portssvc.SettingsSvc
}

// registerEntityRoutes registers the entity, ledger and transaction routes for kind.
func registerEntityRoutes(rg *gin.RouterGroup, kind domain.EntityKind, services *portssvc.ServiceContainer) {
	h := &entityHandler{
		kind:            kind,
		entityService:   services.Entity,
		ledgerService:   services.Ledger,
		txnService:      services.Transaction,
		exportService:   services.Export,
		settingsService: services.Settings,
	}

	entities := rg.Group("/" + string(kind) + "s")
	{
		entities.GET("", h.listEntities)
		entities.POST("", h.createEntity)
		entities.GET("/:id", h.getEntity)
		entities.PUT("/:id", h.updateEntity)
		entities.DELETE("/:id", h.deleteEntity)
		entities.GET("/:id/ledger", h.getLedger)
		entities.GET("/:id/ledger/export", h.exportLedger)
		entities.POST("/:id/transactions", h.addTransaction)
		entities.PUT("/:id/transactions/:transactionID", h.updateTransaction)
		entities.DELETE("/:id/transactions/:transactionID", h.deleteTransaction)
	}
}

func (h *entityHandler) logger(c *gin.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("kind", string(h.kind)))
}

// listEntities godoc
// @Summary List customers or suppliers
// @Description Lists entities with their current balance, sorted by name. q filters by name (case-insensitive) or phone.
// @Tags entities
// @Produce json
// @Param q query string false "Search by name or phone"
// @Success 200 {array} dto.EntitySummaryResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers [get]
// @Router /suppliers [get]
func (h *entityHandler) listEntities(c *gin.Context) {
	logger := h.logger(c)
	var params dto.ListEntitiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, err)
		return
	}

	summaries, err := h.entityService.ListEntities(c.Request.Context(), h.kind, params.Query)
	if err != nil {
		respondServiceError(c, logger, err, "list entities")
		return
	}
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "load settings")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEntitySummaryResponse(summaries, settings))
}

// createEntity godoc
// @Summary Add a customer or supplier
// @Description Phone must be unique among entities of the same kind.
// @Tags entities
// @Accept json
// @Produce json
// @Param entity body dto.CreateEntityRequest true "Entity details"
// @Success 201 {object} dto.EntityResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Phone already in use"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers [post]
// @Router /suppliers [post]
func (h *entityHandler) createEntity(c *gin.Context) {
	logger := h.logger(c)
	var req dto.CreateEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}

	entity, err := h.entityService.CreateEntity(c.Request.Context(), h.kind, req)
	if err != nil {
		respondServiceError(c, logger, err, "create "+string(h.kind))
		return
	}
	logger.Info("Entity created", slog.String("entity_id", entity.EntityID))
	c.JSON(http.StatusCreated, dto.ToEntityResponse(entity))
}

// getEntity godoc
// @Summary Get a customer or supplier
// @Tags entities
// @Produce json
// @Param id path string true "Entity ID"
// @Success 200 {object} dto.EntityResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [get]
// @Router /suppliers/{id} [get]
func (h *entityHandler) getEntity(c *gin.Context) {
	entity, err := h.entityService.GetEntity(c.Request.Context(), h.kind, c.Param("id"))
	if err != nil {
		respondServiceError(c, h.logger(c), err, "get "+string(h.kind))
		return
	}
	c.JSON(http.StatusOK, dto.ToEntityResponse(entity))
}

// updateEntity godoc
// @Summary Replace a customer or supplier
// @Description Replaces name, phone, email and address. The created date is kept.
// @Tags entities
// @Accept json
// @Produce json
// @Param id path string true "Entity ID"
// @Param entity body dto.UpdateEntityRequest true "Entity details"
// @Success 200 {object} dto.EntityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [put]
// @Router /suppliers/{id} [put]
func (h *entityHandler) updateEntity(c *gin.Context) {
	logger := h.logger(c)
	var req dto.UpdateEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}

	entity, err := h.entityService.UpdateEntity(c.Request.Context(), h.kind, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "update "+string(h.kind))
		return
	}
	c.JSON(http.StatusOK, dto.ToEntityResponse(entity))
}

// deleteEntity godoc
// @Summary Delete a customer or supplier
// @Description Deletes the entity and every transaction recorded against it.
// @Tags entities
// @Param id path string true "Entity ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [delete]
// @Router /suppliers/{id} [delete]
func (h *entityHandler) deleteEntity(c *gin.Context) {
	if err := h.entityService.DeleteEntity(c.Request.Context(), h.kind, c.Param("id")); err != nil {
		respondServiceError(c, h.logger(c), err, "delete "+string(h.kind))
		return
	}
	c.Status(http.StatusNoContent)
}

// getLedger godoc
// @Summary Get an entity's ledger
// @Description Transactions in date order with running balances. Unreadable stored rows are listed in rowErrors and contribute zero.
// @Tags ledger
// @Produce json
// @Param id path string true "Entity ID"
// @Success 200 {object} dto.LedgerResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id}/ledger [get]
// @Router /suppliers/{id}/ledger [get]
func (h *entityHandler) getLedger(c *gin.Context) {
	logger := h.logger(c)
	entity, view, err := h.ledgerService.GetLedger(c.Request.Context(), h.kind, c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "compute ledger")
		return
	}
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "load settings")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerResponse(entity, view, settings))
}

// exportLedger godoc
// @Summary Download an entity's ledger
// @Description Excel (default) or CSV with Date, Particulars, Debit, Credit, Balance and a TOTAL row.
// @Tags ledger
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Param id path string true "Entity ID"
// @Param format query string false "xlsx or csv" Enums(xlsx, csv)
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Ledger has unreadable rows"
// @Security BearerAuth
// @Router /customers/{id}/ledger/export [get]
// @Router /suppliers/{id}/ledger/export [get]
func (h *entityHandler) exportLedger(c *gin.Context) {
	logger := h.logger(c)
	format, err := domain.ParseExportFormat(c.Query("format"))
	if err != nil {
		respondServiceError(c, logger, err, "export ledger")
		return
	}

	file, err := h.exportService.ExportLedger(c.Request.Context(), h.kind, c.Param("id"), format)
	if err != nil {
		respondServiceError(c, logger, err, "export ledger")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// addTransaction godoc
// @Summary Record a transaction
// @Description Amounts are non-negative decimals (string or number); at least one must be non-zero.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Entity ID"
// @Param transaction body dto.TransactionRequest true "Transaction"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id}/transactions [post]
// @Router /suppliers/{id}/transactions [post]
func (h *entityHandler) addTransaction(c *gin.Context) {
	logger := h.logger(c)
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}

	txn, err := h.txnService.AddTransaction(c.Request.Context(), h.kind, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "add transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Replace a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Entity ID"
// @Param transactionID path string true "Transaction ID"
// @Param transaction body dto.TransactionRequest true "Transaction"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id}/transactions/{transactionID} [put]
// @Router /suppliers/{id}/transactions/{transactionID} [put]
func (h *entityHandler) updateTransaction(c *gin.Context) {
	logger := h.logger(c)
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}

	txn, err := h.txnService.UpdateTransaction(c.Request.Context(), h.kind, c.Param("id"), c.Param("transactionID"), req)
	if err != nil {
		respondServiceError(c, logger, err, "update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Param id path string true "Entity ID"
// @Param transactionID path string true "Transaction ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id}/transactions/{transactionID} [delete]
// @Router /suppliers/{id}/transactions/{transactionID} [delete]
func (h *entityHandler) deleteTransaction(c *gin.Context) {
	if err := h.txnService.DeleteTransaction(c.Request.Context(), h.kind, c.Param("id"), c.Param("transactionID")); err != nil {
		respondServiceError(c, h.logger(c), err, "delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}
