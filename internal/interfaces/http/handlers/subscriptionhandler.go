package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"netbill/internal/application/subscription/usecases"
	"netbill/internal/shared/biztime"
	"netbill/internal/shared/logger"
	"netbill/internal/shared/utils"
)

// SubscriptionHandler handles the subscription lifecycle endpoints.
type SubscriptionHandler struct {
	subscribeUseCase     subscribeUseCase
	renewUseCase         renewUseCase
	upgradeUseCase       upgradeUseCase
	reverseUseCase       reverseRenewalUseCase
	updateUseCase        updateSubscriptionUseCase
	deleteUseCase        deleteSubscriptionUseCase
	listUseCase          listSubscriptionsUseCase
	historyUseCase       renewalHistoryUseCase
	deleteRenewalUseCase deleteRenewalUseCase
	deletePaymentUseCase deletePaymentUseCase
	statsUseCase         renewalStatsUseCase
	logger               logger.Interface
}

func NewSubscriptionHandler(
	subscribeUC subscribeUseCase,
	renewUC renewUseCase,
	upgradeUC upgradeUseCase,
	reverseUC reverseRenewalUseCase,
	updateUC updateSubscriptionUseCase,
	deleteUC deleteSubscriptionUseCase,
	listUC listSubscriptionsUseCase,
	historyUC renewalHistoryUseCase,
	deleteRenewalUC deleteRenewalUseCase,
	deletePaymentUC deletePaymentUseCase,
	statsUC renewalStatsUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscribeUseCase:     subscribeUC,
		renewUseCase:         renewUC,
		upgradeUseCase:       upgradeUC,
		reverseUseCase:       reverseUC,
		updateUseCase:        updateUC,
		deleteUseCase:        deleteUC,
		listUseCase:          listUC,
		historyUseCase:       historyUC,
		deleteRenewalUseCase: deleteRenewalUC,
		deletePaymentUseCase: deletePaymentUC,
		statsUseCase:         statsUC,
		logger:               logger,
	}
}

// SubscribeRequest carries the optional payment details for Subscribe and Upgrade.
type SubscribeRequest struct {
	TransactionID *string `json:"transaction_id"`
	PaymentMethod string  `json:"payment_method" binding:"omitempty,oneof=cash card bank_transfer mobile_money"`
}

// UpdateSubscriptionRequest carries an administrative subscription edit.
type UpdateSubscriptionRequest struct {
	PackageID *uint   `json:"package_id"`
	StartDate *string `json:"start_date"`

	Payment *UpdatePaymentRequest `json:"payment"`
}

// UpdatePaymentRequest carries the payment fields for the atomic upsert.
type UpdatePaymentRequest struct {
	Amount        uint64  `json:"amount" binding:"required"`
	PaymentMethod string  `json:"payment_method" binding:"omitempty,oneof=cash card bank_transfer mobile_money"`
	TransactionID *string `json:"transaction_id"`
	PaymentDate   *string `json:"payment_date"`
	Status        string  `json:"status" binding:"omitempty,oneof=unpaid paid"`
	Notes         *string `json:"notes"`
}

// Subscribe enrolls a user into the package given in the path.
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	packageID, err := utils.ParseUintParam(c, "id", "package")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.ParseUintQuery(c, "userId", "user ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SubscribeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for subscribe", "error", err)
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	var startDate *time.Time
	if raw := c.Query("start_date"); raw != "" {
		parsed, err := biztime.ParseDate(raw)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		startDate = &parsed
	}

	cmd := usecases.SubscribeCommand{
		UserID:        userID,
		PackageID:     packageID,
		StartDate:     startDate,
		TransactionID: req.TransactionID,
		PaymentMethod: req.PaymentMethod,
	}

	result, err := h.subscribeUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Subscribed successfully")
}

// Renew extends the user's latest subscription by one package validity period.
func (h *SubscriptionHandler) Renew(c *gin.Context) {
	userID, err := utils.ParseUintQuery(c, "userId", "user ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.renewUseCase.Execute(c.Request.Context(), usecases.RenewCommand{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription renewed successfully", result)
}

// Upgrade moves the user to the package given in the path.
func (h *SubscriptionHandler) Upgrade(c *gin.Context) {
	packageID, err := utils.ParseUintParam(c, "id", "package")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.ParseUintQuery(c, "userId", "user ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SubscribeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for upgrade", "error", err)
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	cmd := usecases.UpgradeCommand{
		UserID:        userID,
		PackageID:     packageID,
		TransactionID: req.TransactionID,
		PaymentMethod: req.PaymentMethod,
	}

	result, err := h.upgradeUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Subscription upgraded successfully")
}

// ReverseRenewal unwinds the renewal given in the path.
func (h *SubscriptionHandler) ReverseRenewal(c *gin.Context) {
	renewalID, err := utils.ParseUintParam(c, "id", "renewal")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.reverseUseCase.Execute(c.Request.Context(), usecases.ReverseRenewalCommand{RenewalID: renewalID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Renewal reversed successfully", result)
}

// UpdateSubscription applies an administrative edit to the subscription in the path.
func (h *SubscriptionHandler) UpdateSubscription(c *gin.Context) {
	subscriptionID, err := utils.ParseUintParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update subscription", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateSubscriptionCommand{
		SubscriptionID: subscriptionID,
		PackageID:      req.PackageID,
	}

	if req.StartDate != nil {
		parsed, err := biztime.ParseDate(*req.StartDate)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		cmd.StartDate = &parsed
	}

	if req.Payment != nil {
		details := &usecases.PaymentDetails{
			Amount:        req.Payment.Amount,
			PaymentMethod: req.Payment.PaymentMethod,
			TransactionID: req.Payment.TransactionID,
			Status:        req.Payment.Status,
			Notes:         req.Payment.Notes,
		}
		if req.Payment.PaymentDate != nil {
			parsed, err := biztime.ParseDate(*req.Payment.PaymentDate)
			if err != nil {
				utils.ErrorResponseWithError(c, err)
				return
			}
			details.PaymentDate = &parsed
		}
		cmd.Payment = details
	}

	result, err := h.updateUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription updated successfully", result)
}

// DeleteSubscription removes the subscription in the path.
func (h *SubscriptionHandler) DeleteSubscription(c *gin.Context) {
	subscriptionID, err := utils.ParseUintParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), subscriptionID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListCurrent lists the user's subscriptions with joined payment info.
func (h *SubscriptionHandler) ListCurrent(c *gin.Context) {
	userID, err := utils.ParseUintQuery(c, "userId", "user ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// RenewalHistory lists the user's renewal rows, newest first.
func (h *SubscriptionHandler) RenewalHistory(c *gin.Context) {
	userID, err := utils.ParseUintQuery(c, "userId", "user ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.historyUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteRenewal removes the renewal history row in the path.
func (h *SubscriptionHandler) DeleteRenewal(c *gin.Context) {
	renewalID, err := utils.ParseUintParam(c, "id", "renewal")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteRenewalUseCase.Execute(c.Request.Context(), renewalID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// DeletePayment removes the payment row in the path.
func (h *SubscriptionHandler) DeletePayment(c *gin.Context) {
	paymentID, err := utils.ParseUintParam(c, "id", "payment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deletePaymentUseCase.Execute(c.Request.Context(), paymentID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// RenewalStats aggregates renewal volume for the given year and month.
func (h *SubscriptionHandler) RenewalStats(c *gin.Context) {
	query := usecases.RenewalStatsQuery{
		Year:  utils.ParseIntQuery(c, "year", 0),
		Month: utils.ParseIntQuery(c, "month", 0),
	}

	result, err := h.statsUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
