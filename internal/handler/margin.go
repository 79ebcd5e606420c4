// Package handler margin positions
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"Margin-Position-Service/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// MarginService margin positions service
//
//go:generate mockery --name=MarginService --case=underscore --output=./mocks
type MarginService interface {
	OpenMarginPosition(ctx context.Context, userID uuid.UUID, borrowedAmount decimal.Decimal,
		multiplier int32, transactionID string) (*model.MarginPosition, error)
	CloseMarginPosition(ctx context.Context, positionID uuid.UUID) (*model.MarginPosition, error)
	GetPositionByID(ctx context.Context, positionID uuid.UUID) (*model.MarginPosition, error)
	GetUserPositions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*model.MarginPosition, error)
	HasOpenPosition(ctx context.Context, userID uuid.UUID) (bool, error)
}

// Margin handler
type Margin struct {
	service MarginService
}

// NewMargin constructor
func NewMargin(s MarginService) *Margin {
	return &Margin{service: s}
}

// Register margin position routes
func (h *Margin) Register(router *gin.Engine) {
	router.POST("/positions", h.OpenPosition)
	router.POST("/positions/:id/close", h.ClosePosition)
	router.GET("/positions/:id", h.GetPositionByID)
	router.GET("/users/:id/positions", h.GetUserPositions)
	router.GET("/users/:id/positions/open", h.HasOpenPosition)
}

type openPositionRequest struct {
	UserID         string `json:"userId" binding:"required,uuid"`
	BorrowedAmount string `json:"borrowedAmount" binding:"required"`
	Multiplier     int32  `json:"multiplier" binding:"required"`
	TransactionID  string `json:"transactionId" binding:"required"`
}

// OpenPosition open new margin position
func (h *Margin) OpenPosition(c *gin.Context) {
	request := openPositionRequest{}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := uuid.Parse(request.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId must be a uuid"})
		return
	}
	borrowedAmount, err := decimal.NewFromString(request.BorrowedAmount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "borrowedAmount must be a decimal string"})
		return
	}

	position, err := h.service.OpenMarginPosition(c.Request.Context(), userID, borrowedAmount,
		request.Multiplier, request.TransactionID)
	if err != nil {
		var validationErr *model.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		logrus.WithFields(logrus.Fields{
			"UserID":        request.UserID,
			"TransactionID": request.TransactionID,
		}).Errorf("margin - OpenPosition - OpenMarginPosition: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, position)
}

// ClosePosition close margin position
func (h *Margin) ClosePosition(c *gin.Context) {
	positionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a uuid"})
		return
	}

	position, err := h.service.CloseMarginPosition(c.Request.Context(), positionID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"PositionID": positionID,
		}).Errorf("margin - ClosePosition - CloseMarginPosition: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if position == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "position not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": position.Status})
}

// GetPositionByID get margin position by id
func (h *Margin) GetPositionByID(c *gin.Context) {
	positionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a uuid"})
		return
	}

	position, err := h.service.GetPositionByID(c.Request.Context(), positionID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"PositionID": positionID,
		}).Errorf("margin - GetPositionByID - GetPositionByID: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if position == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "position not found"})
		return
	}

	c.JSON(http.StatusOK, position)
}

// GetUserPositions get page of user margin positions
func (h *Margin) GetUserPositions(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a uuid"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be a non-negative integer"})
		return
	}

	positions, err := h.service.GetUserPositions(c.Request.Context(), userID, limit, offset)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"UserID": userID,
		}).Errorf("margin - GetUserPositions - GetUserPositions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"positions": positions})
}

// HasOpenPosition reports whether user has at least one open margin position
func (h *Margin) HasOpenPosition(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a uuid"})
		return
	}

	hasOpen, err := h.service.HasOpenPosition(c.Request.Context(), userID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"UserID": userID,
		}).Errorf("margin - HasOpenPosition - HasOpenPosition: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"hasOpen": hasOpen})
}
