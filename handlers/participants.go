package handlers

import (
	"errors"
	"net/http"
	"time"

	"batepapo/database"
	"batepapo/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type registerRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *Handler) CreateParticipant(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, []string{"request body must be valid JSON"})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, validationMessages(err))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	_, err := h.store.FindOneByField(ctx, database.Users, "name", req.Name)
	if err == nil {
		c.Status(http.StatusConflict)
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		storeError(c, "CreateParticipant", err)
		return
	}

	participant := models.Participant{
		ID:         primitive.NewObjectID(),
		Name:       req.Name,
		LastStatus: time.Now().UnixMilli(),
	}
	if err := h.store.InsertOne(ctx, database.Users, participant); err != nil {
		storeError(c, "CreateParticipant", err)
		return
	}

	c.Status(http.StatusCreated)
}

func (h *Handler) ListParticipants(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	participants, err := h.store.FindAll(ctx, database.Users)
	if err != nil {
		storeError(c, "ListParticipants", err)
		return
	}

	c.JSON(http.StatusOK, participants)
}
