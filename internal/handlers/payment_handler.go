package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/henryjobel/evi-learnig-server-site/internal/models"
	"github.com/henryjobel/evi-learnig-server-site/internal/payments"
)

type PaymentHandler struct {
	enrollments *mongo.Collection
	payments    payments.Client
	logger      *zap.SugaredLogger
}

func NewPaymentHandler(client *mongo.Client, dbName string, paymentsClient payments.Client, logger *zap.SugaredLogger) *PaymentHandler {
	return &PaymentHandler{
		enrollments: client.Database(dbName).Collection("enrollments"),
		payments:    paymentsClient,
		logger:      logger,
	}
}

// CreatePaymentIntent converts the posted price to minor units and asks the
// processor for a payment intent. Nothing is persisted here; the enrollment
// record arrives via CreateEnrollment once the client confirms the payment.
func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request payload"))
		return
	}

	amount := payments.MinorUnits(body.Price)
	clientSecret, err := h.payments.CreatePaymentIntent(r.Context(), amount)
	if err != nil {
		h.logger.Errorw("failed to create payment intent", "amount", amount, "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"clientSecret": clientSecret})
}

// CreateEnrollment records a completed payment with the purchased course
// references and returns the insert acknowledgment.
func (h *PaymentHandler) CreateEnrollment(w http.ResponseWriter, r *http.Request) {
	var enrollment models.Enrollment
	if err := json.NewDecoder(r.Body).Decode(&enrollment); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request payload"))
		return
	}

	enrollment.ID = primitive.NewObjectID()
	if enrollment.Date.IsZero() {
		enrollment.Date = time.Now()
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := h.enrollments.InsertOne(ctx, enrollment)
	if err != nil {
		h.logger.Errorw("failed to save enrollment", "student", enrollment.Student.Email, "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// GetEnrollments lists a student's enrollment records, filtered by the email
// query parameter. No email means an empty list, never everyone's payments.
func (h *PaymentHandler) GetEnrollments(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeJSON(w, http.StatusOK, []models.Enrollment{})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := h.enrollments.Find(ctx, bson.M{"student.email": email})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	defer cursor.Close(ctx)

	enrollments := []models.Enrollment{}
	if err = cursor.All(ctx, &enrollments); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, enrollments)
}
