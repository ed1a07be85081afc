package handlers

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type StatsHandler struct {
	users       *mongo.Collection
	courses     *mongo.Collection
	enrollments *mongo.Collection
	logger      *zap.SugaredLogger
}

func NewStatsHandler(client *mongo.Client, dbName string, logger *zap.SugaredLogger) *StatsHandler {
	db := client.Database(dbName)
	return &StatsHandler{
		users:       db.Collection("users"),
		courses:     db.Collection("courses"),
		enrollments: db.Collection("enrollments"),
		logger:      logger,
	}
}

// AdminStatsResponse carries the dashboard headline numbers. Counts are
// estimated, revenue is an exact sum over enrollment records.
// Key names match what the dashboard frontend already consumes.
type AdminStatsResponse struct {
	Users    int64   `json:"users"`
	Courses  int64   `json:"coursesItems"`
	Payments int64   `json:"payments"`
	Revenue  float64 `json:"revenue"`
}

type revenueGroup struct {
	TotalRevenue float64 `bson:"totalRevenue"`
}

// totalRevenue collapses the single-group aggregation result, falling back
// to 0 when the enrollments collection is empty.
func totalRevenue(groups []revenueGroup) float64 {
	if len(groups) == 0 {
		return 0
	}
	return groups[0].TotalRevenue
}

// AdminStats reports estimated collection counts plus total revenue summed
// across all enrollment records.
func (h *StatsHandler) AdminStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	users, err := h.users.EstimatedDocumentCount(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	courses, err := h.courses.EstimatedDocumentCount(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	orders, err := h.enrollments.EstimatedDocumentCount(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	pipeline := mongo.Pipeline{
		{
			{
				Key: "$group",
				Value: bson.D{
					{Key: "_id", Value: nil},
					{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
				},
			},
		},
	}

	cursor, err := h.enrollments.Aggregate(ctx, pipeline)
	if err != nil {
		h.logger.Errorw("failed to aggregate revenue", "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	defer cursor.Close(ctx)

	var groups []revenueGroup
	if err = cursor.All(ctx, &groups); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, AdminStatsResponse{
		Users:    users,
		Courses:  courses,
		Payments: orders,
		Revenue:  totalRevenue(groups),
	})
}

// CategoryStat is one order-stats row: how many course purchases landed in a
// category and what they grossed.
type CategoryStat struct {
	Category string  `json:"category" bson:"category"`
	Quantity int64   `json:"quantity" bson:"quantity"`
	Revenue  float64 `json:"revenue" bson:"revenue"`
}

// OrderStats unwinds every purchased course reference, joins it against the
// courses collection, and groups by the joined course's category.
func (h *StatsHandler) OrderStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{
			{Key: "$unwind", Value: "$courses"},
		},
		{
			{
				Key: "$lookup",
				Value: bson.D{
					{Key: "from", Value: "courses"},
					{Key: "localField", Value: "courses"},
					{Key: "foreignField", Value: "_id"},
					{Key: "as", Value: "course"},
				},
			},
		},
		{
			{Key: "$unwind", Value: "$course"},
		},
		{
			{
				Key: "$group",
				Value: bson.D{
					{Key: "_id", Value: "$course.category"},
					{Key: "quantity", Value: bson.D{{Key: "$sum", Value: 1}}},
					{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$course.price"}}},
				},
			},
		},
		{
			{
				Key: "$project",
				Value: bson.D{
					{Key: "_id", Value: 0},
					{Key: "category", Value: "$_id"},
					{Key: "quantity", Value: "$quantity"},
					{Key: "revenue", Value: "$revenue"},
				},
			},
		},
	}

	cursor, err := h.enrollments.Aggregate(ctx, pipeline)
	if err != nil {
		h.logger.Errorw("failed to aggregate order stats", "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	defer cursor.Close(ctx)

	stats := []CategoryStat{}
	if err = cursor.All(ctx, &stats); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
