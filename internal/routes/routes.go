package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/henryjobel/evi-learnig-server-site/internal/config"
	"github.com/henryjobel/evi-learnig-server-site/internal/handlers"
	"github.com/henryjobel/evi-learnig-server-site/internal/middleware"
	"github.com/henryjobel/evi-learnig-server-site/internal/payments"
	"github.com/henryjobel/evi-learnig-server-site/internal/utils"
)

func SetupRouter(client *mongo.Client, cfg config.Config, logger *zap.SugaredLogger) *mux.Router {
	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("evoLearn server is running"))
	}).Methods("GET")

	secret := []byte(cfg.TokenSecret)
	protect := middleware.VerifyToken(secret, logger)
	mailer := utils.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	authHandler := handlers.NewAuthHandler(secret, cfg.Production, logger)
	userHandler := handlers.NewUserHandler(client, cfg.DatabaseName, mailer, logger)
	courseHandler := handlers.NewCourseHandler(client, cfg.DatabaseName, logger)
	feedbackHandler := handlers.NewFeedbackHandler(client, cfg.DatabaseName)
	paymentHandler := handlers.NewPaymentHandler(client, cfg.DatabaseName, payments.NewClient(cfg.StripeSecretKey), logger)
	statsHandler := handlers.NewStatsHandler(client, cfg.DatabaseName, logger)

	// auth
	router.HandleFunc("/jwt", authHandler.IssueToken).Methods("POST")
	router.HandleFunc("/logout", authHandler.Logout).Methods("GET")

	// users
	router.HandleFunc("/users/update/{email}", protectFunc(protect, userHandler.UpdateUser)).Methods("PUT")
	router.HandleFunc("/users/{email}", userHandler.UpsertUser).Methods("PUT")
	router.HandleFunc("/users", protectFunc(protect, userHandler.GetUsers)).Methods("GET")
	router.HandleFunc("/user/{email}", userHandler.GetUser).Methods("GET")

	// courses
	router.HandleFunc("/courses", courseHandler.GetCourses).Methods("GET")
	router.HandleFunc("/courses", protectFunc(protect, courseHandler.CreateCourse)).Methods("POST")
	router.HandleFunc("/courses/{id}", courseHandler.GetCourseByID).Methods("GET")
	router.HandleFunc("/course/{email}", courseHandler.GetCoursesByTeacher).Methods("GET")

	// feedback
	router.HandleFunc("/feedback", feedbackHandler.GetFeedback).Methods("GET")

	// payments
	router.HandleFunc("/create-payment-intent", protectFunc(protect, paymentHandler.CreatePaymentIntent)).Methods("POST")
	router.HandleFunc("/payments", protectFunc(protect, paymentHandler.CreateEnrollment)).Methods("POST")
	router.HandleFunc("/payments", protectFunc(protect, paymentHandler.GetEnrollments)).Methods("GET")

	// stats
	router.HandleFunc("/admin-stats", statsHandler.AdminStats).Methods("GET")
	router.HandleFunc("/order-stats", statsHandler.OrderStats).Methods("GET")

	return router
}

func protectFunc(guard func(http.Handler) http.Handler, handler http.HandlerFunc) http.HandlerFunc {
	return guard(handler).ServeHTTP
}
