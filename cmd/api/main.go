package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/prospecta/internal/infra/database"
	"github.com/xavierca1/prospecta/internal/infra/http/handlers"
	"github.com/xavierca1/prospecta/internal/infra/http/middleware"
	"github.com/xavierca1/prospecta/internal/infra/integration/gmail"
	"github.com/xavierca1/prospecta/internal/infra/integration/localgen"
	"github.com/xavierca1/prospecta/internal/infra/integration/openai"
	"github.com/xavierca1/prospecta/internal/infra/mail"
	"github.com/xavierca1/prospecta/internal/infra/queue"
	"github.com/xavierca1/prospecta/internal/infra/worker"
	"github.com/xavierca1/prospecta/internal/usecase"
)

func main() {
	godotenv.Load()

	// Credenciais obrigatórias: sem elas nenhum loop pode rodar,
	// então a falha é na subida e não por ciclo.
	if os.Getenv("DATABASE_URL") == "" {
		log.Fatal("❌ DATABASE_URL não configurada")
	}
	if os.Getenv("GMAIL_ACCESS_TOKEN") == "" {
		log.Fatal("❌ GMAIL_ACCESS_TOKEN não configurado")
	}

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// RabbitMQ é opcional: sem fila perdemos eventos/alertas, nunca
	// os loops de automação.
	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "user"),
		envOr("RABBITMQ_PASS", "password"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Printf("⚠️ RabbitMQ indisponível, eventos desligados: %v", err)
	} else {
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
	}

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	emailRepo := database.NewEmailRepository(db)
	responseRepo := database.NewResponseRepository(db)
	meetingRepo := database.NewMeetingRepository(db)

	// 2. Gateways e Adapters
	transport := gmail.NewClient(os.Getenv("GMAIL_ACCESS_TOKEN"), os.Getenv("GMAIL_API_URL"))

	var generator usecase.DraftGenerator
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		generator = openai.NewClient(key)
	} else {
		log.Println("⚠️ OPENAI_API_KEY ausente, usando gerador de templates local")
		generator = localgen.NewGenerator()
	}

	var notifier *mail.EmailSender
	if os.Getenv("MAIL_HOST") != "" && os.Getenv("OPERATOR_EMAIL") != "" {
		mailPort, _ := strconv.Atoi(envOr("MAIL_PORT", "587"))
		notifier = mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), mailPort,
			os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			os.Getenv("OPERATOR_EMAIL"),
		)
	} else {
		log.Println("⚠️ SMTP não configurado, alertas ao operador desligados")
	}

	var events usecase.EventPublisherInterface
	if rabbitMQ != nil {
		events = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		// 3. Worker de eventos (consome a fila e avisa o operador)
		eventWorker := queue.NewWorker(rabbitMQ.Ch, notifier)
		go eventWorker.Start(queue.QueueName)
	}

	// 4. UseCases
	runCampaignUC := usecase.NewRunCampaignUseCase(leadRepo, emailRepo, generator, transport, events)
	ingestRepliesUC := usecase.NewIngestRepliesUseCase(leadRepo, responseRepo, generator, transport, events)
	followUpsUC := usecase.NewDispatchFollowUpsUseCase(leadRepo, emailRepo, generator, transport, events)
	importLeadsUC := usecase.NewImportLeadsUseCase(leadRepo)

	// 5. Loops periódicos (inbox a cada 30min, follow-up a cada 60min)
	ctx := context.Background()
	replyWorker := worker.NewReplyIngestionWorker(ingestRepliesUC, 30*time.Minute)
	followUpWorker := worker.NewFollowUpWorker(followUpsUC, time.Hour)
	go replyWorker.Start(ctx)
	go followUpWorker.Start(ctx)

	// 6. Handlers
	campaignHandler := handlers.NewCampaignHandler(runCampaignUC)
	leadHandler := handlers.NewLeadHandler(leadRepo, importLeadsUC)
	meetingHandler := handlers.NewMeetingHandler(meetingRepo)
	statsHandler := handlers.NewStatsHandler(leadRepo, emailRepo, responseRepo)

	var rabbitConn *amqp091.Connection
	if rabbitMQ != nil {
		rabbitConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Post("/api/campaign/start", campaignHandler.HandleStart)
	r.Get("/api/leads", leadHandler.HandleList)
	r.Post("/api/leads/preview", leadHandler.HandlePreview)
	r.Post("/api/leads/upload", leadHandler.HandleUpload)
	r.Get("/api/leads/{leadId}/meetings", meetingHandler.HandleListByLead)
	r.Get("/api/stats", statsHandler.Handle)
	r.Get("/api/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + envOr("PORT", "8080")
	log.Printf("🔥 Prospecta rodando na porta %s", port)
	http.ListenAndServe(port, r)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
