package main

import (
	"log"
	"net/http"
	"os"

	"invitaciones_server/controllers"
	"invitaciones_server/routes"
	"invitaciones_server/services"
	"invitaciones_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize Services
	invitationService := &services.InvitationService{Dynamo: dynamoService}
	templateService := &services.TemplateService{Dynamo: dynamoService}
	draftService := &services.DraftService{Store: &services.DynamoDraftStore{Dynamo: dynamoService}}
	orderService := &services.OrderService{Dynamo: dynamoService}
	userService := &services.UserService{Dynamo: dynamoService}

	paymentBus := services.NewPaymentBus()
	izipayClient := services.NewIzipayClientFromEnv()
	paymentService := services.NewPaymentService(orderService, izipayClient, paymentBus)

	renderService := &services.RenderService{
		Invitations:  invitationService,
		Templates:    templateService,
		Drafts:       draftService,
		SignMediaURL: services.GenerateReadURL,
	}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	r.HandleFunc("/", controllers.WelcomeHandler).Methods("GET")
	r.HandleFunc("/health", controllers.HealthCheckHandler).Methods("GET")

	// Register routes
	routes.RegisterInvitationRoutes(r, invitationService, renderService)
	routes.RegisterTemplateRoutes(r, templateService)
	routes.RegisterDraftRoutes(r, draftService)
	routes.RegisterOrderRoutes(r, orderService)
	routes.RegisterPaymentRoutes(r, paymentService)
	routes.RegisterMediaRoutes(r)
	routes.RegisterUserRoutes(r, userService, invitationService)

	// Socket.IO server for payment status push
	socketServer := socket.NewSocketServer(paymentBus, paymentService)
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	r.Handle("/socket.io/", socketServer)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	err := http.ListenAndServe(":"+port, corsHandler)

	// ListenAndServe only returns on failure; stop the background work
	// before exiting.
	socketServer.Close()
	paymentService.Poller.StopAll()
	log.Fatalf("Server stopped: %v", err)
}
