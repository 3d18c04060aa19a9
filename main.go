package main

import (
	auth "Fulcrum/internal/auth"
	autodesign "Fulcrum/internal/calc/premium/autodesign"
	batch "Fulcrum/internal/calc/premium/batch"
	importer "Fulcrum/internal/calc/premium/importer"
	recommend "Fulcrum/internal/calc/premium/recommend"
	report "Fulcrum/internal/calc/report"
	suspension "Fulcrum/internal/calc/suspension"
	garage "Fulcrum/internal/garage"
	repo "Fulcrum/internal/repo"
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresUserDB(db)
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	garageH := &garage.GarageHandler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/garage", garageH.List).Methods("GET")
	secureApi.HandleFunc("/garage", garageH.Save).Methods("POST")
	secureApi.HandleFunc("/garage/{id:[0-9]+}", garageH.Get).Methods("GET")

	suspensionH := &suspension.Handler{}
	reportH := &report.Handler{}
	batchH := &batch.Handler{}
	recommendH := &recommend.Handler{}
	autodesignH := &autodesign.Handler{}
	importerH := &importer.Handler{}

	secureApi.HandleFunc("/tools/suspension/calc", suspensionH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/suspension/point", suspensionH.Point).Methods("POST")
	secureApi.HandleFunc("/tools/suspension/travel", suspensionH.Travel).Methods("POST")
	secureApi.HandleFunc("/tools/suspension/sag", suspensionH.Sag).Methods("POST")
	secureApi.HandleFunc("/tools/suspension/sweep", suspensionH.Sweep).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	secureApi.HandleFunc("/tools/batch/suspension", batchH.Suspension).Methods("POST")
	secureApi.HandleFunc("/tools/recommend/spring-rate", recommendH.SpringRate).Methods("POST")
	secureApi.HandleFunc("/tools/autodesign/preload", autodesignH.Preload).Methods("POST")
	secureApi.HandleFunc("/tools/import/suspension", importerH.Suspension).Methods("POST")

	authFileServer := http.FileServer(http.Dir("./static/auth"))
	mux.PathPrefix("/auth/").
		Handler(authEnv.RedirectIfLoggedIn(http.StripPrefix("/auth", authFileServer)))
	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	log.Println("Starting server on :443")
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    ":443",
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
