package servers

import (
	"context"
	"net/http"
	"time"

	"nexo/interfaces"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// WebServer es el servidor HTTP de keep-alive: responde "alive" a
// cualquier monitor externo y sirve /metrics para Prometheus. No tiene
// semántica de aplicación.
type WebServer struct {
	log  interfaces.Logger
	http *http.Server
}

func NewWebServer(addr string, log interfaces.Logger) *WebServer {
	r := mux.NewRouter()
	r.HandleFunc("/", aliveHandler).Methods("GET")
	r.HandleFunc("/health", aliveHandler).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return &WebServer{
		log: log,
		http: &http.Server{
			Addr:    addr,
			Handler: r,
		},
	}
}

func aliveHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("alive"))
}

// Start arranca el servidor en su propia goroutine.
func (s *WebServer) Start() {
	go func() {
		s.log.Info("servidor keep-alive escuchando", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("servidor keep-alive detenido", "error", err)
		}
	}()
}

// Stop apaga el servidor con un timeout corto.
func (s *WebServer) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.http.Shutdown(ctx); err != nil {
		s.log.Error("error apagando el servidor keep-alive", "error", err)
	}
}
