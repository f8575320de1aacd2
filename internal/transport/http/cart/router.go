package cart

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/domain/services"
	"github.com/murkotick/storefront-cart-service/internal/app/cart/dto"
)

// UserHeader carries the visitor identity on every request.
const UserHeader = "X-User-ID"

const apiPrefix = "/api/v1"

// CartAPI is the application surface the HTTP handlers delegate to.
type CartAPI interface {
	GetCart(ctx context.Context, userID domain.UserID) []domain.CartLine
	AddToCart(ctx context.Context, userID domain.UserID, snapshot domain.ProductSnapshot) ([]domain.CartLine, error)
	SetQuantity(ctx context.Context, userID domain.UserID, productID domain.ProductID, quantity int) ([]domain.CartLine, error)
	RemoveFromCart(ctx context.Context, userID domain.UserID, productID domain.ProductID) ([]domain.CartLine, error)
	Checkout(ctx context.Context, userID domain.UserID) (*dto.Receipt, error)
	Quote(lines []domain.CartLine) (*services.Quote, error)
}

type server struct {
	api CartAPI
	log logrus.FieldLogger
}

func Router(api CartAPI, log logrus.FieldLogger) http.Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	srv := &server{api: api, log: log}

	r := mux.NewRouter()
	r.Use(otelmux.Middleware("cartservice-http"))

	r.HandleFunc(apiPrefix+"/cart", srv.getCart).Methods(http.MethodGet)
	r.HandleFunc(apiPrefix+"/cart/items", srv.addToCart).Methods(http.MethodPost)
	r.HandleFunc(apiPrefix+"/cart/items/{productID}", srv.setQuantity).Methods(http.MethodPut)
	r.HandleFunc(apiPrefix+"/cart/items/{productID}", srv.removeFromCart).Methods(http.MethodDelete)
	r.HandleFunc(apiPrefix+"/checkout", srv.checkout).Methods(http.MethodPost)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	return logMiddleware(log, r)
}

func userOf(r *http.Request) domain.UserID {
	return domain.UserID(strings.TrimSpace(r.Header.Get(UserHeader)))
}

func (s *server) getCart(w http.ResponseWriter, r *http.Request) {
	userID := userOf(r)
	s.writeCart(w, userID, s.api.GetCart(r.Context(), userID))
}

func (s *server) addToCart(w http.ResponseWriter, r *http.Request) {
	var body productJSON
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(string(body.ProductID)) == "" {
		s.writeError(w, http.StatusBadRequest, errors.New("product_id is required"))
		return
	}

	userID := userOf(r)
	lines, err := s.api.AddToCart(r.Context(), userID, body.snapshot())
	if err != nil {
		s.writeError(w, statusOf(err), err)
		return
	}
	s.writeCart(w, userID, lines)
}

func (s *server) setQuantity(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Quantity *int `json:"quantity"`
	}
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if body.Quantity == nil {
		s.writeError(w, http.StatusBadRequest, errors.New("quantity is required"))
		return
	}

	userID := userOf(r)
	productID := domain.ProductID(mux.Vars(r)["productID"])
	lines, err := s.api.SetQuantity(r.Context(), userID, productID, *body.Quantity)
	if err != nil {
		s.writeError(w, statusOf(err), err)
		return
	}
	s.writeCart(w, userID, lines)
}

func (s *server) removeFromCart(w http.ResponseWriter, r *http.Request) {
	userID := userOf(r)
	productID := domain.ProductID(mux.Vars(r)["productID"])
	lines, err := s.api.RemoveFromCart(r.Context(), userID, productID)
	if err != nil {
		s.writeError(w, statusOf(err), err)
		return
	}
	s.writeCart(w, userID, lines)
}

func (s *server) checkout(w http.ResponseWriter, r *http.Request) {
	receipt, err := s.api.Checkout(r.Context(), userOf(r))
	if err != nil {
		s.writeError(w, statusOf(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, newReceiptJSON(receipt))
}

func (s *server) writeCart(w http.ResponseWriter, userID domain.UserID, lines []domain.CartLine) {
	quote, err := s.api.Quote(lines)
	s.writeJSON(w, http.StatusOK, newCartJSON(userID, lines, quote, err))
}

func (s *server) writeError(w http.ResponseWriter, code int, err error) {
	s.writeJSON(w, code, errorJSON{Error: err.Error()})
}

func (s *server) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(b); err != nil {
		s.log.WithField("err", err).Error("write response body")
	}
}

func decodeBody(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	if err := dec.Decode(v); err != nil {
		return errors.New("request body must be a JSON object: " + err.Error())
	}
	return nil
}

// statusOf maps domain errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrNoUser):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrStorageWrite), errors.Is(err, domain.ErrStorageRead):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrEmptyProductID),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrDuplicateLine):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logMiddleware(log logrus.FieldLogger, h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		h.ServeHTTP(rec, r)
		log.WithFields(logrus.Fields{
			"method":     r.Method,
			"url":        r.URL.String(),
			"remoteAddr": r.RemoteAddr,
			"userAgent":  r.UserAgent(),
			"status":     rec.status,
			"duration":   time.Since(start).String(),
		}).Info("handled request")
	})
}
