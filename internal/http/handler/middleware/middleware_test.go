package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"txmerge/internal/http/handler/middleware"
	"txmerge/internal/http/handler/middleware/fake"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var _ = Describe("Middleware", func() {
	var (
		w          *httptest.ResponseRecorder
		req        *http.Request
		nextCalled bool
		seenID     string
		next       http.Handler
	)

	BeforeEach(func() {
		w = httptest.NewRecorder()
		req = httptest.NewRequest("POST", "/pending", nil)
		nextCalled = false
		seenID = ""
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
			seenID, _ = r.Context().Value(middleware.RequestIDKey).(string)
			w.WriteHeader(http.StatusTeapot)
		})
	})

	Describe("RequestID", func() {
		It("generates an id when none is sent", func() {
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

			Expect(nextCalled).To(BeTrue())
			Expect(uuid.Validate(seenID)).To(Succeed())
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(seenID))
		})

		It("reuses the client id", func() {
			req.Header.Set(middleware.RequestIDHeader, "abc")
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

			Expect(seenID).To(Equal("abc"))
		})
	})

	Describe("Logging", func() {
		It("passes the request through", func() {
			middleware.NewLoggingMiddleware(zap.NewNop().Sugar()).Logging(next).ServeHTTP(w, req)

			Expect(nextCalled).To(BeTrue())
			Expect(w.Code).To(Equal(http.StatusTeapot))
		})
	})

	Describe("Auth", func() {
		var (
			fakeValidator *fake.TokenValidator
			auth          *middleware.AuthMiddleware
		)

		BeforeEach(func() {
			fakeValidator = new(fake.TokenValidator)
			fakeValidator.ValidateReturns(jwt.MapClaims{"sub": "ops"}, nil)
			auth = middleware.NewAuthMiddleware(zap.NewNop().Sugar(), fakeValidator)
		})

		JustBeforeEach(func() {
			auth.Authenticate(next).ServeHTTP(w, req)
		})

		When("a valid bearer token is sent", func() {
			BeforeEach(func() {
				req.Header.Set("Authorization", "Bearer token-value")
			})

			It("calls the next handler", func() {
				Expect(nextCalled).To(BeTrue())
				Expect(fakeValidator.ValidateCallCount()).To(Equal(1))
				Expect(fakeValidator.ValidateArgsForCall(0)).To(Equal("token-value"))
			})
		})

		When("no token is sent", func() {
			It("returns 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(nextCalled).To(BeFalse())
				Expect(fakeValidator.ValidateCallCount()).To(Equal(0))
			})
		})

		When("the scheme is not bearer", func() {
			BeforeEach(func() {
				req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
			})

			It("returns 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(nextCalled).To(BeFalse())
			})
		})

		When("the token is rejected", func() {
			BeforeEach(func() {
				req.Header.Set("Authorization", "Bearer token-value")
				fakeValidator.ValidateReturns(nil, errors.New("token expired"))
			})

			It("returns 401 Unauthorized with the reason", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring("token expired"))
				Expect(nextCalled).To(BeFalse())
			})
		})
	})
})

var _ = Describe("TracingMiddleware", func() {
	var (
		recorder *tracetest.SpanRecorder
		w        *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		recorder = tracetest.NewSpanRecorder()
		tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
		prevProvider := otel.GetTracerProvider()
		prevPropagator := otel.GetTextMapPropagator()
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagation.TraceContext{})
		DeferCleanup(func() {
			otel.SetTracerProvider(prevProvider)
			otel.SetTextMapPropagator(prevPropagator)
		})
		w = httptest.NewRecorder()
	})

	It("records a server span continuing the caller's trace", func() {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		req := httptest.NewRequest("GET", "/transactions/0x1", nil)
		req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")

		middleware.NewTracingMiddleware().Tracing(next).ServeHTTP(w, req)

		spans := recorder.Ended()
		Expect(spans).To(HaveLen(1))
		Expect(spans[0].Name()).To(Equal("GET /transactions/0x1"))
		Expect(spans[0].SpanKind()).To(Equal(trace.SpanKindServer))
		Expect(spans[0].Parent().TraceID().String()).To(Equal("4bf92f3577b34da6a3ce929d0e0e4736"))
		Expect(spans[0].Status().Code).To(Equal(codes.Error))
	})
})
