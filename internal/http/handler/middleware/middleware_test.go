package middleware_test

import (
	"fliprelay/internal/http/handler/middleware"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("Middleware", func() {
	var (
		seen string
		next http.Handler
		w    *httptest.ResponseRecorder
		req  *http.Request
	)

	BeforeEach(func() {
		seen = ""
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = middleware.RequestID(r.Context())
			w.WriteHeader(http.StatusTeapot)
		})
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/relay/status", nil)
	})

	Describe("RequestID", func() {
		JustBeforeEach(func() {
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)
		})

		It("should generate an id and expose it in context and headers", func() {
			Expect(uuid.Parse(seen)).Error().NotTo(HaveOccurred())
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(seen))
		})

		When("the caller sends a valid id", func() {
			var incoming string

			BeforeEach(func() {
				incoming = uuid.NewString()
				req.Header.Set(middleware.RequestIDHeader, incoming)
			})

			It("should reuse it", func() {
				Expect(seen).To(Equal(incoming))
			})
		})

		When("the caller sends garbage", func() {
			BeforeEach(func() {
				req.Header.Set(middleware.RequestIDHeader, "<script>")
			})

			It("should replace it", func() {
				Expect(seen).NotTo(Equal("<script>"))
				Expect(uuid.Parse(seen)).Error().NotTo(HaveOccurred())
			})
		})
	})

	Describe("Logging", func() {
		var recorded *observer.ObservedLogs

		JustBeforeEach(func() {
			var obsCore zapcore.Core
			obsCore, recorded = observer.New(zapcore.InfoLevel)
			logged := middleware.NewLoggingMiddleware(zap.New(obsCore).Sugar()).Logging(next)
			middleware.NewRequestIDMiddleware().RequestID(logged).ServeHTTP(w, req)
		})

		It("should log the handled request", func() {
			entries := recorded.FilterMessage("request handled").All()
			Expect(entries).To(HaveLen(1))
			fields := entries[0].ContextMap()
			Expect(fields).To(HaveKeyWithValue("method", http.MethodGet))
			Expect(fields).To(HaveKeyWithValue("path", "/relay/status"))
			Expect(fields).To(HaveKeyWithValue("status", BeNumerically("==", http.StatusTeapot)))
			Expect(fields).To(HaveKeyWithValue("request_id", seen))
		})
	})
})
