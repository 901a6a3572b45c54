package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"fliprelay/internal/core"
	"fliprelay/internal/http/handler"
	"fliprelay/internal/http/handler/fake"
	"fliprelay/internal/http/handler/middleware"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("RelayHandler", func() {
	var (
		rh          *handler.RelayHandler
		fakeService *fake.RelayService
		mux         http.Handler
		w           *httptest.ResponseRecorder
		req         *http.Request
		fakeErr     error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeService = new(fake.RelayService)

		rh = handler.NewRelayHandler(zap.NewNop().Sugar(), fakeService)

		routes := http.NewServeMux()
		routes.HandleFunc(handler.GetRelayStatus, rh.HandleGetStatus)
		routes.HandleFunc(handler.GetFulfillments, rh.HandleGetFulfillments)
		mux = middleware.NewRequestIDMiddleware().RequestID(routes)

		w = httptest.NewRecorder()
	})

	JustBeforeEach(func() {
		mux.ServeHTTP(w, req)
	})

	Describe("HandleGetStatus", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/relay/status", nil)
			fakeService.StatusReturns(core.RelayStatus{
				Account:    "0x90F8bf6A479f320ead074411a4B0e7944Ea8c9C1",
				Contract:   "0x5FbDB2315678afecb367f032d93F642f64180aa3",
				BalanceWei: "5",
				Received:   3,
				Confirmed:  2,
				Failed:     1,
			}, nil)
		})

		When("the status is available", func() {
			It("should return the relay status", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Header().Get("Content-Type")).To(Equal("application/json"))
				Expect(w.Header().Get(middleware.RequestIDHeader)).NotTo(BeEmpty())

				var status map[string]any
				Expect(json.Unmarshal(w.Body.Bytes(), &status)).To(Succeed())
				Expect(status).To(HaveKeyWithValue("balance_wei", "5"))
				Expect(status).To(HaveKeyWithValue("received", BeNumerically("==", 3)))
				Expect(status).To(HaveKeyWithValue("failed", BeNumerically("==", 1)))
			})
		})

		When("the relay service fails", func() {
			BeforeEach(func() {
				fakeService.StatusReturns(core.RelayStatus{}, fakeErr)
			})

			It("should return 500 without leaking the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				var resp handler.Response
				Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
				Expect(resp.Error).To(Equal("unexpected error occurred"))
			})
		})
	})

	Describe("HandleGetFulfillments", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/relay/fulfillments/0x2a", nil)
			fakeService.FulfillmentsReturns([]core.FulfillmentRecord{
				{ID: "a", RequestID: "42", Status: core.StatusConfirmed, TxHash: "0xabc"},
			}, nil)
		})

		When("fulfillments are journaled", func() {
			It("should query by the decimal request id", func() {
				Expect(fakeService.FulfillmentsCallCount()).To(Equal(1))
				_, requestID := fakeService.FulfillmentsArgsForCall(0)
				Expect(requestID).To(Equal("42"))
			})

			It("should return 200 OK and the fulfillments", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var resp map[string][]core.FulfillmentRecord
				Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
				Expect(resp["fulfillments"]).To(HaveLen(1))
				Expect(resp["fulfillments"][0].TxHash).To(Equal("0xabc"))
			})
		})

		When("the request id is malformed", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodGet, "/relay/fulfillments/not-a-number", nil)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.FulfillmentsCallCount()).To(Equal(0))
			})
		})

		When("nothing was journaled for the request", func() {
			BeforeEach(func() {
				fakeService.FulfillmentsReturns(nil, core.ErrFulfillmentNotFound)
			})

			It("should return 404 Not Found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the journal is disabled", func() {
			BeforeEach(func() {
				fakeService.FulfillmentsReturns(nil, core.ErrJournalDisabled)
			})

			It("should return 503 Service Unavailable", func() {
				Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
			})
		})

		When("the relay service fails", func() {
			BeforeEach(func() {
				fakeService.FulfillmentsReturns(nil, fakeErr)
			})

			It("should return 500 Internal Server Error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})
})
