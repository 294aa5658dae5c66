package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"txmerge/internal/address"
	"txmerge/internal/core"
	"txmerge/internal/http/handler"
	"txmerge/internal/http/handler/fake"
	"txmerge/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

const (
	testHash   = "0x88df016429689c079f3b2f6ad39fa052532c56795b733da78a91ebe6a713944b"
	testSender = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
)

var _ = Describe("TransactionHandler", func() {
	var (
		th            *handler.TransactionHandler
		fakeService   *fake.TransactionService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		coin          core.Coin
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		coin = core.Coin{Index: 60, Symbol: "ETH", Name: "Ethereum"}
		fakeService = new(fake.TransactionService)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = payload.Decoder{}.DecodeJSONPayload

		w = httptest.NewRecorder()
		th = handler.NewTransactionHandler(fakeLogger, fakeValidator, fakeService, address.NewRule(), coin)
	})

	Describe("HandlePostPending", func() {
		var body string

		BeforeEach(func() {
			body = fmt.Sprintf(`{"coin":{"index":1,"symbol":"MOAC","name":"MOAC"},"transaction":{"hash":%q,"from":%q,"nonce":"0x1"}}`,
				testHash, testSender)
			fakeService.UpdatePendingReturns(core.Transaction{ID: testHash, From: testSender, Nonce: 1, State: core.StatePending}, nil)
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest("POST", "/pending", strings.NewReader(body))
			th.HandlePostPending(w, req)
		})

		When("the payload is valid", func() {
			It("returns the merged transaction", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]core.Transaction
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["transaction"].ID).To(Equal(testHash))
				Expect(response["transaction"].State).To(Equal(core.StatePending))
			})

			It("passes the raw object and request coin to the service", func() {
				Expect(fakeService.UpdatePendingCallCount()).To(Equal(1))
				_, raw, argCoin := fakeService.UpdatePendingArgsForCall(0)
				Expect(raw).To(HaveKeyWithValue("hash", testHash))
				Expect(raw).To(HaveKeyWithValue("nonce", "0x1"))
				Expect(argCoin).To(Equal(core.Coin{Index: 1, Symbol: "MOAC", Name: "MOAC"}))
			})
		})

		When("the payload has no transaction", func() {
			BeforeEach(func() {
				body = `{"coin":{"symbol":"ETH"}}`
			})

			It("returns 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.UpdatePendingCallCount()).To(Equal(0))
			})
		})

		When("the payload is malformed", func() {
			BeforeEach(func() {
				body = `{"coin":`
			})

			It("returns 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("invalid request payload"))
			})
		})

		When("the sender is invalid", func() {
			BeforeEach(func() {
				fakeService.UpdatePendingReturns(core.Transaction{}, fmt.Errorf("merge pending transaction: %w", core.ErrInvalidSender))
			})

			It("returns 422 Unprocessable Entity", func() {
				Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrInvalidSender.Error()))
			})
		})

		When("the hash is missing", func() {
			BeforeEach(func() {
				fakeService.UpdatePendingReturns(core.Transaction{}, core.ErrMissingHash)
			})

			It("returns 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the service fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.UpdatePendingReturns(core.Transaction{}, fakeErr)
			})

			It("returns 500 without leaking the cause", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring("unexpected error occurred"))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleRefreshTransaction", func() {
		var hash string

		BeforeEach(func() {
			hash = testHash
			fakeService.RefreshReturns(core.Transaction{ID: testHash}, nil)
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest("POST", "/transactions/"+hash+"/refresh", nil)
			req.SetPathValue("hash", hash)
			th.HandleRefreshTransaction(w, req)
		})

		It("refreshes with the configured coin", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(fakeService.RefreshCallCount()).To(Equal(1))
			_, argHash, argCoin := fakeService.RefreshArgsForCall(0)
			Expect(argHash).To(Equal(testHash))
			Expect(argCoin).To(Equal(coin))
		})

		When("the hash is malformed", func() {
			BeforeEach(func() {
				hash = "0x12"
			})

			It("returns 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.RefreshCallCount()).To(Equal(0))
			})
		})

		When("the node does not know the hash", func() {
			BeforeEach(func() {
				fakeService.RefreshReturns(core.Transaction{}, fmt.Errorf("%w: %s", core.ErrTransactionNotFound, testHash))
			})

			It("returns 404 Not Found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleRefreshTransactions", func() {
		var body string

		BeforeEach(func() {
			body = fmt.Sprintf(`{"hashes":[%q]}`, testHash)
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest("POST", "/transactions/refresh", strings.NewReader(body))
			th.HandleRefreshTransactions(w, req)
		})

		When("every hash is refreshed", func() {
			BeforeEach(func() {
				fakeService.RefreshAllReturns([]core.Transaction{{ID: testHash}}, nil)
			})

			It("returns the transactions", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response handler.Response
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response.Error).To(BeEmpty())
				Expect(response.Data).To(HaveLen(1))
			})
		})

		When("some hashes fail", func() {
			BeforeEach(func() {
				fakeService.RefreshAllReturns([]core.Transaction{{ID: testHash}}, fakeErr)
			})

			It("returns the refreshed ones with the error", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(testHash))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
			})
		})

		When("every hash fails", func() {
			BeforeEach(func() {
				fakeService.RefreshAllReturns(nil, fakeErr)
			})

			It("returns 500 Internal Server Error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})

		When("no hashes are sent", func() {
			BeforeEach(func() {
				body = `{"hashes":[]}`
			})

			It("returns 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.RefreshAllCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleGetTransaction", func() {
		JustBeforeEach(func() {
			req = httptest.NewRequest("GET", "/transactions/"+testHash, nil)
			req.SetPathValue("hash", testHash)
			th.HandleGetTransaction(w, req)
		})

		When("the transaction is stored", func() {
			BeforeEach(func() {
				fakeService.GetTransactionReturns(core.Transaction{ID: testHash, Operations: []core.Operation{{Type: "transfer"}}}, nil)
			})

			It("returns it", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("transfer"))
				_, id := fakeService.GetTransactionArgsForCall(0)
				Expect(id).To(Equal(testHash))
			})
		})

		When("the transaction is unknown", func() {
			BeforeEach(func() {
				fakeService.GetTransactionReturns(core.Transaction{}, core.ErrTransactionNotFound)
			})

			It("returns 404 Not Found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleValidateAddress", func() {
		var (
			candidate string
			response  map[string]any
		)

		JustBeforeEach(func() {
			req = httptest.NewRequest("GET", "/addresses/"+candidate, nil)
			req.SetPathValue("address", candidate)
			th.HandleValidateAddress(w, req)
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		})

		When("the address is lower case", func() {
			BeforeEach(func() {
				candidate = strings.ToLower(testSender)
			})

			It("reports it valid in checksummed form", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(response).To(HaveKeyWithValue("valid", true))
				Expect(response).To(HaveKeyWithValue("address", testSender))
				Expect(response).NotTo(HaveKey("error"))
			})
		})

		When("the address is too short", func() {
			BeforeEach(func() {
				candidate = "0x1234"
			})

			It("reports the rule message", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(response).To(HaveKeyWithValue("valid", false))
				Expect(response).To(HaveKeyWithValue("error", address.DefaultMessage))
			})
		})

		When("the rule carries a configured message", func() {
			BeforeEach(func() {
				th = handler.NewTransactionHandler(fakeLogger, fakeValidator, fakeService, address.NewRule().Error("Bad sender"), coin)
				candidate = ""
			})

			It("reports that message for the address field", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(response).To(HaveKeyWithValue("valid", false))
				Expect(response).To(HaveKeyWithValue("error", "Bad sender"))
			})
		})
	})
})
