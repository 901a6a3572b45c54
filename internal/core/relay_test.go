package core_test

import (
	"context"
	"errors"
	"fliprelay/internal/core"
	"fliprelay/internal/core/fake"
	"fliprelay/internal/ethereum"
	"fliprelay/internal/repository"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("Relay", func() {
	var (
		fakeChain *fake.ChainService
		fakeRepo  *fake.Repository
		recorded  *observer.ObservedLogs
		logger    *zap.SugaredLogger
		ctx       context.Context

		relay *core.Relay

		fakeErr error
	)

	BeforeEach(func() {
		fakeChain = new(fake.ChainService)
		fakeRepo = new(fake.Repository)

		var obsCore zapcore.Core
		obsCore, recorded = observer.New(zapcore.DebugLevel)
		logger = zap.New(obsCore).Sugar()
		ctx = context.Background()

		fakeChain.AccountReturns(account)
		fakeChain.AddressReturns(contract)
		fakeChain.BalanceReturns(big.NewInt(1e18), nil)
		fakeChain.SubmitFulfillmentStub = func(_ context.Context, f ethereum.Fulfillment) (*types.Transaction, error) {
			return fulfillmentTx(f.RequestID.Uint64()), nil
		}
		fakeChain.WaitConfirmedStub = func(_ context.Context, tx *types.Transaction) (ethereum.Confirmation, error) {
			return ethereum.Confirmation{TxHash: tx.Hash(), BlockNumber: 200, GasUsed: 51234}, nil
		}

		fakeErr = errors.New("fake error")
	})

	JustBeforeEach(func() {
		relay = core.NewRelay(logger, fakeChain, fakeRepo)
	})

	Describe("CheckBalance", func() {
		var err error

		JustBeforeEach(func() {
			err = relay.CheckBalance(ctx)
		})

		It("should log the account and its balance", func() {
			Expect(err).NotTo(HaveOccurred())
			entries := recorded.FilterMessage("account balance").All()
			Expect(entries).To(HaveLen(1))
			fields := entries[0].ContextMap()
			Expect(fields).To(HaveKeyWithValue("account", account.Hex()))
			Expect(fields).To(HaveKeyWithValue("balance_wei", "1000000000000000000"))
			Expect(fields).To(HaveKeyWithValue("balance_eth", "1"))
			Expect(recorded.FilterLevelExact(zapcore.WarnLevel).Len()).To(Equal(0))
		})

		When("the account is empty", func() {
			BeforeEach(func() {
				fakeChain.BalanceReturns(big.NewInt(0), nil)
			})

			It("should warn without failing", func() {
				Expect(err).NotTo(HaveOccurred())
				warnings := recorded.FilterLevelExact(zapcore.WarnLevel).All()
				Expect(warnings).To(HaveLen(1))
				Expect(warnings[0].ContextMap()).To(HaveKeyWithValue("account", account.Hex()))
			})
		})

		When("the balance cannot be read", func() {
			BeforeEach(func() {
				fakeChain.BalanceReturns(nil, fakeErr)
			})

			It("should return a wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).To(MatchError(ContainSubstring("check account balance")))
			})
		})
	})

	Describe("Serve", func() {
		var (
			cancel context.CancelFunc
			done   chan error
		)

		JustBeforeEach(func() {
			var runCtx context.Context
			runCtx, cancel = context.WithCancel(ctx)
			DeferCleanup(cancel)

			done = make(chan error, 1)
			go func() {
				done <- relay.Serve(runCtx)
			}()
		})

		When("the account is empty", func() {
			BeforeEach(func() {
				fakeChain.BalanceReturns(big.NewInt(0), nil)
				fakeChain.WatchFlipRequestsStub = feed()
			})

			It("should still register the listener", func() {
				Eventually(fakeChain.WatchFlipRequestsCallCount).Should(Equal(1))
				Expect(recorded.FilterLevelExact(zapcore.WarnLevel).Len()).To(Equal(1))

				cancel()
				Eventually(done).Should(Receive(BeNil()))
			})
		})

		When("the balance check fails", func() {
			BeforeEach(func() {
				fakeChain.BalanceReturns(nil, fakeErr)
			})

			It("should fail before registering the listener", func() {
				Eventually(done).Should(Receive(MatchError(fakeErr)))
				Expect(fakeChain.WatchFlipRequestsCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleFlipRequest", func() {
		var req *ethereum.FlipRequest

		BeforeEach(func() {
			req = flipRequest(42)
		})

		JustBeforeEach(func() {
			relay.HandleFlipRequest(ctx, req)
		})

		It("should submit the request id with a random value and the fixed gas limit", func() {
			Expect(fakeChain.SubmitFulfillmentCallCount()).To(Equal(1))
			_, fulfillment := fakeChain.SubmitFulfillmentArgsForCall(0)
			Expect(fulfillment.RequestID).To(Equal(big.NewInt(42)))
			Expect(fulfillment.RandomValue).NotTo(BeNil())
			Expect(fulfillment.RandomValue.Sign()).To(Equal(1))
			Expect(fulfillment.RandomValue.BitLen()).To(BeNumerically("<=", 256))
			Expect(fulfillment.GasLimit).To(Equal(uint64(300000)))
		})

		It("should wait for the submitted transaction", func() {
			Expect(fakeChain.WaitConfirmedCallCount()).To(Equal(1))
			_, tx := fakeChain.WaitConfirmedArgsForCall(0)
			Expect(tx.Hash()).To(Equal(fulfillmentTx(42).Hash()))
		})

		It("should log the lifecycle with the request id", func() {
			for _, msg := range []string{
				"flip request received",
				"random value generated",
				"fulfillment submitted",
				"fulfillment confirmed",
			} {
				entries := recorded.FilterMessage(msg).All()
				Expect(entries).To(HaveLen(1), msg)
				Expect(entries[0].ContextMap()).To(HaveKeyWithValue("request_id", "42"), msg)
				Expect(entries[0].ContextMap()).To(HaveKey("fulfillment_id"), msg)
			}

			received := recorded.FilterMessage("flip request received").All()[0]
			Expect(received.ContextMap()).To(HaveKeyWithValue("log_index", BeNumerically("==", 2)))

			submitted := recorded.FilterMessage("fulfillment submitted").All()[0]
			Expect(submitted.ContextMap()).To(HaveKeyWithValue("tx_hash", fulfillmentTx(42).Hash().Hex()))
		})

		It("should journal a confirmed attempt", func() {
			Expect(fakeRepo.SaveFulfillmentCallCount()).To(Equal(1))
			_, record := fakeRepo.SaveFulfillmentArgsForCall(0)
			_, fulfillment := fakeChain.SubmitFulfillmentArgsForCall(0)
			Expect(record.ID).NotTo(BeEmpty())
			Expect(record.RequestID).To(Equal("42"))
			Expect(record.Player).To(Equal(player.Hex()))
			Expect(record.ChoseHeads).To(BeTrue())
			Expect(record.RandomValue).To(Equal(fulfillment.RandomValue.String()))
			Expect(record.TxHash).To(Equal(fulfillmentTx(42).Hash().Hex()))
			Expect(record.Status).To(Equal(core.StatusConfirmed))
			Expect(record.BlockNumber).To(Equal(uint64(200)))
			Expect(record.Reason).To(BeEmpty())
			Expect(record.CompletedAt).NotTo(BeTemporally("<", record.StartedAt))
		})

		It("should refresh the account balance after confirmation", func() {
			Expect(fakeChain.BalanceCallCount()).To(Equal(1))
		})

		When("the submission fails", func() {
			BeforeEach(func() {
				fakeChain.SubmitFulfillmentStub = nil
				fakeChain.SubmitFulfillmentReturns(nil, errors.New("insufficient funds for gas * price + value"))
			})

			It("should log the failure with the request id and reason", func() {
				entries := recorded.FilterMessage("fulfillment failed").All()
				Expect(entries).To(HaveLen(1))
				Expect(entries[0].Level).To(Equal(zapcore.ErrorLevel))
				fields := entries[0].ContextMap()
				Expect(fields).To(HaveKeyWithValue("request_id", "42"))
				Expect(fields["reason"]).To(ContainSubstring("insufficient funds"))
			})

			It("should not wait for a receipt", func() {
				Expect(fakeChain.WaitConfirmedCallCount()).To(Equal(0))
				Expect(fakeChain.BalanceCallCount()).To(Equal(0))
			})

			It("should journal a failed attempt", func() {
				Expect(fakeRepo.SaveFulfillmentCallCount()).To(Equal(1))
				_, record := fakeRepo.SaveFulfillmentArgsForCall(0)
				Expect(record.Status).To(Equal(core.StatusFailed))
				Expect(record.TxHash).To(BeEmpty())
				Expect(record.Reason).To(ContainSubstring("insufficient funds"))
			})
		})

		When("the transaction reverts", func() {
			BeforeEach(func() {
				fakeChain.WaitConfirmedStub = nil
				fakeChain.WaitConfirmedReturns(ethereum.Confirmation{}, ethereum.ErrTransactionReverted)
			})

			It("should record the submitted hash as failed", func() {
				_, record := fakeRepo.SaveFulfillmentArgsForCall(0)
				Expect(record.Status).To(Equal(core.StatusFailed))
				Expect(record.TxHash).To(Equal(fulfillmentTx(42).Hash().Hex()))
				Expect(record.Reason).To(ContainSubstring(ethereum.ErrTransactionReverted.Error()))
			})
		})

		When("the entropy source fails", func() {
			BeforeEach(func() {
				core.Entropy = failingReader{err: fakeErr}
				DeferCleanup(func() {
					core.Entropy = cryptoReader
				})
			})

			It("should not submit anything", func() {
				Expect(fakeChain.SubmitFulfillmentCallCount()).To(Equal(0))
				Expect(recorded.FilterMessage("fulfillment failed").Len()).To(Equal(1))
			})
		})

		When("the chain service panics", func() {
			BeforeEach(func() {
				fakeChain.SubmitFulfillmentStub = func(context.Context, ethereum.Fulfillment) (*types.Transaction, error) {
					panic("nonce manager exploded")
				}
			})

			It("should recover and record the failure", func() {
				Expect(recorded.FilterMessage("fulfillment handler panicked").Len()).To(Equal(1))
				_, record := fakeRepo.SaveFulfillmentArgsForCall(0)
				Expect(record.Status).To(Equal(core.StatusFailed))
				Expect(record.Reason).To(ContainSubstring("nonce manager exploded"))
			})
		})

		When("the journal write fails", func() {
			BeforeEach(func() {
				fakeRepo.SaveFulfillmentReturns(fakeErr)
			})

			It("should only warn", func() {
				warnings := recorded.FilterMessage("failed to journal fulfillment").All()
				Expect(warnings).To(HaveLen(1))
				Expect(warnings[0].Level).To(Equal(zapcore.WarnLevel))
				Expect(recorded.FilterMessage("fulfillment confirmed").Len()).To(Equal(1))
			})
		})

		When("the journal panics", func() {
			BeforeEach(func() {
				fakeRepo.SaveFulfillmentStub = func(context.Context, repository.Fulfillment) error {
					panic("driver bug")
				}
			})

			It("should contain the panic and settle the counters", func() {
				entries := recorded.FilterMessage("fulfillment bookkeeping panicked").All()
				Expect(entries).To(HaveLen(1))
				Expect(entries[0].ContextMap()).To(HaveKeyWithValue("request_id", "42"))

				status, err := relay.Status(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(status.InFlight).To(BeZero())
				Expect(status.Confirmed).To(Equal(uint64(1)))
			})

			It("should not stop later requests", func() {
				relay.HandleFlipRequest(ctx, flipRequest(43))
				Expect(fakeChain.SubmitFulfillmentCallCount()).To(Equal(2))
				Expect(recorded.FilterMessage("fulfillment bookkeeping panicked").Len()).To(Equal(2))
			})
		})

		When("the same request id is handled twice", func() {
			JustBeforeEach(func() {
				relay.HandleFlipRequest(ctx, req)
			})

			It("should submit both with fresh random values", func() {
				Expect(fakeChain.SubmitFulfillmentCallCount()).To(Equal(2))
				_, first := fakeChain.SubmitFulfillmentArgsForCall(0)
				_, second := fakeChain.SubmitFulfillmentArgsForCall(1)
				Expect(first.RequestID).To(Equal(second.RequestID))
				Expect(first.RandomValue).NotTo(Equal(second.RandomValue))
			})
		})
	})

	Describe("Run", func() {
		var (
			cancel context.CancelFunc
			done   chan error
		)

		JustBeforeEach(func() {
			var runCtx context.Context
			runCtx, cancel = context.WithCancel(ctx)
			DeferCleanup(cancel)

			done = make(chan error, 1)
			go func() {
				done <- relay.Run(runCtx)
			}()
		})

		When("the first of two requests fails", func() {
			BeforeEach(func() {
				fakeChain.WatchFlipRequestsStub = feed(flipRequest(1), flipRequest(2))
				fakeChain.SubmitFulfillmentStub = func(_ context.Context, f ethereum.Fulfillment) (*types.Transaction, error) {
					if f.RequestID.Int64() == 1 {
						return nil, fakeErr
					}
					return fulfillmentTx(f.RequestID.Uint64()), nil
				}
			})

			It("should still fulfill the second", func() {
				Eventually(fakeRepo.SaveFulfillmentCallCount).Should(Equal(2))

				cancel()
				Eventually(done).Should(Receive(BeNil()))
				relay.Wait()

				Expect(fakeChain.SubmitFulfillmentCallCount()).To(Equal(2))
				Expect(fakeChain.WaitConfirmedCallCount()).To(Equal(1))

				statuses := map[string]string{}
				for i := 0; i < fakeRepo.SaveFulfillmentCallCount(); i++ {
					_, record := fakeRepo.SaveFulfillmentArgsForCall(i)
					statuses[record.RequestID] = record.Status
				}
				Expect(statuses).To(Equal(map[string]string{
					"1": core.StatusFailed,
					"2": core.StatusConfirmed,
				}))

				_, first := fakeChain.SubmitFulfillmentArgsForCall(0)
				_, second := fakeChain.SubmitFulfillmentArgsForCall(1)
				Expect(first.RequestID).NotTo(Equal(second.RequestID))
				Expect(first.RandomValue).NotTo(Equal(second.RandomValue))

				failed := recorded.FilterMessage("fulfillment failed").All()
				Expect(failed).To(HaveLen(1))
				Expect(failed[0].ContextMap()).To(HaveKeyWithValue("request_id", "1"))
			})

			It("should use the fixed gas limit for every submission", func() {
				Eventually(fakeChain.SubmitFulfillmentCallCount).Should(Equal(2))
				cancel()
				relay.Wait()

				for i := 0; i < 2; i++ {
					_, fulfillment := fakeChain.SubmitFulfillmentArgsForCall(i)
					Expect(fulfillment.GasLimit).To(Equal(core.FulfillmentGasLimit))
				}
			})
		})

		When("the context is cancelled while a handler waits", func() {
			var release chan struct{}

			BeforeEach(func() {
				release = make(chan struct{})
				fakeChain.WatchFlipRequestsStub = feed(flipRequest(7))
				fakeChain.WaitConfirmedStub = func(waitCtx context.Context, tx *types.Transaction) (ethereum.Confirmation, error) {
					<-release
					if waitCtx.Err() != nil {
						return ethereum.Confirmation{}, waitCtx.Err()
					}
					return ethereum.Confirmation{TxHash: tx.Hash(), BlockNumber: 201}, nil
				}
			})

			It("should let the handler finish", func() {
				Eventually(fakeChain.WaitConfirmedCallCount).Should(Equal(1))

				cancel()
				Eventually(done).Should(Receive(BeNil()))

				close(release)
				relay.Wait()

				_, record := fakeRepo.SaveFulfillmentArgsForCall(0)
				Expect(record.Status).To(Equal(core.StatusConfirmed))
			})
		})

		When("the listener cannot be registered", func() {
			BeforeEach(func() {
				fakeChain.WatchFlipRequestsReturns(nil, fakeErr)
			})

			It("should return an error", func() {
				Eventually(done).Should(Receive(MatchError(ContainSubstring("register flip request listener"))))
			})
		})

		When("the listener terminates", func() {
			BeforeEach(func() {
				fakeChain.WatchFlipRequestsStub = func(context.Context, chan<- *ethereum.FlipRequest) (event.Subscription, error) {
					return event.NewSubscription(func(<-chan struct{}) error {
						return fakeErr
					}), nil
				}
			})

			It("should return the listener error", func() {
				Eventually(done).Should(Receive(MatchError(fakeErr)))
			})
		})
	})

	Describe("Status", func() {
		var (
			status core.RelayStatus
			err    error
		)

		JustBeforeEach(func() {
			relay.HandleFlipRequest(ctx, flipRequest(3))
			status, err = relay.Status(ctx)
		})

		It("should report the account and counters", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(core.RelayStatus{
				Account:    account.Hex(),
				Contract:   contract.Hex(),
				BalanceWei: "1000000000000000000",
				Received:   1,
				Confirmed:  1,
			}))
		})

		It("should serve the balance observed after the fulfillment", func() {
			fakeChain.BalanceReturns(big.NewInt(5), nil)

			again, err := relay.Status(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(again.BalanceWei).To(Equal("1000000000000000000"))
			Expect(fakeChain.BalanceCallCount()).To(Equal(1))
		})

		When("the balance cannot be read", func() {
			BeforeEach(func() {
				fakeChain.BalanceReturns(nil, fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})

			It("should retry on the next read", func() {
				fakeChain.BalanceReturns(big.NewInt(5), nil)

				again, err := relay.Status(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(again.BalanceWei).To(Equal("5"))
			})
		})
	})

	Describe("Fulfillments", func() {
		var (
			records []core.FulfillmentRecord
			err     error
			started time.Time
		)

		BeforeEach(func() {
			started = time.Now()
			fakeRepo.GetFulfillmentsReturns([]repository.Fulfillment{
				{ID: "a", RequestID: "9", Status: core.StatusFailed, Reason: "execution reverted", StartedAt: started},
				{ID: "b", RequestID: "9", Status: core.StatusConfirmed, BlockNumber: 12, StartedAt: started},
			}, nil)
		})

		JustBeforeEach(func() {
			records, err = relay.Fulfillments(ctx, "9")
		})

		It("should map journal rows", func() {
			Expect(err).NotTo(HaveOccurred())
			_, requestID := fakeRepo.GetFulfillmentsArgsForCall(0)
			Expect(requestID).To(Equal("9"))
			Expect(records).To(HaveLen(2))
			Expect(records[0].Reason).To(Equal("execution reverted"))
			Expect(records[1].BlockNumber).To(Equal(uint64(12)))
			Expect(records[1].StartedAt).To(Equal(started))
		})

		When("nothing was journaled", func() {
			BeforeEach(func() {
				fakeRepo.GetFulfillmentsReturns(nil, repository.ErrFulfillmentNotFound)
			})

			It("should return ErrFulfillmentNotFound", func() {
				Expect(err).To(MatchError(core.ErrFulfillmentNotFound))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.GetFulfillmentsReturns(nil, fakeErr)
			})

			It("should return a wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	When("the journal is disabled", func() {
		JustBeforeEach(func() {
			relay = core.NewRelay(logger, fakeChain, nil)
		})

		It("should still fulfill requests", func() {
			relay.HandleFlipRequest(ctx, flipRequest(5))
			Expect(recorded.FilterMessage("fulfillment confirmed").Len()).To(Equal(1))
		})

		It("should refuse journal queries", func() {
			_, err := relay.Fulfillments(ctx, "5")
			Expect(err).To(MatchError(core.ErrJournalDisabled))
		})
	})
})
