package handlers

import (
	"bytes"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abrezinsky/arena/internal/export"
	"github.com/abrezinsky/arena/internal/format"
	"github.com/abrezinsky/arena/internal/listing"
	"github.com/abrezinsky/arena/internal/models"
	"github.com/abrezinsky/arena/internal/services"
)

func (h *Handlers) handleGetWallet(w http.ResponseWriter, r *http.Request) {
	wallet, err := h.Wallet.Wallet(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondOK(w, WalletResponse{
		Balance:        wallet.Balance,
		Currency:       wallet.Currency,
		Display:        format.Fixed(wallet.Balance) + " " + wallet.Currency,
		DepositPresets: services.DepositPresets,
	})
}

func (h *Handlers) handleDeposit(w http.ResponseWriter, r *http.Request) {
	var req services.DepositRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	tx, err := h.Wallet.Deposit(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondCreated(w, tx)
}

func (h *Handlers) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	var req services.WithdrawRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	tx, err := h.Wallet.Withdraw(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondCreated(w, tx)
}

func parseTxFilter(r *http.Request) (listing.TxFilter, error) {
	q := r.URL.Query()
	f := listing.TxFilter{
		Type:   models.TxType(q.Get("type")),
		Status: models.TxStatus(q.Get("status")),
	}
	if f.Type != "" && !f.Type.Valid() {
		return f, BadRequest("Invalid type parameter")
	}
	if f.Status != "" && !f.Status.Valid() {
		return f, BadRequest("Invalid status parameter")
	}
	var err error
	if f.MinAmount, err = parseFloatQuery(q, "min_amount"); err != nil {
		return f, err
	}
	if f.MaxAmount, err = parseFloatQuery(q, "max_amount"); err != nil {
		return f, err
	}
	return f, nil
}

func (h *Handlers) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	f, err := parseTxFilter(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	txs, err := h.Wallet.Transactions(r.Context(), f)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondOK(w, txs)
}

func (h *Handlers) handleExportTransactions(w http.ResponseWriter, r *http.Request) {
	f, err := parseTxFilter(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	txs, err := h.Wallet.Transactions(r.Context(), f)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.sendExport(w, r, "transactions", func(out io.Writer, f export.Format) error {
		return export.Transactions(out, f, txs)
	})
}

// sendExport renders into memory first so an encoding failure can still
// become an error response, then sends it as an attachment
func (h *Handlers) sendExport(w http.ResponseWriter, r *http.Request, prefix string, write func(io.Writer, export.Format) error) {
	f, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		h.respondError(w, r, BadRequest(err.Error()))
		return
	}
	var buf bytes.Buffer
	if err := write(&buf, f); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", f.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(prefix, f, h.Clock.Now())+`"`)
	w.Write(buf.Bytes())
}

func (h *Handlers) handleSettleTransaction(w http.ResponseWriter, r *http.Request) {
	if err := h.Wallet.Settle(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, r, err)
		return
	}
	respondSuccess(w, "Transaction completed")
}
