package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/models"
	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/store"
)

type LedgerHandler struct {
	repo *store.Repository
	log  *log.Logger
}

func NewLedgerHandler(repo *store.Repository, log *log.Logger) *LedgerHandler {
	return &LedgerHandler{repo: repo, log: log}
}

// List returns the ledger with its aggregated summary.
func (h *LedgerHandler) List(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]any{
		"transactions": h.repo.Transactions(),
		"summary":      h.repo.Summary(),
	})
}

// Create records a new transaction. The amount's sign is ignored; the
// kind decides whether it is stored negative or positive.
func (h *LedgerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Amount   decimal.Decimal `json:"amount"`
		Label    string          `json:"label"`
		Category string          `json:"category"`
		Kind     string          `json:"kind"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}
	input.Label = strings.TrimSpace(input.Label)
	if input.Label == "" {
		writeError(w, http.StatusBadRequest, "El concepto no puede estar vacío")
		return
	}
	// The dashboard form folds the chosen category into the label.
	if category := strings.TrimSpace(input.Category); category != "" {
		input.Label = fmt.Sprintf("%s (%s)", input.Label, category)
	}

	tx := h.repo.AddTransaction(input.Amount, input.Label, models.ParseTransactionKind(input.Kind))
	h.log.Printf("transaction recorded: %s %s", tx.ID, tx.Amount)
	writeJSON(w, http.StatusCreated, APIResponse{Success: true, Data: tx})
}

// Delete removes the matching transaction; unknown ids leave the
// ledger unchanged.
func (h *LedgerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.repo.DeleteTransaction(id)
	writeSuccess(w, h.repo.Transactions())
}

// Trend returns the six-month patrimony series for the dashboard
// chart.
func (h *LedgerHandler) Trend(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.repo.Trend())
}

// Recurring reports the ant-expense groups detected in the ledger.
func (h *LedgerHandler) Recurring(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.repo.RecurringExpenses())
}

// Report simulates the fiscal report download.
func (h *LedgerHandler) Report(w http.ResponseWriter, r *http.Request) {
	filename := fmt.Sprintf("Registro_Fiscal_%d.pdf", time.Now().Year())
	h.repo.Notifier().Notify(fmt.Sprintf("%s descargado", filename), models.NotifySuccess)
	writeSuccess(w, map[string]string{"filename": filename})
}
