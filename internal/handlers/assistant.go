package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/brain"
	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/models"
	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/store"
)

const assistantSystemPrompt = "Eres un asesor financiero experto en México. Tu nombre es FINTAL AI. " +
	"Eres amable, profesional y proporcionas consejos sobre ahorro, inversión (CETES, bolsa, etc.), " +
	"impuestos (SAT) y finanzas personales. Mantén las respuestas breves y directas."

const (
	fallbackEmptyReply  = "Lo siento, tuve un problema procesando tu solicitud."
	fallbackServiceDown = "Hubo un error al conectar con el servidor. Inténtalo de nuevo."
)

type AssistantHandler struct {
	repo *store.Repository
	gen  brain.Generator
	log  *log.Logger
}

func NewAssistantHandler(repo *store.Repository, gen brain.Generator, log *log.Logger) *AssistantHandler {
	return &AssistantHandler{repo: repo, gen: gen, log: log}
}

// Chat relays one turn of the assistant conversation. Service failures
// and empty generations are replaced by fixed fallback copy; the call
// is never retried.
func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Messages []brain.Message `json:"messages"`
		Text     string          `json:"text"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}
	input.Text = strings.TrimSpace(input.Text)
	if input.Text == "" {
		writeError(w, http.StatusBadRequest, "El mensaje no puede estar vacío")
		return
	}

	reply, err := h.gen.Generate(r.Context(), assistantSystemPrompt, input.Messages, input.Text)
	if err != nil {
		h.log.Printf("assistant generation failed: %v", err)
		reply = fallbackServiceDown
	} else if strings.TrimSpace(reply) == "" {
		reply = fallbackEmptyReply
	}
	writeSuccess(w, brain.Message{Role: "assistant", Text: reply})
}

// Advice produces the dashboard's quick patrimony tip.
func (h *AssistantHandler) Advice(w http.ResponseWriter, r *http.Request) {
	summary := h.repo.Summary()
	prompt := fmt.Sprintf(
		"Analiza patrimonio: Ahorros $125k, Egresos $%s. Dame un consejo rápido de inversión en México.",
		summary.Expenses.StringFixed(2),
	)

	advice, err := h.gen.Generate(r.Context(), assistantSystemPrompt, nil, prompt)
	if err != nil || strings.TrimSpace(advice) == "" {
		if err != nil {
			h.log.Printf("advice generation failed: %v", err)
		}
		h.repo.Notifier().Notify("IA en mantenimiento", models.NotifyInfo)
		writeError(w, http.StatusBadGateway, fallbackServiceDown)
		return
	}

	h.repo.Notifier().Notify("¡Análisis IA completado!", models.NotifySuccess)
	writeSuccess(w, map[string]string{"advice": advice})
}

// Strategy produces the ant-expense investment plan. Without a
// recurring pattern there is nothing to optimize and the response is
// empty.
func (h *AssistantHandler) Strategy(w http.ResponseWriter, r *http.Request) {
	report := h.repo.RecurringExpenses()
	if report.Top == nil {
		writeSuccess(w, nil)
		return
	}

	prompt := fmt.Sprintf(
		"El usuario tiene un gasto hormiga de $%s MXN al mes principalmente en %q. "+
			"Actúa como un asesor financiero mexicano. Dime en 3 puntos claros cómo podría invertir "+
			"ese dinero en CETES o FIBRAS y cuánto podría ganar en un año. Sé muy motivador y usa un tono profesional.",
		report.Total.StringFixed(2), report.Top.Label,
	)

	plan, err := h.gen.Generate(r.Context(), assistantSystemPrompt, nil, prompt)
	if err != nil || strings.TrimSpace(plan) == "" {
		if err != nil {
			h.log.Printf("strategy generation failed: %v", err)
		}
		writeError(w, http.StatusBadGateway, fallbackServiceDown)
		return
	}
	writeSuccess(w, map[string]any{"plan": plan, "recurring": report})
}
