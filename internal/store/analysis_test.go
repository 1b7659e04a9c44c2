package store

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/models"
)

func TestSummaryTotals(t *testing.T) {
	repo := setupTestRepo(t)
	s := repo.Summary()

	if !s.Income.Equal(decimal.RequireFromString("25000.00")) {
		t.Errorf("income = %s", s.Income)
	}
	// 1240.50 + 5×55.00
	if !s.Expenses.Equal(decimal.RequireFromString("1515.50")) {
		t.Errorf("expenses = %s", s.Expenses)
	}
	if !s.Balance.Equal(s.Income.Sub(s.Expenses)) {
		t.Errorf("balance = %s", s.Balance)
	}
}

func TestRecurringExpensesDetectsAntPattern(t *testing.T) {
	repo := setupTestRepo(t)
	report := repo.RecurringExpenses()

	if report.Top == nil {
		t.Fatal("seeded café purchases repeat five times, expected a top group")
	}
	if report.Top.Label != "café" {
		t.Errorf("top label = %q", report.Top.Label)
	}
	if report.Top.Count != 5 {
		t.Errorf("top count = %d", report.Top.Count)
	}
	if !report.Total.Equal(decimal.RequireFromString("275.00")) {
		t.Errorf("total = %s", report.Total)
	}
}

func TestRecurringExpensesGroupsByBaseLabel(t *testing.T) {
	repo := setupTestRepo(t)
	// The dashboard form appends the category in parentheses; grouping
	// must ignore it.
	repo.AddTransaction(decimal.NewFromInt(55), "Café (Alimentos)", models.KindExpense)

	report := repo.RecurringExpenses()
	if report.Top == nil || report.Top.Count != 6 {
		t.Fatalf("suffixed label should join the café group, got %+v", report.Top)
	}
}

func TestRecurringExpensesIgnoresOneOffs(t *testing.T) {
	repo := setupTestRepo(t)
	// Walmart appears once; only café crosses the threshold.
	report := repo.RecurringExpenses()
	if !report.Total.Equal(decimal.RequireFromString("275.00")) {
		t.Errorf("one-off expenses leaked into the total: %s", report.Total)
	}
}

func TestTrendAppendsLiveMonth(t *testing.T) {
	repo := setupTestRepo(t)
	trend := repo.Trend()

	if len(trend) != 6 {
		t.Fatalf("trend length = %d, want 6", len(trend))
	}
	live := trend[len(trend)-1]
	s := repo.Summary()
	if !live.Income.Equal(s.Income) || !live.Expenses.Equal(s.Expenses) {
		t.Errorf("live month should mirror the ledger: %+v", live)
	}

	// Recording another expense moves the live month only.
	repo.AddTransaction(decimal.NewFromInt(500), "Cine", models.KindExpense)
	next := repo.Trend()
	if !next[len(next)-1].Expenses.Equal(s.Expenses.Add(decimal.NewFromInt(500))) {
		t.Errorf("live expenses = %s", next[len(next)-1].Expenses)
	}
	if !next[0].Income.Equal(trend[0].Income) {
		t.Error("history months must stay fixed")
	}
}

func TestSearchAdvisors(t *testing.T) {
	repo := setupTestRepo(t)

	if got := len(repo.SearchAdvisors("")); got != 6 {
		t.Errorf("empty query should match all advisors, got %d", got)
	}
	byTag := repo.SearchAdvisors("cetes")
	if len(byTag) != 1 || byTag[0].Name != "Carlos Méndez" {
		t.Errorf("tag search = %+v", byTag)
	}
	byRole := repo.SearchAdvisors("coach")
	if len(byRole) != 1 || byRole[0].Name != "Javier López" {
		t.Errorf("role search = %+v", byRole)
	}
	if got := len(repo.SearchAdvisors("blockchain total")); got != 0 {
		t.Errorf("unmatched query should return none, got %d", got)
	}
}

func TestRequestAppointment(t *testing.T) {
	repo := setupTestRepo(t)

	advisor := repo.RequestAppointment("2")
	if advisor == nil || advisor.Name != "Carlos Méndez" {
		t.Fatalf("appointment = %+v", advisor)
	}
	assertToast(t, repo, "Solicitud enviada a Carlos Méndez. Te contactaremos pronto.", models.NotifySuccess)

	if repo.RequestAppointment("99") != nil {
		t.Error("unknown advisor should be a no-op")
	}
}
