package store

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/models"
	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/notify"
)

func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(notify.New(notify.DefaultTTL))
}

func TestPublishPostPrepends(t *testing.T) {
	repo := setupTestRepo(t)
	before := len(repo.Posts())

	post := repo.PublishPost("Hola comunidad")
	if post == nil {
		t.Fatal("expected a created post")
	}

	posts := repo.Posts()
	if len(posts) != before+1 {
		t.Errorf("expected %d posts, got %d", before+1, len(posts))
	}
	if posts[0].ID != post.ID {
		t.Errorf("new post should be first, got %s", posts[0].ID)
	}
	user := repo.CurrentUser()
	if post.AuthorName != user.DisplayName || post.AuthorHandle != user.Handle {
		t.Errorf("post should be authored by the current user, got %s %s", post.AuthorName, post.AuthorHandle)
	}
	if post.LikeCount != 0 || post.CommentCount != 0 || post.ShareCount != 0 {
		t.Errorf("new post should have zero engagement, got %d/%d/%d", post.LikeCount, post.CommentCount, post.ShareCount)
	}
}

func TestPublishPostEmptyBodyIsNoOp(t *testing.T) {
	repo := setupTestRepo(t)
	before := repo.Posts()

	for _, body := range []string{"", "   ", "\n\t"} {
		if post := repo.PublishPost(body); post != nil {
			t.Errorf("body %q should not publish", body)
		}
	}

	after := repo.Posts()
	if len(after) != len(before) {
		t.Fatalf("feed length changed: %d -> %d", len(before), len(after))
	}
	for i := range after {
		if after[i].ID != before[i].ID {
			t.Errorf("feed contents changed at %d", i)
		}
	}
}

func TestAddCommentIncrementsCountByOne(t *testing.T) {
	repo := setupTestRepo(t)
	original := repo.Posts()[0]

	updated := repo.AddComment(original.ID, "hello")
	if updated == nil {
		t.Fatal("expected updated post")
	}
	if updated.CommentCount != original.CommentCount+1 {
		t.Errorf("comment count: got %d, want %d", updated.CommentCount, original.CommentCount+1)
	}
	last := updated.Comments[len(updated.Comments)-1]
	if last.Body != "hello" {
		t.Errorf("new comment should be last, got %q", last.Body)
	}
	user := repo.CurrentUser()
	if last.AuthorName != user.DisplayName || last.AvatarURL != user.AvatarURL {
		t.Errorf("comment author should match current user, got %s", last.AuthorName)
	}
}

func TestAddCommentNoOps(t *testing.T) {
	repo := setupTestRepo(t)

	if repo.AddComment("missing", "hola") != nil {
		t.Error("unknown post id should be a no-op")
	}
	if repo.AddComment("1", "   ") != nil {
		t.Error("blank body should be a no-op")
	}
	if got := repo.Posts()[0].CommentCount; got != 2 {
		t.Errorf("seed comment count changed: %d", got)
	}
}

func TestToggleLikeAlternates(t *testing.T) {
	repo := setupTestRepo(t)
	original := repo.Posts()[0]
	if original.LikedByUser {
		t.Fatal("seed post should start unliked")
	}

	for i := 1; i <= 6; i++ {
		updated := repo.ToggleLike(original.ID)
		wantLiked := i%2 == 1
		if updated.LikedByUser != wantLiked {
			t.Errorf("call %d: liked = %v, want %v", i, updated.LikedByUser, wantLiked)
		}
		wantCount := original.LikeCount
		if wantLiked {
			wantCount++
		}
		if updated.LikeCount != wantCount {
			t.Errorf("call %d: count = %d, want %d", i, updated.LikeCount, wantCount)
		}
	}
}

func TestToggleShareRoundTrips(t *testing.T) {
	repo := setupTestRepo(t)
	original := repo.Posts()[1]

	shared := repo.ToggleShare(original.ID)
	if !shared.SharedByUser || shared.ShareCount != original.ShareCount+1 {
		t.Errorf("share: got %v/%d", shared.SharedByUser, shared.ShareCount)
	}
	unshared := repo.ToggleShare(original.ID)
	if unshared.SharedByUser || unshared.ShareCount != original.ShareCount {
		t.Errorf("unshare: got %v/%d", unshared.SharedByUser, unshared.ShareCount)
	}
}

func TestToggleLikeUnknownPost(t *testing.T) {
	repo := setupTestRepo(t)
	if repo.ToggleLike("missing") != nil {
		t.Error("unknown post id should return nil")
	}
}

func TestAddTransactionNormalizesSign(t *testing.T) {
	repo := setupTestRepo(t)

	expense := repo.AddTransaction(decimal.NewFromInt(100), "Café", models.ParseTransactionKind("gasto"))
	if !expense.Amount.Equal(decimal.NewFromInt(-100)) {
		t.Errorf("expense amount = %s, want -100", expense.Amount)
	}
	if expense.Kind != models.KindExpense || expense.Category != "Gasto" {
		t.Errorf("expense classified as %s/%s", expense.Kind, expense.Category)
	}

	income := repo.AddTransaction(decimal.NewFromInt(-50), "Sueldo", models.ParseTransactionKind("ingreso"))
	if !income.Amount.Equal(decimal.NewFromInt(50)) {
		t.Errorf("income amount = %s, want 50", income.Amount)
	}
	if income.Kind != models.KindIncome || income.Category != "Ingreso" {
		t.Errorf("income classified as %s/%s", income.Kind, income.Category)
	}

	if got := repo.Transactions()[0].ID; got != income.ID {
		t.Errorf("new transaction should be first, got %s", got)
	}
}

func TestDeleteTransaction(t *testing.T) {
	repo := setupTestRepo(t)
	before := repo.Transactions()

	repo.DeleteTransaction("not-a-real-id")
	if got := len(repo.Transactions()); got != len(before) {
		t.Fatalf("unknown id changed ledger: %d -> %d", len(before), got)
	}

	repo.DeleteTransaction("t3")
	after := repo.Transactions()
	if len(after) != len(before)-1 {
		t.Fatalf("expected exactly one removal: %d -> %d", len(before), len(after))
	}
	for _, tx := range after {
		if tx.ID == "t3" {
			t.Error("t3 should be gone")
		}
	}
}

func TestUpdateProfileMergesPartialChanges(t *testing.T) {
	repo := setupTestRepo(t)
	if repo.IsAuthenticated() {
		t.Fatal("fresh repo should be a guest session")
	}
	original := repo.CurrentUser()

	name := "Mariana"
	repo.UpdateProfile(models.ProfileChanges{DisplayName: &name})

	user := repo.CurrentUser()
	if user.DisplayName != "Mariana" {
		t.Errorf("display name = %q", user.DisplayName)
	}
	if user.Handle != original.Handle || user.AvatarURL != original.AvatarURL {
		t.Error("absent fields must keep their prior value")
	}
	if !repo.IsAuthenticated() {
		t.Error("updating the profile must authenticate the session")
	}
}

func TestMutationsEmitFixedToasts(t *testing.T) {
	repo := setupTestRepo(t)

	repo.PublishPost("post")
	assertToast(t, repo, "¡Publicado con éxito!", models.NotifySuccess)

	repo.AddComment("1", "hola")
	assertToast(t, repo, "Respuesta enviada", models.NotifySuccess)

	repo.ToggleShare("1")
	assertToast(t, repo, "Compartido en tu comunidad", models.NotifyInfo)

	repo.AddTransaction(decimal.NewFromInt(10), "Taco", models.KindExpense)
	assertToast(t, repo, "Gasto registrado", models.NotifySuccess)

	repo.AddTransaction(decimal.NewFromInt(10), "Venta", models.KindIncome)
	assertToast(t, repo, "Ingreso registrado", models.NotifySuccess)

	repo.DeleteTransaction("t1")
	assertToast(t, repo, "Transacción eliminada con éxito", models.NotifyInfo)
}

func TestToggleLikeIsSilent(t *testing.T) {
	repo := setupTestRepo(t)
	repo.ToggleLike("1")
	if toast := repo.Notifier().Current(); toast != nil {
		t.Errorf("like should not toast, got %q", toast.Message)
	}
}

func assertToast(t *testing.T, repo *Repository, message string, kind models.NotificationKind) {
	t.Helper()
	toast := repo.Notifier().Current()
	if toast == nil {
		t.Fatalf("expected toast %q", message)
	}
	if !strings.EqualFold(toast.Message, message) || toast.Kind != kind {
		t.Errorf("toast = %q (%s), want %q (%s)", toast.Message, toast.Kind, message, kind)
	}
}
