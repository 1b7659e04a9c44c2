package store

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/models"
	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/notify"
)

// Toast copy produced by the mutation operations.
const (
	msgPostPublished      = "¡Publicado con éxito!"
	msgCommentSent        = "Respuesta enviada"
	msgPostShared         = "Compartido en tu comunidad"
	msgIncomeRecorded     = "Ingreso registrado"
	msgExpenseRecorded    = "Gasto registrado"
	msgTransactionDeleted = "Transacción eliminada con éxito"
	msgLoginRequired      = "Inicia sesión para acceder a esta sección"
)

// Repository owns all application state: the session identity, the
// feed, the ledger, the advisor catalog, the navigation gate and the
// pending toast. Everything lives in memory and resets on restart.
type Repository struct {
	mu sync.Mutex

	user          models.UserProfile
	authenticated bool
	currentView   models.View

	posts        []*models.Post
	transactions []*models.Transaction
	advisors     []models.Advisor

	sessions map[string]time.Time

	notifier *notify.Notifier
	now      func() time.Time
}

// NewRepository creates a repository seeded with the demo fixtures and
// a guest session.
func NewRepository(notifier *notify.Notifier) *Repository {
	r := &Repository{
		user:        guestProfile,
		currentView: models.ViewHome,
		sessions:    make(map[string]time.Time),
		notifier:    notifier,
		now:         time.Now,
	}
	r.posts = seedPosts()
	r.transactions = seedTransactions()
	r.advisors = seedAdvisors()
	return r
}

// newID derives a record id from the current clock reading.
func (r *Repository) newID() string {
	return strconv.FormatInt(r.now().UnixNano(), 10)
}

// Notifier exposes the toast emitter for handler-level messages.
func (r *Repository) Notifier() *notify.Notifier {
	return r.notifier
}

// CurrentUser returns the live session profile.
func (r *Repository) CurrentUser() models.UserProfile {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.user
}

// IsAuthenticated reports whether any login, signup, biometric or
// profile-update action has happened since process start.
func (r *Repository) IsAuthenticated() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.authenticated
}

// UpdateProfile merges the given partial changes into the current
// profile. Fields left nil keep their prior value. As a side effect the
// session becomes authenticated; this is the only way that happens.
func (r *Repository) UpdateProfile(changes models.ProfileChanges) models.UserProfile {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.applyProfile(changes)
	return r.user
}

func (r *Repository) applyProfile(changes models.ProfileChanges) {
	if changes.DisplayName != nil {
		r.user.DisplayName = *changes.DisplayName
	}
	if changes.Handle != nil {
		r.user.Handle = *changes.Handle
	}
	if changes.AvatarURL != nil {
		r.user.AvatarURL = *changes.AvatarURL
	}
	if changes.IsPremium != nil {
		r.user.IsPremium = *changes.IsPremium
	}
	r.authenticated = true
}

// Posts returns the feed, newest first.
func (r *Repository) Posts() []models.Post {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, clonePost(p))
	}
	return out
}

// PublishPost prepends a new post authored by the current user. An
// empty or whitespace-only body is a silent no-op.
func (r *Repository) PublishPost(body string) *models.Post {
	if strings.TrimSpace(body) == "" {
		return nil
	}
	r.mu.Lock()
	post := &models.Post{
		ID:               r.newID(),
		AuthorName:       r.user.DisplayName,
		AuthorHandle:     r.user.Handle,
		AvatarURL:        r.user.AvatarURL,
		Body:             body,
		CreatedAtLabel:   "Ahora",
		IsVerifiedAuthor: true,
		ViewCountLabel:   "1",
		Comments:         []models.Comment{},
	}
	r.posts = append([]*models.Post{post}, r.posts...)
	created := clonePost(post)
	r.mu.Unlock()

	r.notifier.Notify(msgPostPublished, models.NotifySuccess)
	return &created
}

// AddComment appends a comment by the current user to the matching
// post and bumps its comment count. Empty bodies and unknown post ids
// are silent no-ops.
func (r *Repository) AddComment(postID, body string) *models.Post {
	if strings.TrimSpace(body) == "" {
		return nil
	}
	r.mu.Lock()
	post := r.findPost(postID)
	if post == nil {
		r.mu.Unlock()
		return nil
	}
	post.Comments = append(post.Comments, models.Comment{
		ID:             r.newID(),
		AuthorName:     r.user.DisplayName,
		AvatarURL:      r.user.AvatarURL,
		Body:           body,
		CreatedAtLabel: "Ahora",
	})
	post.CommentCount++
	updated := clonePost(post)
	r.mu.Unlock()

	r.notifier.Notify(msgCommentSent, models.NotifySuccess)
	return &updated
}

// ToggleLike flips the current user's like on a post. The count delta
// is derived from the new flag value, so two calls always return the
// post to its original state. Likes do not produce a toast.
func (r *Repository) ToggleLike(postID string) *models.Post {
	r.mu.Lock()
	defer r.mu.Unlock()
	post := r.findPost(postID)
	if post == nil {
		return nil
	}
	post.LikedByUser = !post.LikedByUser
	if post.LikedByUser {
		post.LikeCount++
	} else {
		post.LikeCount--
	}
	updated := clonePost(post)
	return &updated
}

// ToggleShare flips the current user's repost of a post, adjusting the
// share count the same way ToggleLike adjusts likes.
func (r *Repository) ToggleShare(postID string) *models.Post {
	r.mu.Lock()
	post := r.findPost(postID)
	if post == nil {
		r.mu.Unlock()
		return nil
	}
	post.SharedByUser = !post.SharedByUser
	if post.SharedByUser {
		post.ShareCount++
	} else {
		post.ShareCount--
	}
	updated := clonePost(post)
	r.mu.Unlock()

	r.notifier.Notify(msgPostShared, models.NotifyInfo)
	return &updated
}

// Transactions returns the ledger, newest first.
func (r *Repository) Transactions() []models.Transaction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Transaction, 0, len(r.transactions))
	for _, t := range r.transactions {
		out = append(out, *t)
	}
	return out
}

// AddTransaction prepends a ledger entry. The sign of the given amount
// is ignored: expenses are stored negative and income positive.
func (r *Repository) AddTransaction(amount decimal.Decimal, label string, kind models.TransactionKind) models.Transaction {
	normalized := amount.Abs()
	category := "Ingreso"
	icon := "💰"
	message := msgIncomeRecorded
	if kind != models.KindIncome {
		kind = models.KindExpense
		normalized = normalized.Neg()
		category = "Gasto"
		icon = "💸"
		message = msgExpenseRecorded
	}

	r.mu.Lock()
	tx := &models.Transaction{
		ID:                r.newID(),
		CounterpartyLabel: label,
		Category:          category,
		DateLabel:         "Hoy",
		Amount:            normalized,
		Icon:              icon,
		Kind:              kind,
	}
	r.transactions = append([]*models.Transaction{tx}, r.transactions...)
	created := *tx
	r.mu.Unlock()

	r.notifier.Notify(message, models.NotifySuccess)
	return created
}

// DeleteTransaction removes the matching ledger entry. An unknown id
// leaves the ledger unchanged; the toast is emitted either way.
func (r *Repository) DeleteTransaction(id string) {
	r.mu.Lock()
	kept := r.transactions[:0]
	for _, t := range r.transactions {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	r.transactions = kept
	r.mu.Unlock()

	r.notifier.Notify(msgTransactionDeleted, models.NotifyInfo)
}

// findPost is called with the lock held.
func (r *Repository) findPost(id string) *models.Post {
	for _, p := range r.posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func clonePost(p *models.Post) models.Post {
	out := *p
	out.Comments = append([]models.Comment(nil), p.Comments...)
	return out
}
