package models

import "github.com/shopspring/decimal"

// View identifies one of the application screens.
type View string

const (
	ViewHome      View = "home"
	ViewCommunity View = "community"
	ViewAdvisors  View = "advisors"
	ViewPanel     View = "panel"
	ViewSettings  View = "settings"
)

// ParseView maps an external location indicator to a View. An empty
// indicator is treated as the public landing view.
func ParseView(s string) (View, bool) {
	switch View(s) {
	case "", ViewHome:
		return ViewHome, true
	case ViewCommunity, ViewAdvisors, ViewPanel, ViewSettings:
		return View(s), true
	}
	return ViewHome, false
}

// Private reports whether the view requires an authenticated session.
func (v View) Private() bool {
	return v != ViewHome
}

// UserProfile is the single active session identity.
type UserProfile struct {
	DisplayName string `json:"display_name"`
	Handle      string `json:"handle"`
	AvatarURL   string `json:"avatar_url"`
	IsPremium   bool   `json:"is_premium"`
}

// ProfileChanges is a partial profile update. Nil fields keep their
// prior value.
type ProfileChanges struct {
	DisplayName *string `json:"display_name"`
	Handle      *string `json:"handle"`
	AvatarURL   *string `json:"avatar_url"`
	IsPremium   *bool   `json:"is_premium"`
}

// Post is a feed publication with its nested comments.
type Post struct {
	ID               string    `json:"id"`
	AuthorName       string    `json:"author_name"`
	AuthorHandle     string    `json:"author_handle"`
	AvatarURL        string    `json:"avatar_url"`
	Body             string    `json:"body"`
	CreatedAtLabel   string    `json:"created_at_label"`
	IsVerifiedAuthor bool      `json:"is_verified_author"`
	LikeCount        int       `json:"like_count"`
	CommentCount     int       `json:"comment_count"`
	ShareCount       int       `json:"share_count"`
	ViewCountLabel   string    `json:"view_count_label"`
	LikedByUser      bool      `json:"liked_by_user"`
	SharedByUser     bool      `json:"shared_by_user"`
	Comments         []Comment `json:"comments"`
}

// Comment belongs to exactly one post and is immutable after creation.
type Comment struct {
	ID             string `json:"id"`
	AuthorName     string `json:"author_name"`
	AvatarURL      string `json:"avatar_url"`
	Body           string `json:"body"`
	CreatedAtLabel string `json:"created_at_label"`
}

// TransactionKind separates ledger entries into expenses and income.
type TransactionKind string

const (
	KindExpense TransactionKind = "expense"
	KindIncome  TransactionKind = "income"
)

// ParseTransactionKind accepts both the API values and the Spanish
// labels used by the client forms. Anything unrecognized is treated as
// an expense.
func ParseTransactionKind(s string) TransactionKind {
	switch s {
	case "income", "ingreso":
		return KindIncome
	}
	return KindExpense
}

// Transaction is a ledger entry. Amount is negative for expenses and
// positive for income; the store normalizes the sign on creation.
type Transaction struct {
	ID                string          `json:"id"`
	CounterpartyLabel string          `json:"counterparty_label"`
	Category          string          `json:"category"`
	DateLabel         string          `json:"date_label"`
	Amount            decimal.Decimal `json:"amount"`
	Icon              string          `json:"icon"`
	Kind              TransactionKind `json:"kind"`
}

// NotificationKind is the visual flavor of a toast.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
	NotifyInfo    NotificationKind = "info"
)

// Notification is the single pending transient status message.
type Notification struct {
	Message string           `json:"message"`
	Kind    NotificationKind `json:"kind"`
}

// Advisor is a marketplace expert profile.
type Advisor struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Role        string          `json:"role"`
	Rating      float64         `json:"rating"`
	Reviews     int             `json:"reviews"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	Tags        []string        `json:"tags"`
	AvatarURL   string          `json:"avatar_url"`
	IsVerified  bool            `json:"is_verified"`
	Description string          `json:"description"`
}
