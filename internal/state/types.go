package state

// AccountType filters which services a giveaway draws from.
type AccountType string

const (
	AccountTypeVIP  AccountType = "vip"
	AccountTypeFree AccountType = "free"
	AccountTypeBoth AccountType = "both"
)

// IsValid reports whether the account type is one of the recognized values.
func (t AccountType) IsValid() bool {
	return t == AccountTypeVIP || t == AccountTypeFree || t == AccountTypeBoth
}

// Service is a distributable product offering a pool of credential accounts.
type Service struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Emoji     string     `json:"emoji,omitempty"`
	IsVIPOnly bool       `json:"isVipOnly"`
	Accounts  []*Account `json:"accounts"`
}

// Account is one redeemable credential pair belonging to a service.
// Once IsUsed is set the account is never returned by availability queries.
type Account struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsUsed   bool   `json:"isUsed"`
	UsedBy   string `json:"usedBy,omitempty"`
	UsedAt   string `json:"usedAt,omitempty"`
}

// RedemptionCode binds a user to a specific reserved account. A code is
// consumable at most once and only by the user it was issued to.
type RedemptionCode struct {
	Code      string `json:"code"`
	ServiceID string `json:"serviceId"`
	UserID    string `json:"userId"`
	AccountID string `json:"accountId"`
	CreatedAt string `json:"createdAt"`
	Used      bool   `json:"used"`
}

// UserStats tracks per-user message activity for giveaway eligibility.
type UserStats struct {
	UserID          string `json:"userId"`
	MessageCount    int    `json:"messageCount"`
	LastMessageDate string `json:"lastMessageDate"`
}

// GrantedAccount is one credential pair handed to a giveaway winner.
type GrantedAccount struct {
	ServiceID   string `json:"serviceId"`
	ServiceName string `json:"serviceName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// GiveawayWinner records one winner of an executed draw.
type GiveawayWinner struct {
	UserID           string           `json:"userId"`
	MessageCount     int              `json:"messageCount"`
	AccountsReceived []GrantedAccount `json:"accountsReceived"`
}

// GiveawayEntry is an immutable record of one executed draw.
type GiveawayEntry struct {
	ID      string           `json:"id"`
	Date    string           `json:"date"`
	Winners []GiveawayWinner `json:"winners"`
	Config  GiveawayConfig   `json:"config"`
}

// GiveawayResult summarizes a successful draw for the caller.
type GiveawayResult struct {
	Winners      []GiveawayWinner
	AccountsSent int
}
