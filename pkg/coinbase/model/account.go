package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountWallet  AccountType = "wallet"
	AccountFiat    AccountType = "fiat"
	AccountVault   AccountType = "vault"
	AccountUnknown AccountType = "unknown"
)

// ParseAccountType is case-insensitive and falls back to AccountUnknown.
func ParseAccountType(s string) AccountType {
	for _, at := range []AccountType{AccountWallet, AccountFiat, AccountVault} {
		if strings.EqualFold(string(at), s) {
			return at
		}
	}
	return AccountUnknown
}

type Account struct {
	ID               string
	Name             string
	Primary          bool
	Type             AccountType
	Currency         AccountCurrency
	Balance          AccountBalance
	CreatedAt        time.Time
	UpdatedAt        time.Time
	ResourceType     ResourceType
	ResourcePath     string
	AllowDeposits    bool
	AllowWithdrawals bool
	RewardsAPY       string
	Rewards          Rewards
}

type AccountCurrency struct {
	Code                string
	Name                string
	Color               string
	SortIndex           int
	Exponent            int
	Type                string
	AddressRegex        string
	AssetID             string
	DestinationTagName  string
	DestinationTagRegex string
	Slug                string
}

type AccountBalance struct {
	Amount   decimal.Decimal
	Currency string
}

type Rewards struct {
	APY          string
	FormattedAPY string
	Label        string
}

type UpdateAccountRequest struct {
	Name string `json:"name,omitempty"`
}

// AccountsPage is one page of the account listing.
type AccountsPage = Page[Account]
