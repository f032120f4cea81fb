package model

import (
	"strings"
	"time"

	"github.com/ib-77/gocoinbase/pkg/rop"
)

type ResourceType string

const (
	ResourceUser    ResourceType = "user"
	ResourceAccount ResourceType = "account"
	ResourceUnknown ResourceType = "unknown"
)

// ParseResourceType is case-insensitive and falls back to ResourceUnknown.
func ParseResourceType(s string) ResourceType {
	for _, rt := range []ResourceType{ResourceUser, ResourceAccount} {
		if strings.EqualFold(string(rt), s) {
			return rt
		}
	}
	return ResourceUnknown
}

type User struct {
	ID             string
	Name           string
	AvatarURL      string
	ResourceType   ResourceType
	ResourcePath   string
	Email          string
	LegacyID       string
	TimeZone       string
	NativeCurrency string
	BitcoinUnit    string

	Username        rop.Option[string]
	ProfileLocation rop.Option[string]
	ProfileBio      rop.Option[string]
	ProfileURL      rop.Option[string]
	UserType        rop.Option[string]
	State           rop.Option[string]

	RegionSupportsFiatTransfers           bool
	RegionSupportsCryptoToCryptoTransfers bool
	SupportsRewards                       bool
	HasBlockingBuyRestrictions            bool
	HasBuyDepositPaymentMethods           bool
	HasUnverifiedBuyDepositPaymentMethods bool
	HasMadeAPurchase                      bool
	NeedsKYCRemediation                   bool
	ShowInstantACHUX                      bool

	CreatedAt     time.Time
	Country       Country
	Nationality   Nationality
	Tiers         Tiers
	ReferralMoney ReferralMoney
}

type Country struct {
	Code     string
	Name     string
	InEurope bool
}

type Nationality struct {
	Code string
	Name string
}

type Tiers struct {
	CompletedDescription string
}

type ReferralMoney struct {
	Amount            string
	Currency          string
	CurrencySymbol    string
	ReferralThreshold string
}

// Authorizations describes what the configured API key may do.
type Authorizations struct {
	Method string
	Scopes []string
}

// UpdateCurrentUserRequest carries the fields to change; empty fields are
// left untouched.
type UpdateCurrentUserRequest struct {
	Name           string `json:"name,omitempty"`
	TimeZone       string `json:"time_zone,omitempty"`
	NativeCurrency string `json:"native_currency,omitempty"`
}

func (r UpdateCurrentUserRequest) IsEmpty() bool {
	return r == UpdateCurrentUserRequest{}
}
