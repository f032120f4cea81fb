package dto

import (
	"time"

	"github.com/ib-77/gocoinbase/pkg/coinbase/model"
	"github.com/ib-77/gocoinbase/pkg/rop"
)

type User struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Username        *string `json:"username"`
	ProfileLocation *string `json:"profile_location"`
	ProfileBio      *string `json:"profile_bio"`
	ProfileURL      *string `json:"profile_url"`
	AvatarURL       string  `json:"avatar_url"`
	Resource        string  `json:"resource"`
	ResourcePath    string  `json:"resource_path"`
	Email           string  `json:"email"`
	LegacyID        string  `json:"legacy_id"`
	TimeZone        string  `json:"time_zone"`
	NativeCurrency  string  `json:"native_currency"`
	BitcoinUnit     string  `json:"bitcoin_unit"`
	State           *string `json:"state"`
	UserType        *string `json:"user_type"`

	RegionSupportsFiatTransfers           bool `json:"region_supports_fiat_transfers"`
	RegionSupportsCryptoToCryptoTransfers bool `json:"region_supports_crypto_to_crypto_transfers"`
	SupportsRewards                       bool `json:"supports_rewards"`
	HasBlockingBuyRestrictions            bool `json:"has_blocking_buy_restrictions"`
	HasBuyDepositPaymentMethods           bool `json:"has_buy_deposit_payment_methods"`
	HasUnverifiedBuyDepositPaymentMethods bool `json:"has_unverified_buy_deposit_payment_methods"`
	HasMadeAPurchase                      bool `json:"has_made_a_purchase"`
	NeedsKYCRemediation                   bool `json:"needs_kyc_remediation"`
	ShowInstantACHUX                      bool `json:"show_instant_ach_ux"`

	CreatedAt     time.Time      `json:"created_at"`
	Country       *Country       `json:"country"`
	Nationality   *Nationality   `json:"nationality"`
	Tiers         *Tiers         `json:"tiers"`
	ReferralMoney *ReferralMoney `json:"referral_money"`
}

type Country struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	IsInEurope bool   `json:"is_in_europe"`
}

type Nationality struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Tiers struct {
	CompletedDescription string `json:"completed_description"`
}

type ReferralMoney struct {
	Amount            string `json:"amount"`
	Currency          string `json:"currency"`
	CurrencySymbol    string `json:"currency_symbol"`
	ReferralThreshold string `json:"referral_threshold"`
}

func (u User) ToModel() model.User {
	m := model.User{
		ID:             u.ID,
		Name:           u.Name,
		AvatarURL:      u.AvatarURL,
		ResourceType:   model.ParseResourceType(u.Resource),
		ResourcePath:   u.ResourcePath,
		Email:          u.Email,
		LegacyID:       u.LegacyID,
		TimeZone:       u.TimeZone,
		NativeCurrency: u.NativeCurrency,
		BitcoinUnit:    u.BitcoinUnit,

		Username:        optional(u.Username),
		ProfileLocation: optional(u.ProfileLocation),
		ProfileBio:      optional(u.ProfileBio),
		ProfileURL:      optional(u.ProfileURL),
		UserType:        optional(u.UserType),
		State:           optional(u.State),

		RegionSupportsFiatTransfers:           u.RegionSupportsFiatTransfers,
		RegionSupportsCryptoToCryptoTransfers: u.RegionSupportsCryptoToCryptoTransfers,
		SupportsRewards:                       u.SupportsRewards,
		HasBlockingBuyRestrictions:            u.HasBlockingBuyRestrictions,
		HasBuyDepositPaymentMethods:           u.HasBuyDepositPaymentMethods,
		HasUnverifiedBuyDepositPaymentMethods: u.HasUnverifiedBuyDepositPaymentMethods,
		HasMadeAPurchase:                      u.HasMadeAPurchase,
		NeedsKYCRemediation:                   u.NeedsKYCRemediation,
		ShowInstantACHUX:                      u.ShowInstantACHUX,

		CreatedAt: u.CreatedAt.UTC(),
	}
	if u.Country != nil {
		m.Country = model.Country{Code: u.Country.Code, Name: u.Country.Name, InEurope: u.Country.IsInEurope}
	}
	if u.Nationality != nil {
		m.Nationality = model.Nationality{Code: u.Nationality.Code, Name: u.Nationality.Name}
	}
	if u.Tiers != nil {
		m.Tiers = model.Tiers{CompletedDescription: u.Tiers.CompletedDescription}
	}
	if u.ReferralMoney != nil {
		m.ReferralMoney = model.ReferralMoney{
			Amount:            u.ReferralMoney.Amount,
			Currency:          u.ReferralMoney.Currency,
			CurrencySymbol:    u.ReferralMoney.CurrencySymbol,
			ReferralThreshold: u.ReferralMoney.ReferralThreshold,
		}
	}
	return m
}

type Authorizations struct {
	Method string   `json:"method"`
	Scopes []string `json:"scopes"`
}

func (a Authorizations) ToModel() model.Authorizations {
	scopes := make([]string, len(a.Scopes))
	copy(scopes, a.Scopes)
	return model.Authorizations{Method: a.Method, Scopes: scopes}
}

// optional treats JSON null, a missing key and "" alike.
func optional(s *string) rop.Option[string] {
	if s == nil || *s == "" {
		return rop.None[string]()
	}
	return rop.Some(*s)
}
