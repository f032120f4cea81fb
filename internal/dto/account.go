package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ib-77/gocoinbase/pkg/coinbase/model"
)

type Account struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Primary          bool             `json:"primary"`
	Type             string           `json:"type"`
	Currency         *AccountCurrency `json:"currency"`
	Balance          *AccountBalance  `json:"balance"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	Resource         string           `json:"resource"`
	ResourcePath     string           `json:"resource_path"`
	AllowDeposits    bool             `json:"allow_deposits"`
	AllowWithdrawals bool             `json:"allow_withdrawals"`
	RewardsAPY       string           `json:"rewards_apy"`
	Rewards          *Rewards         `json:"rewards"`
}

type AccountCurrency struct {
	Code                string `json:"code"`
	Name                string `json:"name"`
	Color               string `json:"color"`
	SortIndex           int    `json:"sort_index"`
	Exponent            int    `json:"exponent"`
	Type                string `json:"type"`
	AddressRegex        string `json:"address_regex"`
	AssetID             string `json:"asset_id"`
	DestinationTagName  string `json:"destination_tag_name"`
	DestinationTagRegex string `json:"destination_tag_regex"`
	Slug                string `json:"slug"`
}

type AccountBalance struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type Rewards struct {
	APY          string `json:"apy"`
	FormattedAPY string `json:"formatted_apy"`
	Label        string `json:"label"`
}

func (a Account) ToModel() model.Account {
	m := model.Account{
		ID:               a.ID,
		Name:             a.Name,
		Primary:          a.Primary,
		Type:             model.ParseAccountType(a.Type),
		CreatedAt:        a.CreatedAt.UTC(),
		UpdatedAt:        a.UpdatedAt.UTC(),
		ResourceType:     model.ParseResourceType(a.Resource),
		ResourcePath:     a.ResourcePath,
		AllowDeposits:    a.AllowDeposits,
		AllowWithdrawals: a.AllowWithdrawals,
		RewardsAPY:       a.RewardsAPY,
	}
	if c := a.Currency; c != nil {
		m.Currency = model.AccountCurrency{
			Code:                c.Code,
			Name:                c.Name,
			Color:               c.Color,
			SortIndex:           c.SortIndex,
			Exponent:            c.Exponent,
			Type:                c.Type,
			AddressRegex:        c.AddressRegex,
			AssetID:             c.AssetID,
			DestinationTagName:  c.DestinationTagName,
			DestinationTagRegex: c.DestinationTagRegex,
			Slug:                c.Slug,
		}
	}
	if a.Balance != nil {
		m.Balance = model.AccountBalance{Amount: a.Balance.Amount, Currency: a.Balance.Currency}
	}
	if a.Rewards != nil {
		m.Rewards = model.Rewards{APY: a.Rewards.APY, FormattedAPY: a.Rewards.FormattedAPY, Label: a.Rewards.Label}
	}
	return m
}
