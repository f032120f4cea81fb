package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/gocoinbase/pkg/coinbase/model"
	"github.com/ib-77/gocoinbase/pkg/rop"
)

var cmpOpts = cmp.AllowUnexported(rop.Option[string]{})

const accountBody = `{
  "pagination": {
    "ending_before": null,
    "starting_after": null,
    "previous_ending_before": null,
    "next_starting_after": "d16ec2d8-2c3e-5e2c-9d8f-5ed3b4d6c8a1",
    "limit": 25,
    "order": "desc",
    "previous_uri": null,
    "next_uri": "/v2/accounts?starting_after=d16ec2d8-2c3e-5e2c-9d8f-5ed3b4d6c8a1"
  },
  "data": [
    {
      "id": "58542935-67b5-56e1-a3f9-42686e07fa40",
      "name": "BTC Wallet",
      "primary": true,
      "type": "wallet",
      "currency": {"code": "BTC", "name": "Bitcoin", "color": "#F7931A", "sort_index": 100, "exponent": 8, "type": "crypto", "address_regex": "^([13][a-km-zA-HJ-NP-Z1-9]{25,34})$", "asset_id": "5b71fc48-3dd3-540c-809b-f8c94d0e68b5", "slug": "bitcoin"},
      "balance": {"amount": "0.00100000", "currency": "BTC"},
      "created_at": "2021-02-01T10:00:00Z",
      "updated_at": "2021-02-02T10:00:00Z",
      "resource": "account",
      "resource_path": "/v2/accounts/58542935-67b5-56e1-a3f9-42686e07fa40",
      "allow_deposits": true,
      "allow_withdrawals": true
    },
    {"id": "x", "type": "savings", "resource": "mystery"}
  ],
  "warnings": [{"id": "missing_version", "message": "Please supply API version", "url": "https://developers.coinbase.com/api#versioning"}]
}`

func TestPaginatedAccounts_ToPage(t *testing.T) {
	t.Parallel()

	var env Paginated[Account]
	require.NoError(t, json.Unmarshal([]byte(accountBody), &env))

	page := ToPage(env, Account.ToModel)

	assert.Equal(t, model.Pagination{
		Limit:             25,
		Order:             model.OrderDesc,
		NextStartingAfter: "d16ec2d8-2c3e-5e2c-9d8f-5ed3b4d6c8a1",
		NextURI:           "/v2/accounts?starting_after=d16ec2d8-2c3e-5e2c-9d8f-5ed3b4d6c8a1",
	}, page.Pagination)

	want := model.Account{
		ID:      "58542935-67b5-56e1-a3f9-42686e07fa40",
		Name:    "BTC Wallet",
		Primary: true,
		Type:    model.AccountWallet,
		Currency: model.AccountCurrency{
			Code: "BTC", Name: "Bitcoin", Color: "#F7931A", SortIndex: 100, Exponent: 8, Type: "crypto",
			AddressRegex: "^([13][a-km-zA-HJ-NP-Z1-9]{25,34})$", AssetID: "5b71fc48-3dd3-540c-809b-f8c94d0e68b5", Slug: "bitcoin",
		},
		Balance:          model.AccountBalance{Amount: decimal.RequireFromString("0.001"), Currency: "BTC"},
		CreatedAt:        time.Date(2021, 2, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:        time.Date(2021, 2, 2, 10, 0, 0, 0, time.UTC),
		ResourceType:     model.ResourceAccount,
		ResourcePath:     "/v2/accounts/58542935-67b5-56e1-a3f9-42686e07fa40",
		AllowDeposits:    true,
		AllowWithdrawals: true,
	}
	require.Len(t, page.Data, 2)
	if diff := cmp.Diff(want, page.Data[0]); diff != "" {
		t.Fatalf("account mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, model.AccountUnknown, page.Data[1].Type)
	assert.Equal(t, model.ResourceUnknown, page.Data[1].ResourceType)

	assert.Equal(t, []model.Warning{{
		ID: "missing_version", Message: "Please supply API version", URL: "https://developers.coinbase.com/api#versioning",
	}}, Warnings(env.Warnings))
}

func TestUser_ToModel(t *testing.T) {
	t.Parallel()

	body := `{"data": {
		"id": "9da7a204-544e-5fd1-9a12-61176c5d4cd8",
		"name": "User One",
		"username": "user1",
		"profile_location": null,
		"profile_bio": "",
		"resource": "user",
		"resource_path": "/v2/user",
		"time_zone": "Pacific Time (US & Canada)",
		"native_currency": "USD",
		"created_at": "2015-01-31T20:49:02Z",
		"country": {"code": "FR", "name": "France", "is_in_europe": true},
		"tiers": {"completed_description": "Level 3"},
		"referral_money": {"amount": "10.00", "currency": "EUR", "currency_symbol": "€", "referral_threshold": "100.00"}
	}}`

	var env Data[User]
	require.NoError(t, json.Unmarshal([]byte(body), &env))

	want := model.User{
		ID:              "9da7a204-544e-5fd1-9a12-61176c5d4cd8",
		Name:            "User One",
		ResourceType:    model.ResourceUser,
		ResourcePath:    "/v2/user",
		TimeZone:        "Pacific Time (US & Canada)",
		NativeCurrency:  "USD",
		Username:        rop.Some("user1"),
		ProfileLocation: rop.None[string](),
		ProfileBio:      rop.None[string](),
		ProfileURL:      rop.None[string](),
		UserType:        rop.None[string](),
		State:           rop.None[string](),
		CreatedAt:       time.Date(2015, 1, 31, 20, 49, 2, 0, time.UTC),
		Country:         model.Country{Code: "FR", Name: "France", InEurope: true},
		Tiers:           model.Tiers{CompletedDescription: "Level 3"},
		ReferralMoney:   model.ReferralMoney{Amount: "10.00", Currency: "EUR", CurrencySymbol: "€", ReferralThreshold: "100.00"},
	}
	if diff := cmp.Diff(want, env.Data.ToModel(), cmpOpts); diff != "" {
		t.Fatalf("user mismatch (-want +got):\n%s", diff)
	}
}

func TestDataModels(t *testing.T) {
	t.Parallel()

	var rates Data[ExchangeRates]
	require.NoError(t, json.Unmarshal([]byte(`{"data":{"currency":"BTC","rates":{"EUR":"40000.12","USD":"48000"}}}`), &rates))
	m := rates.Data.ToModel()
	assert.Equal(t, "BTC", m.Currency)
	assert.True(t, decimal.RequireFromString("40000.12").Equal(m.Rates["EUR"]))

	var price Data[Price]
	require.NoError(t, json.Unmarshal([]byte(`{"data":{"base":"BTC","currency":"EUR","amount":"40000.12"}}`), &price))
	p := price.Data.ToModel(model.PriceSpot)
	assert.Equal(t, "BTC-EUR", model.CurrencyPair{Base: p.BaseCurrency, Target: p.TargetCurrency}.String())
	assert.Equal(t, model.PriceSpot, p.PriceType)

	var tm Data[Time]
	require.NoError(t, json.Unmarshal([]byte(`{"data":{"iso":"2021-02-12T10:40:14Z","epoch":1613126414}}`), &tm))
	assert.Equal(t, model.Time{ISO: time.Unix(1613126414, 0).UTC(), Epoch: 1613126414}, tm.Data.ToModel())

	var cur Data[[]Currency]
	require.NoError(t, json.Unmarshal([]byte(`{"data":[{"id":"EUR","name":"Euro","min_size":"0.01"}]}`), &cur))
	cs := Currencies(cur.Data)
	require.Len(t, cs, 1)
	assert.True(t, decimal.RequireFromString("0.01").Equal(cs[0].MinSize))
}

func TestErrors_ToModel(t *testing.T) {
	t.Parallel()

	var many Errors
	require.NoError(t, json.Unmarshal([]byte(`{"errors":[{"id":"not_found","message":"Not found"}]}`), &many))
	assert.Equal(t, []model.CoinbaseError{{ID: "not_found", Message: "Not found"}}, many.ToModel())

	var single Errors
	require.NoError(t, json.Unmarshal([]byte(`{"error":"invalid_token","error_description":"The access token is invalid"}`), &single))
	assert.Equal(t, []model.CoinbaseError{{ID: "invalid_token", Message: "The access token is invalid"}}, single.ToModel())

	assert.Nil(t, Errors{}.ToModel())
	assert.Equal(t, []model.CoinbaseError{{ID: "http_502", Message: "bad gateway"}}, Synthesized(502, "bad gateway"))
}
