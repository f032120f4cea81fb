// Package coinbase is a client for the Coinbase REST API v2.
//
// Every call returns a rop.Result[error, T]. Failures carry one of the Err*
// sentinels or an *APIError holding the errors Coinbase sent back:
//
//	client, err := coinbase.New(coinbase.DefaultConfig())
//	...
//	price := client.Data().Price(ctx, model.PriceSpot, "BTC", "EUR")
//	fmt.Println(price.GetOrElse(model.Price{}).Amount)
//
// Data endpoints are public. User and account endpoints need an API key and
// secret; requests to them are signed with package auth.
package coinbase
