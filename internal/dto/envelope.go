package dto

import (
	"fmt"

	"github.com/ib-77/gocoinbase/pkg/coinbase/model"
)

type Warning struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

func (w Warning) ToModel() model.Warning {
	return model.Warning{ID: w.ID, Message: w.Message, URL: w.URL}
}

func Warnings(ws []Warning) []model.Warning {
	return mapAll(ws, Warning.ToModel)
}

// Data is the {"data": ..., "warnings": [...]} envelope of single resources.
type Data[T any] struct {
	Data     T         `json:"data"`
	Warnings []Warning `json:"warnings"`
}

// Paginated is the envelope of list endpoints.
type Paginated[T any] struct {
	Pagination *Pagination `json:"pagination"`
	Data       []T         `json:"data"`
	Warnings   []Warning   `json:"warnings"`
}

type Pagination struct {
	Limit                int    `json:"limit"`
	Order                string `json:"order"`
	EndingBefore         string `json:"ending_before"`
	StartingAfter        string `json:"starting_after"`
	PreviousEndingBefore string `json:"previous_ending_before"`
	NextStartingAfter    string `json:"next_starting_after"`
	PreviousURI          string `json:"previous_uri"`
	NextURI              string `json:"next_uri"`
}

func (p *Pagination) ToModel() model.Pagination {
	if p == nil {
		return model.Pagination{Order: model.OrderDesc}
	}
	return model.Pagination{
		Limit:                p.Limit,
		Order:                model.ParseOrder(p.Order),
		EndingBefore:         p.EndingBefore,
		StartingAfter:        p.StartingAfter,
		PreviousEndingBefore: p.PreviousEndingBefore,
		NextStartingAfter:    p.NextStartingAfter,
		PreviousURI:          p.PreviousURI,
		NextURI:              p.NextURI,
	}
}

// ToPage maps a paginated envelope with toModel applied to every item.
func ToPage[T, M any](p Paginated[T], toModel func(T) M) model.Page[M] {
	return model.Page[M]{
		Pagination: p.Pagination.ToModel(),
		Data:       mapAll(p.Data, toModel),
	}
}

type Error struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

func (e Error) ToModel() model.CoinbaseError {
	return model.CoinbaseError{ID: e.ID, Message: e.Message, URL: e.URL}
}

// Errors covers both failure bodies Coinbase sends: the usual errors array
// and the single OAuth-style error object.
type Errors struct {
	Errors           []Error `json:"errors"`
	Error            string  `json:"error"`
	ErrorDescription string  `json:"error_description"`
}

// ToModel returns nil when the body carried no error at all.
func (e Errors) ToModel() []model.CoinbaseError {
	if len(e.Errors) > 0 {
		return mapAll(e.Errors, Error.ToModel)
	}
	if e.Error != "" {
		return []model.CoinbaseError{{ID: e.Error, Message: e.ErrorDescription}}
	}
	return nil
}

// Synthesized builds the single error used when a failure body cannot be
// decoded.
func Synthesized(status int, body string) []model.CoinbaseError {
	return []model.CoinbaseError{{ID: fmt.Sprintf("http_%d", status), Message: body}}
}

func mapAll[T, M any](in []T, f func(T) M) []M {
	out := make([]M, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}
