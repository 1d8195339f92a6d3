package service

import (
	"github.com/shopspring/decimal"

	"github.com/harshadbhandure/money-matters/internal/auth"
	"github.com/harshadbhandure/money-matters/internal/ledger"
	"github.com/harshadbhandure/money-matters/internal/models"
	"github.com/harshadbhandure/money-matters/pkg/api"
)

// money converts a wire amount to a decimal. The shortest decimal that
// round-trips the float is used, so 33.33 stays 33.33.
func money(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func wireMoney(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

func toAPIUser(u models.UserSummary) *api.User {
	return &api.User{Id: u.ID, Email: u.Email, Name: u.Name}
}

func toAPIAuthBundle(b *auth.AuthBundle) *api.AuthBundle {
	return &api.AuthBundle{
		AccessToken:  b.AccessToken,
		RefreshToken: b.RefreshToken,
		User:         toAPIUser(b.User),
	}
}

func toAPIGroup(g *models.Group) *api.Group {
	members := make([]*api.User, len(g.Members))
	for i, m := range g.Members {
		members[i] = toAPIUser(m)
	}
	return &api.Group{
		Id:          g.ID,
		Name:        g.Name,
		CreatedById: g.CreatedByID,
		Members:     members,
		CreatedAt:   g.CreatedAt.Unix(),
	}
}

func toAPIExpense(e *models.Expense) *api.Expense {
	splits := make([]*api.Split, len(e.Splits))
	for i, s := range e.Splits {
		splits[i] = &api.Split{
			Id:       s.ID,
			UserId:   s.UserID,
			UserName: s.UserName,
			Share:    wireMoney(s.Share),
			Paid:     s.Paid,
		}
	}
	return &api.Expense{
		Id:          e.ID,
		GroupId:     e.GroupID,
		PaidById:    e.PaidByID,
		PaidByName:  e.PaidByName,
		Amount:      wireMoney(e.Amount),
		Description: e.Description,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt.Unix(),
		Splits:      splits,
	}
}

func toAPISplits(splits []ledger.SplitInput) []*api.Split {
	out := make([]*api.Split, len(splits))
	for i, s := range splits {
		out[i] = &api.Split{UserId: s.UserID, Share: wireMoney(s.Share)}
	}
	return out
}
