package graphql

import (
	"github.com/dmitrijs2005/personql/internal/common"
	"github.com/dmitrijs2005/personql/internal/server/models"
)

type personResolver struct {
	p models.Person
}

func (r *personResolver) ID() string       { return r.p.ID }
func (r *personResolver) Name() string     { return r.p.Name }
func (r *personResolver) Email() string    { return r.p.Email }
func (r *personResolver) Password() string { return r.p.Password }
func (r *personResolver) Phone() *string   { return r.p.Phone }
func (r *personResolver) Avatar() *string  { return r.p.Avatar }

// Address is derived from street and city on every read.
func (r *personResolver) Address() *addressResolver {
	return &addressResolver{a: r.p.Address()}
}

func (r *personResolver) Favs() *[]*string {
	if r.p.Favs == nil {
		return nil
	}
	out := make([]*string, len(r.p.Favs))
	for i := range r.p.Favs {
		out[i] = &r.p.Favs[i]
	}
	return &out
}

func (r *personResolver) Angel() *bool {
	angel := r.p.Name == common.AngelName
	return &angel
}

type addressResolver struct {
	a models.Address
}

func (r *addressResolver) Street() string { return r.a.Street }
func (r *addressResolver) City() string   { return r.a.City }
