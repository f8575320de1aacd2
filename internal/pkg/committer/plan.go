package committer

import "cloud.google.com/go/spanner"

// Plan collects the mutations of one logical write so they commit together.
type Plan struct {
	mutations []*spanner.Mutation
}

func NewPlan() *Plan {
	return &Plan{
		mutations: make([]*spanner.Mutation, 0, 1),
	}
}

// Add appends m; nil mutations are ignored so callers can add unconditionally.
func (p *Plan) Add(m *spanner.Mutation) {
	if m == nil {
		return
	}
	p.mutations = append(p.mutations, m)
}

func (p *Plan) IsEmpty() bool {
	return p == nil || len(p.mutations) == 0
}

func (p *Plan) Len() int {
	if p == nil {
		return 0
	}
	return len(p.mutations)
}

func (p *Plan) Mutations() []*spanner.Mutation {
	return p.mutations
}
