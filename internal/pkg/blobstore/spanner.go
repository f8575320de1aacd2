package blobstore

import (
	"context"

	"cloud.google.com/go/spanner"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"

	"github.com/murkotick/storefront-cart-service/internal/models/m_cart_table"
	"github.com/murkotick/storefront-cart-service/internal/pkg/clock"
	"github.com/murkotick/storefront-cart-service/internal/pkg/committer"
)

// Applier applies a mutation plan atomically.
type Applier interface {
	Apply(ctx context.Context, plan *committer.Plan) error
}

// Spanner stores the blob as one row of the cart_tables table, keyed by the
// storage key. Writes are a single InsertOrUpdate applied in one transaction.
type Spanner struct {
	client    *spanner.Client
	committer Applier
	clock     clock.Clock
	key       string
}

func NewSpanner(client *spanner.Client, cm Applier, clk clock.Clock, key string) *Spanner {
	return &Spanner{client: client, committer: cm, clock: clk, key: key}
}

func (s *Spanner) Read(ctx context.Context) ([]byte, error) {
	stmt := spanner.Statement{
		SQL: `SELECT payload
		      FROM cart_tables
		      WHERE storage_key = @key`,
		Params: map[string]interface{}{"key": s.key},
	}

	iter := s.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.Wrapf(ErrNotFound, "spanner key %s", s.key)
	}
	if err != nil {
		return nil, errors.Wrap(err, "blobstore: spanner read")
	}

	var payload []byte
	if err := row.Columns(&payload); err != nil {
		return nil, errors.Wrap(err, "blobstore: spanner decode row")
	}
	return payload, nil
}

func (s *Spanner) Write(ctx context.Context, data []byte) error {
	plan := committer.NewPlan()
	plan.Add(m_cart_table.UpsertMutation(m_cart_table.BuildUpsertMap(s.key, data, s.clock.Now())))
	if err := s.committer.Apply(ctx, plan); err != nil {
		return errors.Wrap(err, "blobstore: spanner write")
	}
	return nil
}
