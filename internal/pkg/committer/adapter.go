package committer

import (
	"context"

	"cloud.google.com/go/spanner"
	"github.com/pkg/errors"
)

// Adapter applies plans against Spanner in a single read-write transaction,
// so a plan either commits entirely or not at all.
type Adapter struct {
	client *spanner.Client
	tag    string
}

// NewAdapter returns an Adapter whose transactions carry tag for Spanner
// query statistics. An empty tag is allowed.
func NewAdapter(client *spanner.Client, tag string) *Adapter {
	return &Adapter{client: client, tag: tag}
}

func (a *Adapter) Apply(ctx context.Context, plan *Plan) error {
	if plan.IsEmpty() {
		return nil
	}
	if a.client == nil {
		return errors.New("committer: spanner client is nil")
	}

	_, err := a.client.ReadWriteTransactionWithOptions(ctx, func(ctx context.Context, tx *spanner.ReadWriteTransaction) error {
		return tx.BufferWrite(plan.Mutations())
	}, spanner.TransactionOptions{TransactionTag: a.tag})
	if err != nil {
		return errors.Wrapf(err, "committer: apply %d mutation(s)", plan.Len())
	}
	return nil
}
