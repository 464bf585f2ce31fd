package ports

import (
	"context"

	"github.com/kieeler123/cloud-service/internal/domain/account"
)

// SnapshotHub is the mutation-side view of the live subscription hub:
// services call Invalidate after every write so subscribers receive a fresh
// full snapshot.
type SnapshotHub interface {
	Invalidate(ctx context.Context, ownerUUID account.UUID)
}
