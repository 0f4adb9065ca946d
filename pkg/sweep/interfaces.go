package sweep

import (
	"context"
	"time"

	"github.com/carverauto/duocleanup/pkg/duo"
)

//go:generate mockgen -destination=mock_sweep.go -package=sweep github.com/carverauto/duocleanup/pkg/sweep Directory,PhoneAdmin

// Directory lists users with their enrolled phones.
type Directory interface {
	ListUsers(ctx context.Context) ([]duo.User, error)
}

// PhoneAdmin applies phone mutations against the remote directory.
type PhoneAdmin interface {
	UpdatePhoneName(ctx context.Context, phoneID, name string) error
	DeletePhone(ctx context.Context, phoneID string) error
}

// Clock abstracts time.Now for deterministic tests.
type Clock interface {
	Now() time.Time
}
