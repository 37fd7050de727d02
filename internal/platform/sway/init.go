package sway

import (
	"context"

	"github.com/mj1618/autotiling/internal/platform"
)

func init() {
	platform.ConnectFunc = func(ctx context.Context, socketPath string) (platform.Session, error) {
		return Connect(ctx, socketPath)
	}
}
