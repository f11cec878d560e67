package context

import (
	"context"

	"github.com/dimasprsty/storefront/constant"
	"github.com/dimasprsty/storefront/model"
)

// WithSession embeds the authenticated session into a request context.
func WithSession(ctx context.Context, sess *model.Session) context.Context {
	return context.WithValue(ctx, constant.SessionKey, sess)
}

// GetSession extracts the authenticated session from a request context.
func GetSession(ctx context.Context) (*model.Session, bool) {
	v := ctx.Value(constant.SessionKey)
	if v == nil {
		return nil, false
	}
	sess, ok := v.(*model.Session)
	return sess, ok
}
