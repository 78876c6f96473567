package errutil

import (
	"context"
	"fmt"

	"github.com/aavshr/fixcache/pkg/utils/logging"
	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
)

// HandleError reports err to Sentry and logs it. goerr values attached to err become Sentry extras
// and the request ID of ctx becomes a tag. A nil err is ignored.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		reqID, _ := logging.CtxRequestID(ctx)
		scope.SetTag("request_id", reqID.String())

		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		"error", err,
		"sentry.EventID", evID,
	)
}
