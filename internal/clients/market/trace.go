package market

import (
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// TraceIDHeader carries a fresh identifier on every outbound market call.
const TraceIDHeader = "X-Trace-Id"

// traceIDMiddleware tags each request with a new trace id.
func traceIDMiddleware(_ *resty.Client, r *resty.Request) error {
	r.SetHeader(TraceIDHeader, uuid.NewString())
	return nil
}
