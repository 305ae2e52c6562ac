package requestid

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/rs/xid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoOutput struct {
	Body struct {
		RequestID string `json:"request_id"`
	}
}

func setup(t *testing.T) humatest.TestAPI {
	_, api := humatest.New(t)
	huma.Register(api, huma.Operation{
		OperationID: "echo",
		Method:      http.MethodGet,
		Path:        "/echo",
		Middlewares: huma.Middlewares{Middleware()},
	}, func(ctx context.Context, _ *struct{}) (*echoOutput, error) {
		out := &echoOutput{}
		out.Body.RequestID = FromContext(ctx)
		return out, nil
	})
	return api
}

func TestMiddleware_Generates(t *testing.T) {
	api := setup(t)

	resp := api.Get("/echo")

	require.Equal(t, http.StatusOK, resp.Code)
	id := resp.Header().Get(Header)
	_, err := xid.FromString(id)
	assert.NoError(t, err)
	assert.Contains(t, resp.Body.String(), id)
}

func TestMiddleware_KeepsIncoming(t *testing.T) {
	api := setup(t)

	resp := api.Get("/echo", Header+": trace-42")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "trace-42", resp.Header().Get(Header))
	assert.Contains(t, resp.Body.String(), "trace-42")
}

func TestFromContext_Empty(t *testing.T) {
	assert.Empty(t, FromContext(context.Background()))
}
