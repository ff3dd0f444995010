package adaptor

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"net/http"
	"testing"

	"school-hub/biz/application/dto/basic"
	"school-hub/biz/infrastructure/config"
	"school-hub/biz/infrastructure/consts"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupKeys(t *testing.T) {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	priv, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)
	pub, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	config.SetConfig(&config.Config{
		Auth: config.Auth{
			SecretKey:    string(pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: priv})),
			PublicKey:    string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pub})),
			AccessExpire: 3600,
		},
	})
}

func decodeBody(t *testing.T, c *app.RequestContext) map[string]any {
	t.Helper()
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(c.Response.Body(), &body))
	return body
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{consts.ErrInvalidParams, http.StatusBadRequest},
		{consts.ErrInvalidObjectId, http.StatusBadRequest},
		{consts.ErrScheduleConflict, http.StatusConflict},
		{consts.ErrScheduleBusy, http.StatusConflict},
		{consts.ErrEmailExists, http.StatusConflict},
		{consts.ErrPermissionDenied, http.StatusForbidden},
		{consts.ErrForbidden, http.StatusForbidden},
		{consts.ErrNotFound, http.StatusNotFound},
		{consts.ErrNotAuthentication, http.StatusUnauthorized},
		{consts.ErrCreateSchedule, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusOf(tt.err), tt.err.Error())
	}
}

func TestPostProcess(t *testing.T) {
	ctx := context.Background()

	c := app.NewContext(0)
	PostProcess(ctx, c, nil, map[string]string{"id": "1"}, nil)
	assert.Equal(t, http.StatusOK, c.Response.StatusCode())
	body := decodeBody(t, c)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, map[string]any{"id": "1"}, body["data"])

	c = app.NewContext(0)
	PostProcessCreated(ctx, c, nil, map[string]string{"id": "1"}, nil)
	assert.Equal(t, http.StatusCreated, c.Response.StatusCode())

	c = app.NewContext(0)
	PostProcess(ctx, c, nil, nil, consts.ErrInvalidParams.WithDetails(map[string]string{"startTime": "bad"}))
	assert.Equal(t, http.StatusBadRequest, c.Response.StatusCode())
	body = decodeBody(t, c)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "validation error", body["error"])
	assert.Equal(t, map[string]any{"startTime": "bad"}, body["details"])

	c = app.NewContext(0)
	PostProcess(ctx, c, nil, nil, errors.New("mongo down"))
	assert.Equal(t, http.StatusInternalServerError, c.Response.StatusCode())
	body = decodeBody(t, c)
	assert.Equal(t, "internal server error", body["error"])
}

func TestTokenRoundTrip(t *testing.T) {
	setupKeys(t)

	token, exp, err := GenerateJwtToken("64b7f0c2a1b2c3d4e5f60718", consts.RoleTeacher)
	require.NoError(t, err)
	assert.NotZero(t, exp)

	meta, err := ParseUserMeta(consts.BearerPrefix + token)
	require.NoError(t, err)
	assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", meta.UserId)
	assert.Equal(t, "Teacher", meta.Role)

	_, err = ParseUserMeta("Bearer not-a-token")
	assert.Error(t, err)
	_, err = ParseUserMeta("")
	assert.Error(t, err)
}

func TestAuthenticate(t *testing.T) {
	setupKeys(t)
	token, _, err := GenerateJwtToken("64b7f0c2a1b2c3d4e5f60718", consts.RoleParent)
	require.NoError(t, err)

	var got *basic.UserMeta
	capture := func(ctx context.Context, c *app.RequestContext) {
		got = ExtractUserMeta(ctx)
	}

	c := app.NewContext(0)
	c.Request.Header.Set(consts.Authorization, consts.BearerPrefix+token)
	c.SetHandlers(app.HandlersChain{Authenticate(), capture})
	c.Next(context.Background())
	require.NotNil(t, got)
	assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", got.GetUserId())
	assert.Equal(t, "Parent", got.GetRole())

	got = nil
	c = app.NewContext(0)
	c.SetHandlers(app.HandlersChain{Authenticate(), capture})
	c.Next(context.Background())
	assert.Nil(t, got)
	assert.Equal(t, http.StatusUnauthorized, c.Response.StatusCode())
}

func TestExtractUserMeta_Empty(t *testing.T) {
	meta := ExtractUserMeta(context.Background())
	require.NotNil(t, meta)
	assert.Equal(t, "", meta.GetUserId())
}
