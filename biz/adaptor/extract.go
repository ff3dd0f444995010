package adaptor

import (
	"context"
	"errors"
	"strings"
	"time"

	"school-hub/biz/application/dto/basic"
	"school-hub/biz/infrastructure/config"
	"school-hub/biz/infrastructure/consts"
	"school-hub/biz/infrastructure/util"
	"school-hub/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/golang-jwt/jwt/v4"
	"github.com/mitchellh/mapstructure"
)

type ctxKey string

const (
	hertzContext ctxKey = "hertz_context"
	userMetaKey  ctxKey = "user_meta"
)

func InjectContext(ctx context.Context, c *app.RequestContext) context.Context {
	return context.WithValue(ctx, hertzContext, c)
}

func ExtractContext(ctx context.Context) (*app.RequestContext, error) {
	c, ok := ctx.Value(hertzContext).(*app.RequestContext)
	if !ok {
		return nil, errors.New("hertz context not found")
	}
	return c, nil
}

// WithUserMeta 鉴权中间件解析令牌后写入 ctx
func WithUserMeta(ctx context.Context, meta *basic.UserMeta) context.Context {
	return context.WithValue(ctx, userMetaKey, meta)
}

// ExtractUserMeta 优先读取中间件写入的用户, 否则从请求头解析; 失败时返回空用户
func ExtractUserMeta(ctx context.Context) (user *basic.UserMeta) {
	if meta, ok := ctx.Value(userMetaKey).(*basic.UserMeta); ok && meta != nil {
		return meta
	}
	user = new(basic.UserMeta)
	var err error
	defer func() {
		if err != nil {
			log.CtxInfo(ctx, "extract user meta fail, err=%v", err)
		}
	}()
	c, err := ExtractContext(ctx)
	if err != nil {
		return
	}
	meta, err := ParseUserMeta(string(c.GetHeader(consts.Authorization)))
	if err != nil {
		return
	}
	return meta
}

// ParseUserMeta 校验 ES256 令牌并解析 userId 与 role
func ParseUserMeta(tokenString string) (*basic.UserMeta, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, consts.BearerPrefix))
	if tokenString == "" {
		return nil, errors.New("token is empty")
	}
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodECDSA); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwt.ParseECPublicKeyFromPEM([]byte(config.GetConfig().Auth.PublicKey))
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("token is not valid")
	}
	user := new(basic.UserMeta)
	if err = mapstructure.Decode(map[string]any(claims), user); err != nil {
		return nil, err
	}
	if user.UserId == "" {
		return nil, errors.New("token has no userId")
	}
	log.Info("userMeta=%s", util.JSONF(user))
	return user, nil
}

// GenerateJwtToken 生成jwt
/*
生成 ECDSA 私钥: openssl ecparam -genkey -name prime256v1 -noout -out private_key.pem
从私钥中提取公钥: openssl ec -in private_key.pem -pubout -out public_key.pem
*/
func GenerateJwtToken(userId string, role consts.Role) (string, int64, error) {
	key, err := jwt.ParseECPrivateKeyFromPEM([]byte(config.GetConfig().Auth.SecretKey))
	if err != nil {
		return "", 0, err
	}
	iat := time.Now().Unix()
	exp := iat + config.GetConfig().Auth.AccessExpire
	claims := make(jwt.MapClaims)
	claims["exp"] = exp
	claims["iat"] = iat
	claims["userId"] = userId
	claims["role"] = role.String()
	token := jwt.New(jwt.SigningMethodES256)
	token.Claims = claims
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", 0, err
	}
	return tokenString, exp, nil
}
