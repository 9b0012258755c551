package auth

import (
	"errors"
	"net/http"
)

// APIキーを受け取るリクエストヘッダー
const (
	HeaderAPIKey1 = "api-key-1"
	HeaderAPIKey2 = "api-key-2"
	HeaderAPIKey3 = "api-key-3"
)

var (
	ErrMissingAPIKey = errors.New("missing API key")
	ErrInvalidAPIKey = errors.New("invalid API key")
)

// Authorizer リクエストヘッダーから呼び出し可否を判定する認証方式
// nil を返した場合のみ通過させる
type Authorizer interface {
	Authorize(header http.Header) error
}

// StaticKeyAuthorizer 3つの共有シークレットと単純比較する認証
type StaticKeyAuthorizer struct {
	headers [3]string
	keys    [3]string
}

// NewStaticKeyAuthorizer api-key-1..3 に対応するシークレットを受け取る
func NewStaticKeyAuthorizer(key1, key2, key3 string) *StaticKeyAuthorizer {
	return &StaticKeyAuthorizer{
		headers: [3]string{HeaderAPIKey1, HeaderAPIKey2, HeaderAPIKey3},
		keys:    [3]string{key1, key2, key3},
	}
}

// Authorize 1つでもヘッダーが欠けていれば ErrMissingAPIKey、
// 全て揃っていて1つでも一致しなければ ErrInvalidAPIKey
func (a *StaticKeyAuthorizer) Authorize(header http.Header) error {
	var values [3]string
	for i, name := range a.headers {
		values[i] = header.Get(name)
		if values[i] == "" {
			return ErrMissingAPIKey
		}
	}

	for i := range values {
		if values[i] != a.keys[i] {
			return ErrInvalidAPIKey
		}
	}
	return nil
}
