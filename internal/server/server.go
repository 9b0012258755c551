package server

import (
	"net/http"
	"time"
)

// コールドスタートに備えて3分待つ
const requestTimeout = 180_000 * time.Millisecond

// New タイムアウトを設定したhttp.Serverを作成する
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: requestTimeout,
		ReadTimeout:       requestTimeout,
		WriteTimeout:      requestTimeout,
		IdleTimeout:       requestTimeout,
	}
}
