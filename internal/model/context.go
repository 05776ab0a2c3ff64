// internal/model/context.go
package model

// ctxKey はコンテキストキーの衝突を避けるための専用型です。
type ctxKey string

// UIDKey は認証ミドルウェアが検証済みユーザーIDを格納するコンテキストキーです。
const UIDKey ctxKey = "uid"
