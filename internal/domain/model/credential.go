package model

// Credentialはusers.csvの1行。
// ユーザー名に一意制約はなく、ログインは先頭から最初に一致した行で決まる。
type Credential struct {
	Username string `json:"username"`
	Password string `json:"-"` // 平文保存（元システムの挙動を保持）
}
