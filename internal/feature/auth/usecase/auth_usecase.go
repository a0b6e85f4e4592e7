package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// OperatorSubject はオペレータートークンのsubクレームに使われる値です。
const OperatorSubject = "operator"

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたサブジェクトの署名済みJWTトークンを生成します。
	GenerateToken(subject string) (string, error)
}

// authUsecase は単一オペレーターの認証ロジックを実装します。
// ユーザーテーブルは持たず、環境変数で設定されたbcryptハッシュと照合します。
type authUsecase struct {
	passwordHash string
	jwtGenerator JWTGenerator
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
// passwordHashはオペレーターパスワードのbcryptハッシュです。
func NewAuthUsecase(passwordHash string, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		passwordHash: passwordHash,
		jwtGenerator: jwtGenerator,
	}
}

// Login はオペレーターを認証し、成功時にJWTトークンを返します。
func (u *authUsecase) Login(ctx context.Context, password string) (string, error) {
	if u.passwordHash == "" {
		return "", ErrNotConfigured
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := u.jwtGenerator.GenerateToken(OperatorSubject)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
