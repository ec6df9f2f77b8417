package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/travel-budget/internal"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

type mockUserRepository struct {
	hashes  map[string]string
	ids     map[string]string
	byID    map[string]*User
	repoErr error
}

func newMockUserRepository() *mockUserRepository {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct_password"), bcrypt.MinCost)

	return &mockUserRepository{
		hashes: map[string]string{
			"traveler@example.com": string(hashed),
		},
		ids: map[string]string{
			"traveler@example.com": "user-1",
		},
		byID: map[string]*User{
			"user-1": {ID: "user-1", Email: "traveler@example.com", Name: "Traveler"},
		},
	}
}

func (m *mockUserRepository) GetCredentialsByEmail(email string) (string, string, error) {
	if m.repoErr != nil {
		return "", "", m.repoErr
	}
	hash, ok := m.hashes[email]
	if !ok {
		return "", "", errors.New("user not found")
	}
	return m.ids[email], hash, nil
}

func (m *mockUserRepository) GetByID(userID string) (*User, error) {
	if m.repoErr != nil {
		return nil, m.repoErr
	}
	u, ok := m.byID[userID]
	if !ok {
		return nil, errors.New("user not found")
	}
	return u, nil
}

var _ = ginkgo.Describe("Auth Service", func() {
	var (
		repo    *mockUserRepository
		service *Service
	)

	ginkgo.BeforeEach(func() {
		repo = newMockUserRepository()
		tokenGen := NewJWTTokenGenerator("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
		service = NewService(repo, tokenGen)
	})

	ginkgo.Describe("Authenticate", func() {
		ginkgo.It("returns a token pair for valid credentials", func() {
			tokens, err := service.Authenticate(LoginDTO{
				Email:    "traveler@example.com",
				Password: "correct_password",
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(tokens.AccessToken).ToNot(gomega.BeEmpty())
			gomega.Expect(tokens.RefreshToken).ToNot(gomega.BeEmpty())
			gomega.Expect(tokens.AccessToken).ToNot(gomega.Equal(tokens.RefreshToken))
		})

		ginkgo.It("rejects a wrong password", func() {
			_, err := service.Authenticate(LoginDTO{
				Email:    "traveler@example.com",
				Password: "wrong_password",
			})

			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidCredentials))
		})

		ginkgo.It("rejects an unknown email", func() {
			_, err := service.Authenticate(LoginDTO{
				Email:    "nobody@example.com",
				Password: "correct_password",
			})

			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidCredentials))
		})

		ginkgo.It("rejects missing fields before touching the repository", func() {
			repo.repoErr = errors.New("should not be called")

			_, err := service.Authenticate(LoginDTO{Email: "traveler@example.com"})

			gomega.Expect(err).To(gomega.HaveOccurred())
			_, isAppErr := internal.IsAppError(err)
			gomega.Expect(isAppErr).To(gomega.BeTrue())
		})
	})

	ginkgo.Describe("ValidateAccessToken", func() {
		ginkgo.It("returns claims for a valid access token", func() {
			tokens, err := service.Authenticate(LoginDTO{
				Email:    "traveler@example.com",
				Password: "correct_password",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			claims, err := service.ValidateAccessToken(tokens.AccessToken)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(claims.UserID).To(gomega.Equal("user-1"))
			gomega.Expect(claims.Email).To(gomega.Equal("traveler@example.com"))
		})

		ginkgo.It("rejects a refresh token used as access token", func() {
			tokens, err := service.Authenticate(LoginDTO{
				Email:    "traveler@example.com",
				Password: "correct_password",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.ValidateAccessToken(tokens.RefreshToken)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidToken))
		})

		ginkgo.It("rejects garbage tokens", func() {
			_, err := service.ValidateAccessToken("not-a-token")
			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidToken))
		})

		ginkgo.It("rejects an expired token", func() {
			expiredGen := NewJWTTokenGenerator("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
			expiredGen.AccessTokenTTL = -time.Minute
			token, err := expiredGen.GenerateAccessToken("user-1", "traveler@example.com")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrTokenExpired))
		})
	})

	ginkgo.Describe("RefreshTokens", func() {
		ginkgo.It("issues a new pair from a valid refresh token", func() {
			tokens, err := service.Authenticate(LoginDTO{
				Email:    "traveler@example.com",
				Password: "correct_password",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			refreshed, err := service.RefreshTokens(tokens.RefreshToken)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(refreshed.AccessToken).ToNot(gomega.BeEmpty())
			gomega.Expect(refreshed.RefreshToken).ToNot(gomega.BeEmpty())
		})

		ginkgo.It("rejects an access token used as refresh token", func() {
			tokens, err := service.Authenticate(LoginDTO{
				Email:    "traveler@example.com",
				Password: "correct_password",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.RefreshTokens(tokens.AccessToken)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidToken))
		})

		ginkgo.It("rejects a refresh token for a deleted user", func() {
			tokens, err := service.Authenticate(LoginDTO{
				Email:    "traveler@example.com",
				Password: "correct_password",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			delete(repo.byID, "user-1")

			_, err = service.RefreshTokens(tokens.RefreshToken)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidToken))
		})
	})
})
