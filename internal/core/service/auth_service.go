package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/estately/apartments-api/internal/api/metrics"
	"github.com/estately/apartments-api/internal/core/domain"
	"github.com/estately/apartments-api/internal/core/ports"
)

// AuthService implements registration, login and stateless token handling.
// Tokens are HS256 JWTs with {sub, exp} claims; there is no revocation, an
// issued token stays valid until it expires even if the account changes.
type AuthService struct {
	users     ports.UserRepository
	throttle  ports.LoginThrottle
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, throttle ports.LoginThrottle, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		throttle:  throttle,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Roles:        []string{domain.RoleClient},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			verr := domain.NewValidationError()
			verr.Add("email", "has already been taken")
			return nil, "", verr
		}
		return nil, "", err
	}

	token, err := s.mintToken(created.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return created, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		blocked, err := s.throttle.Blocked(ctx, email)
		if err != nil {
			// Throttle backend trouble must not lock everyone out.
			s.logger.Warn().Err(err).Msg("login throttle unavailable")
		} else if blocked {
			s.logger.Warn().Str("email", email).Msg("login blocked by throttle")
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return "", domain.ErrInvalidCredentials
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Same failure as a wrong password: do not leak which
			// emails have accounts.
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		if s.throttle != nil {
			if err := s.throttle.RecordFailure(ctx, email); err != nil {
				s.logger.Warn().Err(err).Msg("login throttle record failed")
			}
		}
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	token, err := s.mintToken(user.ID)
	if err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return token, nil
}

func (s *AuthService) ValidateToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			metrics.TokenRejectionsTotal.WithLabelValues("expired").Inc()
			return "", domain.ErrTokenExpired
		}
		// A bad signature means someone presented a token we never
		// minted. Log it as suspicious; the caller still just gets 401.
		s.logger.Warn().Err(err).Msg("rejected token with invalid signature")
		metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
		return "", domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
		return "", domain.ErrTokenInvalid
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
		return "", domain.ErrTokenInvalid
	}
	return sub, nil
}

func (s *AuthService) ResolveCaller(ctx context.Context, userID string) (domain.Caller, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Valid token for a deleted account: treat the bearer as
			// anonymous rather than failing the request.
			return domain.Anonymous, nil
		}
		return domain.Anonymous, err
	}
	return user.AsCaller(), nil
}

func (s *AuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *AuthService) mintToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
