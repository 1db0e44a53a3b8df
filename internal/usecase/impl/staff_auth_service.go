package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "pizzeria/internal/delivery/context"
	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/domain/repository"
	"pizzeria/internal/domain/service"
	"pizzeria/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// staffAuthService replaces shared dashboard passwords with per-account
// credentials and revocable refresh sessions.
type staffAuthService struct {
	txManager    repository.TransactionManager
	staffRepo    repository.StaffRepository
	sessionRepo  repository.StaffSessionRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time
}

// StaffAuthServiceParams holds dependencies for StaffAuthService, injected by Fx.
type StaffAuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	StaffRepo    repository.StaffRepository
	SessionRepo  repository.StaffSessionRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewStaffAuthService is the constructor for staffAuthService.
func NewStaffAuthService(params StaffAuthServiceParams) usecase.StaffAuthUsecase {
	return &staffAuthService{
		txManager:    params.TxManager,
		staffRepo:    params.StaffRepo,
		sessionRepo:  params.SessionRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *staffAuthService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks the password outside any transaction (bcrypt is CPU-bound) and opens a session.
func (srv *staffAuthService) Login(ctx context.Context, username, password string) (*entity.StaffTokens, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	srv.log(ctx).Debug("Starting staff login", slog.String("username", username))

	staff, err := srv.staffRepo.FindStaffByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("username", username))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find staff account")
	}

	if !srv.hasher.Check(password, staff.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}
	if srv.hasher.NeedsRehash(staff.PasswordHash) {
		srv.log(ctx).Info("Password hash uses an outdated cost", slog.String("staff_id", staff.ID.String()))
	}

	tokens, err := srv.issueSession(ctx, srv.sessionRepo, staff)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Staff logged in", slog.String("staff_id", staff.ID.String()))

	return tokens, nil
}

// Refresh rotates: the presented session is deleted and a new pair is issued in the same transaction.
func (srv *staffAuthService) Refresh(ctx context.Context, refreshToken string) (*entity.StaffTokens, error) {
	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil || claims.Type != service.TokenTypeRefresh {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	var tokens *entity.StaffTokens
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.StaffSessionRepo()

		session, err := sessionRepo.FindSessionByHash(ctx, srv.tokenService.HashToken(refreshToken))
		if err != nil {
			if errors.Is(err, repository.ErrStaffSessionNotFound) {
				return domainerrors.ErrRefreshTokenInvalid
			}

			return errors.Wrap(err, "failed to find session")
		}
		if session.IsExpired(srv.now()) || session.StaffID != claims.StaffID {
			return domainerrors.ErrRefreshTokenInvalid
		}

		staff, err := repoFactory.StaffRepo().FindStaffByID(ctx, session.StaffID)
		if err != nil {
			if errors.Is(err, repository.ErrStaffNotFound) {
				return domainerrors.ErrRefreshTokenInvalid
			}

			return errors.Wrap(err, "failed to find staff account")
		}

		if err := sessionRepo.DeleteSession(ctx, session.ID); err != nil {
			return errors.Wrap(err, "failed to revoke previous session")
		}

		tokens, err = srv.issueSession(ctx, sessionRepo, staff)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to refresh staff session", slog.Any("error", err))

		return nil, err
	}

	return tokens, nil
}

// Logout revokes the session. An unknown token is treated as already revoked.
func (srv *staffAuthService) Logout(ctx context.Context, refreshToken string) error {
	session, err := srv.sessionRepo.FindSessionByHash(ctx, srv.tokenService.HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrStaffSessionNotFound) {
			return nil
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to find session")
	}

	if err := srv.sessionRepo.DeleteSession(ctx, session.ID); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete session")
	}
	srv.log(ctx).Info("Staff logged out", slog.String("staff_id", session.StaffID.String()))

	return nil
}

func (srv *staffAuthService) CreateStaff(ctx context.Context, input *usecase.CreateStaffInput) (*entity.StaffAccount, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be staff or manager")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	now := srv.now()
	staff := &entity.StaffAccount{
		ID:           uuid.New(),
		Username:     strings.ToLower(strings.TrimSpace(input.Username)),
		DisplayName:  strings.TrimSpace(input.DisplayName),
		PasswordHash: hash,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.staffRepo.CreateStaff(ctx, staff); err != nil {
		if errors.Is(err, repository.ErrDuplicateStaff) {
			return nil, domainerrors.ErrStaffAlreadyExists
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create staff account")
	}
	srv.log(ctx).Info("Staff account created", slog.String("username", staff.Username), slog.String("role", staff.Role.String()))

	return staff, nil
}

// ValidateAccess accepts only access tokens.
func (srv *staffAuthService) ValidateAccess(_ context.Context, accessToken string) (*service.Claims, error) {
	claims, err := srv.tokenService.ValidateToken(accessToken)
	if err != nil {
		return nil, errors.Wrap(err, "invalid access token")
	}
	if claims.Type != service.TokenTypeAccess {
		return nil, errors.New("token is not an access token")
	}

	return claims, nil
}

func (srv *staffAuthService) issueSession(ctx context.Context, sessionRepo repository.StaffSessionRepository, staff *entity.StaffAccount) (*entity.StaffTokens, error) {
	roles := entity.Roles{staff.Role}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(staff.ID, roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	now := srv.now()
	session := &entity.StaffSession{
		ID:        uuid.New(),
		StaffID:   staff.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: now.Add(srv.tokenService.GetRefreshTokenDuration()),
		CreatedAt: now,
	}
	if err := sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to store staff session")
	}

	return &entity.StaffTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(srv.tokenService.GetAccessTokenDuration().Seconds()),
		Staff:        staff,
	}, nil
}
