package impl

import (
	"context"
	"testing"
	"time"

	"pizzeria/internal/domain/entity"
	domainerrors "pizzeria/internal/domain/errors"
	"pizzeria/internal/domain/repository"
	"pizzeria/internal/domain/service"
	mockRepo "pizzeria/internal/mocks/repository"
	mockSvc "pizzeria/internal/mocks/service"
	"pizzeria/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type staffAuthFixtures struct {
	service     *staffAuthService
	txManager   *mockRepo.MockTransactionManager
	repoFactory *mockRepo.MockRepositoryFactory
	staffRepo   *mockRepo.MockStaffRepository
	sessionRepo *mockRepo.MockStaffSessionRepository
	hasher      *mockSvc.MockPasswordHasher
	tokens      *mockSvc.MockTokenService
}

func createTestStaffAuthService(t *testing.T) staffAuthFixtures {
	t.Helper()

	fx := staffAuthFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		repoFactory: mockRepo.NewMockRepositoryFactory(t),
		staffRepo:   mockRepo.NewMockStaffRepository(t),
		sessionRepo: mockRepo.NewMockStaffSessionRepository(t),
		hasher:      mockSvc.NewMockPasswordHasher(t),
		tokens:      mockSvc.NewMockTokenService(t),
	}
	fx.service = NewStaffAuthService(StaffAuthServiceParams{
		TxManager:    fx.txManager,
		StaffRepo:    fx.staffRepo,
		SessionRepo:  fx.sessionRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokens,
		Logger:       newDiscardLogger(),
	}).(*staffAuthService)
	fx.service.now = fixedClock()

	fx.tokens.EXPECT().HashToken(mock.Anything).RunAndReturn(func(token string) string { return "hash:" + token }).Maybe()
	fx.tokens.EXPECT().GetAccessTokenDuration().Return(15 * time.Minute).Maybe()
	fx.tokens.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour).Maybe()

	return fx
}

func newTestStaff() *entity.StaffAccount {
	return &entity.StaffAccount{
		ID:           uuid.New(),
		Username:     "marina",
		DisplayName:  "Marina",
		PasswordHash: "bcrypt-hash",
		Role:         entity.RoleManager,
	}
}

func TestStaffAuthService_Login(t *testing.T) {
	fx := createTestStaffAuthService(t)
	staff := newTestStaff()

	fx.staffRepo.EXPECT().FindStaffByUsername(mock.Anything, "marina").Return(staff, nil)
	fx.hasher.EXPECT().Check("s3cret-pass", "bcrypt-hash").Return(true)
	fx.hasher.EXPECT().NeedsRehash("bcrypt-hash").Return(false)
	fx.tokens.EXPECT().GenerateTokens(staff.ID, []string{"manager"}).Return("access", "refresh", nil)
	fx.sessionRepo.EXPECT().
		CreateSession(mock.Anything, mock.MatchedBy(func(s *entity.StaffSession) bool {
			return s.StaffID == staff.ID &&
				s.TokenHash == "hash:refresh" &&
				s.ExpiresAt.Equal(testNow.Add(7*24*time.Hour))
		})).
		Return(nil)

	tokens, err := fx.service.Login(context.Background(), "  Marina ", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "access", tokens.AccessToken)
	assert.Equal(t, "refresh", tokens.RefreshToken)
	assert.Equal(t, int64(900), tokens.ExpiresIn)
	assert.Equal(t, staff, tokens.Staff)
}

func TestStaffAuthService_LoginFailures(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		fx := createTestStaffAuthService(t)
		fx.staffRepo.EXPECT().FindStaffByUsername(mock.Anything, "ghost").Return(nil, repository.ErrStaffNotFound)

		_, err := fx.service.Login(context.Background(), "ghost", "whatever1")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestStaffAuthService(t)
		fx.staffRepo.EXPECT().FindStaffByUsername(mock.Anything, "marina").Return(newTestStaff(), nil)
		fx.hasher.EXPECT().Check("wrong-pass", "bcrypt-hash").Return(false)

		_, err := fx.service.Login(context.Background(), "marina", "wrong-pass")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func (fx staffAuthFixtures) runTransactions() {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		})
	fx.repoFactory.EXPECT().StaffRepo().Return(fx.staffRepo).Maybe()
	fx.repoFactory.EXPECT().StaffSessionRepo().Return(fx.sessionRepo).Maybe()
}

func TestStaffAuthService_RefreshRotatesSession(t *testing.T) {
	fx := createTestStaffAuthService(t)
	staff := newTestStaff()
	session := &entity.StaffSession{
		ID:        uuid.New(),
		StaffID:   staff.ID,
		TokenHash: "hash:old-refresh",
		ExpiresAt: testNow.Add(time.Hour),
	}

	fx.runTransactions()
	fx.tokens.EXPECT().ValidateToken("old-refresh").Return(&service.Claims{StaffID: staff.ID, Type: service.TokenTypeRefresh}, nil)
	fx.sessionRepo.EXPECT().FindSessionByHash(mock.Anything, "hash:old-refresh").Return(session, nil)
	fx.staffRepo.EXPECT().FindStaffByID(mock.Anything, staff.ID).Return(staff, nil)
	fx.sessionRepo.EXPECT().DeleteSession(mock.Anything, session.ID).Return(nil)
	fx.tokens.EXPECT().GenerateTokens(staff.ID, []string{"manager"}).Return("new-access", "new-refresh", nil)
	fx.sessionRepo.EXPECT().
		CreateSession(mock.Anything, mock.MatchedBy(func(s *entity.StaffSession) bool {
			return s.TokenHash == "hash:new-refresh"
		})).
		Return(nil)

	tokens, err := fx.service.Refresh(context.Background(), "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-refresh", tokens.RefreshToken)
}

func TestStaffAuthService_RefreshRejects(t *testing.T) {
	t.Run("access token", func(t *testing.T) {
		fx := createTestStaffAuthService(t)
		fx.tokens.EXPECT().ValidateToken("access").Return(&service.Claims{Type: service.TokenTypeAccess}, nil)

		_, err := fx.service.Refresh(context.Background(), "access")
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("revoked session", func(t *testing.T) {
		fx := createTestStaffAuthService(t)
		fx.runTransactions()
		fx.tokens.EXPECT().ValidateToken("refresh").Return(&service.Claims{StaffID: uuid.New(), Type: service.TokenTypeRefresh}, nil)
		fx.sessionRepo.EXPECT().FindSessionByHash(mock.Anything, "hash:refresh").Return(nil, repository.ErrStaffSessionNotFound)

		_, err := fx.service.Refresh(context.Background(), "refresh")
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("expired session", func(t *testing.T) {
		fx := createTestStaffAuthService(t)
		staffID := uuid.New()
		fx.runTransactions()
		fx.tokens.EXPECT().ValidateToken("refresh").Return(&service.Claims{StaffID: staffID, Type: service.TokenTypeRefresh}, nil)
		fx.sessionRepo.EXPECT().FindSessionByHash(mock.Anything, "hash:refresh").Return(&entity.StaffSession{
			ID:        uuid.New(),
			StaffID:   staffID,
			ExpiresAt: testNow.Add(-time.Second),
		}, nil)

		_, err := fx.service.Refresh(context.Background(), "refresh")
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})
}

func TestStaffAuthService_Logout(t *testing.T) {
	fx := createTestStaffAuthService(t)
	session := &entity.StaffSession{ID: uuid.New(), StaffID: uuid.New()}

	fx.sessionRepo.EXPECT().FindSessionByHash(mock.Anything, "hash:known").Return(session, nil)
	fx.sessionRepo.EXPECT().DeleteSession(mock.Anything, session.ID).Return(nil)
	fx.sessionRepo.EXPECT().FindSessionByHash(mock.Anything, "hash:unknown").Return(nil, repository.ErrStaffSessionNotFound)

	require.NoError(t, fx.service.Logout(context.Background(), "known"))
	require.NoError(t, fx.service.Logout(context.Background(), "unknown"))
}

func TestStaffAuthService_CreateStaff(t *testing.T) {
	input := &usecase.CreateStaffInput{
		Username:    " Bruno ",
		DisplayName: "Bruno",
		Password:    "oven-master-9",
		Role:        entity.RoleStaff,
	}

	t.Run("success", func(t *testing.T) {
		fx := createTestStaffAuthService(t)
		fx.hasher.EXPECT().Hash("oven-master-9").Return("hashed", nil)
		fx.staffRepo.EXPECT().
			CreateStaff(mock.Anything, mock.MatchedBy(func(s *entity.StaffAccount) bool {
				return s.Username == "bruno" && s.PasswordHash == "hashed" && s.Role == entity.RoleStaff
			})).
			Return(nil)

		staff, err := fx.service.CreateStaff(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, "bruno", staff.Username)
	})

	t.Run("duplicate", func(t *testing.T) {
		fx := createTestStaffAuthService(t)
		fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
		fx.staffRepo.EXPECT().CreateStaff(mock.Anything, mock.Anything).Return(repository.ErrDuplicateStaff)

		_, err := fx.service.CreateStaff(context.Background(), input)
		assert.ErrorIs(t, err, domainerrors.ErrStaffAlreadyExists)
	})

	t.Run("unknown role", func(t *testing.T) {
		fx := createTestStaffAuthService(t)
		bad := *input
		bad.Role = "owner"

		_, err := fx.service.CreateStaff(context.Background(), &bad)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("hash failure", func(t *testing.T) {
		fx := createTestStaffAuthService(t)
		fx.hasher.EXPECT().Hash(mock.Anything).Return("", errors.New("password too long"))

		_, err := fx.service.CreateStaff(context.Background(), input)
		assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	})
}

func TestStaffAuthService_ValidateAccess(t *testing.T) {
	fx := createTestStaffAuthService(t)
	staffID := uuid.New()

	fx.tokens.EXPECT().ValidateToken("access").Return(&service.Claims{StaffID: staffID, Type: service.TokenTypeAccess}, nil)
	fx.tokens.EXPECT().ValidateToken("refresh").Return(&service.Claims{StaffID: staffID, Type: service.TokenTypeRefresh}, nil)
	fx.tokens.EXPECT().ValidateToken("garbage").Return(nil, errors.New("malformed"))

	claims, err := fx.service.ValidateAccess(context.Background(), "access")
	require.NoError(t, err)
	assert.Equal(t, staffID, claims.StaffID)

	_, err = fx.service.ValidateAccess(context.Background(), "refresh")
	assert.Error(t, err)

	_, err = fx.service.ValidateAccess(context.Background(), "garbage")
	assert.Error(t, err)
}
