package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/worklens/workforce-backend-go/internal/domain/auth"
	"github.com/worklens/workforce-backend-go/internal/domain/company"
	"github.com/worklens/workforce-backend-go/internal/domain/employee"
	"github.com/worklens/workforce-backend-go/internal/domain/user"
	"github.com/worklens/workforce-backend-go/internal/pkg/database"
	"github.com/worklens/workforce-backend-go/internal/pkg/jwt"
	"github.com/worklens/workforce-backend-go/internal/pkg/oauth"
	"github.com/worklens/workforce-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	companies company.CompanyRepository
	employees employee.EmployeeRepository
	jwt.Service
	google oauth.GoogleService
}

func NewAuthService(
	db *database.DB,
	userRepository user.UserRepository,
	companyRepository company.CompanyRepository,
	employeeRepository employee.EmployeeRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
) auth.AuthService {
	return &AuthServiceImpl{
		db:             db,
		UserRepository: userRepository,
		companies:      companyRepository,
		employees:      employeeRepository,
		Service:        jwtService,
		google:         googleService,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Register implements auth.AuthService. The company, its admin user and the
// admin's employee record are created in one transaction.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthSession, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthSession{}, err
	}

	if _, err := a.UserRepository.GetByEmail(ctx, req.Email); err == nil {
		return auth.AuthSession{}, user.ErrEmailAlreadyTaken
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return auth.AuthSession{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if _, err := a.companies.GetByUsername(ctx, req.CompanyUsername); err == nil {
		return auth.AuthSession{}, company.ErrUsernameAlreadyTaken
	} else if !errors.Is(err, company.ErrCompanyNotFound) {
		return auth.AuthSession{}, fmt.Errorf("failed to get company by username: %w", err)
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return auth.AuthSession{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var newUser user.User
	var newEmployee employee.Employee

	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		newCompany, err := a.companies.Create(txCtx, company.Company{
			Name:     req.CompanyName,
			Username: req.CompanyUsername,
			Timezone: req.Timezone,
		})
		if err != nil {
			return fmt.Errorf("failed to create company: %w", err)
		}

		newUser, err = a.UserRepository.Create(txCtx, user.User{
			CompanyID:    &newCompany.ID,
			Email:        req.Email,
			PasswordHash: &hashed,
			Role:         user.RoleAdmin,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		newEmployee, err = a.employees.Create(txCtx, employee.Employee{
			UserID:           newUser.ID,
			CompanyID:        newCompany.ID,
			Name:             req.Name,
			Email:            req.Email,
			Role:             string(user.RoleAdmin),
			EmploymentStatus: employee.StatusFullTime,
			IsActive:         true,
		})
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}

		return nil
	})
	if err != nil {
		return auth.AuthSession{}, err
	}

	newUser.EmployeeID = &newEmployee.ID
	return a.openSession(newUser)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthSession, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthSession{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AuthSession{}, user.ErrInvalidCredentials
		}
		return auth.AuthSession{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.PasswordHash == nil {
		return auth.AuthSession{}, user.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.AuthSession{}, user.ErrInvalidCredentials
	}

	return a.openSession(userData)
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	userID, err := a.Service.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidRefreshToken
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidRefreshToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	accessToken, expiresAt, err := a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.EmployeeID, userData.CompanyID, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	a.Service.RevokeToken(refreshToken)
	return nil
}

// GoogleAuthURL implements auth.AuthService.
func (a *AuthServiceImpl) GoogleAuthURL(userAgent string) (string, string) {
	state := a.google.GenerateState(userAgent)
	return a.google.RedirectURL(state), state
}

// GoogleCallback implements auth.AuthService. Google sign-in never creates
// accounts; employees are provisioned by their admin first.
func (a *AuthServiceImpl) GoogleCallback(ctx context.Context, state string, expectedState string, code string) (auth.AuthSession, error) {
	if expectedState == "" || state != expectedState {
		return auth.AuthSession{}, auth.ErrOAuthStateMismatch
	}

	token, err := a.google.VerifyToken(ctx, code)
	if err != nil {
		return auth.AuthSession{}, fmt.Errorf("failed to exchange oauth code: %w", err)
	}

	info, err := a.google.VerifyUser(ctx, token)
	if err != nil {
		return auth.AuthSession{}, fmt.Errorf("failed to fetch google user info: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.AuthSession{}, auth.ErrOAuthEmailNotFound
	}

	userData, err := a.UserRepository.GetByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AuthSession{}, auth.ErrOAuthEmailNotFound
		}
		return auth.AuthSession{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Link the google identity on first OAuth login
	if userData.OAuthProvider == nil {
		provider := "google"
		userData.OAuthProvider = &provider
		userData.OAuthProviderID = &info.GoogleID
		if err := a.UserRepository.Update(ctx, userData); err != nil {
			return auth.AuthSession{}, fmt.Errorf("failed to link google account: %w", err)
		}
	}

	return a.openSession(userData)
}

// openSession issues the access and refresh token pair for a user.
func (a *AuthServiceImpl) openSession(u user.User) (auth.AuthSession, error) {
	accessToken, accessExpiresAt, err := a.Service.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.CompanyID, u.Role)
	if err != nil {
		return auth.AuthSession{}, fmt.Errorf("failed to create access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := a.Service.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.AuthSession{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return auth.AuthSession{
		LoginResponse: auth.LoginResponse{
			TokenResponse: auth.TokenResponse{
				AccessToken: accessToken,
				TokenType:   "Bearer",
				ExpiresAt:   accessExpiresAt,
			},
			UserID:     u.ID,
			EmployeeID: u.EmployeeID,
			CompanyID:  u.CompanyID,
			Role:       string(u.Role),
		},
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExpiresAt,
	}, nil
}
