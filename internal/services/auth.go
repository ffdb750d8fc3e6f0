package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Hitsaa/socail-blogging-backend/internal/auth"
	"github.com/Hitsaa/socail-blogging-backend/internal/mail"
	"github.com/Hitsaa/socail-blogging-backend/internal/models"
)

// AuthService handles signup, account verification, login, token refresh and
// logout. All dependencies are passed in at construction.
type AuthService struct {
	db         *gorm.DB
	jwt        *auth.JWTProvider
	dispatcher *mail.Dispatcher
	content    *mail.ContentBuilder
	appURL     string
}

func NewAuthService(db *gorm.DB, jwt *auth.JWTProvider, dispatcher *mail.Dispatcher, content *mail.ContentBuilder, appURL string) *AuthService {
	return &AuthService{
		db:         db,
		jwt:        jwt,
		dispatcher: dispatcher,
		content:    content,
		appURL:     appURL,
	}
}

// Signup stores a new disabled user and mails a verification link. Duplicate
// username or email is detected by the store's unique constraints.
func (s *AuthService) Signup(req models.RegisterRequest) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	token := uuid.NewString()

	err = s.db.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Username: req.Username,
			Email:    req.Email,
			Password: string(hash),
			Enabled:  false,
		}
		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateUser
			}
			return fmt.Errorf("creating user: %w", err)
		}

		verification := models.VerificationToken{
			Token:  token,
			UserID: user.ID,
		}
		if err := tx.Create(&verification).Error; err != nil {
			return fmt.Errorf("creating verification token: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.sendVerificationMail(req.Email, token)
	return nil
}

func (s *AuthService) sendVerificationMail(recipient, token string) {
	message := "Thank you for signing up to the Blogging Site, " +
		"please click on the below url to activate your account : " +
		s.appURL + "/api/auth/accountVerification/" + token
	body, err := s.content.Build(message)
	if err != nil {
		log.Printf("auth: building verification mail: %v", err)
		return
	}
	s.dispatcher.Dispatch(mail.Notification{
		Subject:   "Please Activate your Account",
		Recipient: recipient,
		Body:      body,
	})
}

// VerifyAccount enables the user linked to the given verification token.
// Repeating the call with the same token is a no-op.
func (s *AuthService) VerifyAccount(token string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var verification models.VerificationToken
		if err := tx.Where("token = ?", token).First(&verification).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidToken
			}
			return fmt.Errorf("looking up verification token: %w", err)
		}

		var user models.User
		if err := tx.First(&user, verification.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("looking up user: %w", err)
		}
		if user.Enabled {
			return nil
		}

		if err := tx.Model(&user).Update("enabled", true).Error; err != nil {
			return fmt.Errorf("enabling user: %w", err)
		}
		return nil
	})
}

// Login verifies the credentials and issues an access token plus a fresh
// opaque refresh token. A user whose email is not verified yet cannot log in.
func (s *AuthService) Login(req models.LoginRequest) (*models.AuthenticationResponse, error) {
	var response *models.AuthenticationResponse

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("username = ?", req.Username).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidCredentials
			}
			return fmt.Errorf("looking up user: %w", err)
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			return ErrInvalidCredentials
		}
		if !user.Enabled {
			return ErrInvalidCredentials
		}

		accessToken, expiresAt, err := s.jwt.GenerateToken(user.Username)
		if err != nil {
			return err
		}

		refresh := models.RefreshToken{Token: uuid.NewString()}
		if err := tx.Create(&refresh).Error; err != nil {
			return fmt.Errorf("creating refresh token: %w", err)
		}

		response = &models.AuthenticationResponse{
			AuthenticationToken: accessToken,
			RefreshToken:        refresh.Token,
			ExpiresAt:           expiresAt,
			Username:            user.Username,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// RefreshToken exchanges a valid refresh token for a new access token. The
// refresh token value itself is not rotated.
func (s *AuthService) RefreshToken(req models.RefreshTokenRequest) (*models.AuthenticationResponse, error) {
	var refresh models.RefreshToken
	err := s.db.Where("token = ? AND revoked = ?", req.RefreshToken, false).First(&refresh).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("looking up refresh token: %w", err)
	}

	accessToken, expiresAt, err := s.jwt.GenerateToken(req.Username)
	if err != nil {
		return nil, err
	}

	return &models.AuthenticationResponse{
		AuthenticationToken: accessToken,
		RefreshToken:        req.RefreshToken,
		ExpiresAt:           expiresAt,
		Username:            req.Username,
	}, nil
}

// Logout destroys the refresh token so it can no longer be exchanged.
func (s *AuthService) Logout(refreshToken string) error {
	result := s.db.Where("token = ?", refreshToken).Delete(&models.RefreshToken{})
	if result.Error != nil {
		return fmt.Errorf("deleting refresh token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrInvalidRefreshToken
	}
	return nil
}

// CurrentUser resolves the caller's user row from the authenticated
// username established by the middleware.
func (s *AuthService) CurrentUser(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	return &user, nil
}
