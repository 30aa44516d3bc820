package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"scent-store-api/internal/auth"
	"scent-store-api/internal/model"
	"scent-store-api/internal/repository"
)

var ErrBadCredentials = errors.New("invalid email or password")

type AccountService interface {
	Register(ctx context.Context, email, password, fullName string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type accountServiceImpl struct {
	customerRepo repository.CustomerRepository
	tokens       *auth.TokenIssuer
}

func NewAccountService(customerRepo repository.CustomerRepository, tokens *auth.TokenIssuer) AccountService {
	return &accountServiceImpl{
		customerRepo: customerRepo,
		tokens:       tokens,
	}
}

// Register creates the account and returns an access token for it.
func (s *accountServiceImpl) Register(ctx context.Context, email, password, fullName string) (string, error) {
	if email == "" || len(password) < 8 {
		return "", fmt.Errorf("email and a password of at least 8 characters are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	customer := &model.Customer{
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hash),
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return "", fmt.Errorf("create customer: %w", err)
	}

	return s.tokens.Issue(customer.ID, customer.Email)
}

func (s *accountServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	customer, err := s.customerRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrBadCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)) != nil {
		return "", ErrBadCredentials
	}

	return s.tokens.Issue(customer.ID, customer.Email)
}
