package auth

import (
	"errors"
	"strings"

	"github.com/DAQEM/fakestore/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const RoleCustomer = "customer"

// Session is what a successful login or signup hands back to the caller.
type Session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Provider implements local email/password identity over the user table.
// Error text returned here is shown verbatim to the visitor.
type Provider struct {
	db     *gorm.DB
	secret []byte
}

func NewProvider(db *gorm.DB, secret string) *Provider {
	return &Provider{db: db, secret: []byte(secret)}
}

// Signup registers a new account and logs it in.
func (p *Provider) Signup(email, name, password string) (Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return Session{}, errors.New("email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Session{}, errors.New("could not process password")
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         RoleCustomer,
	}
	// Carts are created lazily on the first cart-mutating action, not here.
	if err := p.db.Omit("Cart").Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return Session{}, errors.New("an account with this email already exists")
		}
		return Session{}, errors.New("could not create account")
	}

	return p.sessionFor(user)
}

// Login checks the password and issues a session token.
func (p *Provider) Login(email, password string) (Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	var user models.User
	if err := p.db.Where("email = ?", email).First(&user).Error; err != nil {
		return Session{}, errors.New("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Session{}, errors.New("invalid email or password")
	}

	return p.sessionFor(user)
}

// Logout invalidates nothing server-side: tokens are stateless and expire on
// their own. It still rejects garbage so the caller can log it.
func (p *Provider) Logout(token string) error {
	if _, err := p.Verify(token); err != nil {
		return err
	}
	return nil
}

func (p *Provider) sessionFor(user models.User) (Session, error) {
	token, err := p.Token(user)
	if err != nil {
		return Session{}, errors.New("could not issue session token")
	}
	return Session{Token: token, User: user}, nil
}
