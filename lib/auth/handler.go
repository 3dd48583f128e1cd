package auth

import (
	"freelance-tracker-backend/db"
	usersstore "freelance-tracker-backend/lib/users/store"
	authutils "freelance-tracker-backend/lib/utils/auth-utils"
	authapimodels "freelance-tracker-backend/models/api/auth"
	userapimodels "freelance-tracker-backend/models/api/user"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type Provider interface {
	Login(email, password string) (authapimodels.JWTResponse, error)
	Refresh(refreshToken string) (authapimodels.JWTResponse, error)
	Me(ctx *fiber.Ctx) (userapimodels.ProfileView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		usersStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	usersStore usersstore.Provider
}

func (i impl) Login(email, password string) (authapimodels.JWTResponse, error) {
	user, err := i.usersStore.FindByEmail(email)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if user == nil || user.PasswordHash != authutils.GetMD5Hash(password) {
		return authapimodels.JWTResponse{}, errors.New("invalid credentials")
	}
	return i.issueTokens(user.ID, user.FullName(), user.Email)
}

func (i impl) Refresh(refreshToken string) (authapimodels.JWTResponse, error) {
	claims, err := authutils.ParseToken(refreshToken)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "invalid refresh token")
	}
	sub, _ := claims["sub"].(string)
	user, err := i.usersStore.GetByID(sub)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		return authapimodels.JWTResponse{}, errors.New("user not found")
	}
	return i.issueTokens(user.ID, user.FullName(), user.Email)
}

func (i impl) Me(ctx *fiber.Ctx) (userapimodels.ProfileView, error) {
	claims := authutils.GetClaims(ctx)
	sub, _ := claims["sub"].(string)
	user, err := i.usersStore.GetByID(sub)
	if err != nil {
		return userapimodels.ProfileView{}, err
	}
	if user == nil {
		return userapimodels.ProfileView{}, errors.New("user not found")
	}
	return userapimodels.ProfileConvert(*user), nil
}

func (i impl) issueTokens(userID, name, email string) (authapimodels.JWTResponse, error) {
	accessToken, err := authutils.GetToken(userID, name, email)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	refreshToken, err := authutils.GetRefreshToken(userID, name)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
