package service

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"

	"github.com/nilotpaul/fanlift-auth/setting"
	"github.com/nilotpaul/fanlift-auth/types"
	"github.com/nilotpaul/fanlift-auth/util"
)

// Outcome is the result of one callback: either a minted session token or
// the error that stopped the flow.
type Outcome struct {
	SessionToken string
	Err          *util.AppError
}

func (o Outcome) Failed() bool {
	return o.Err != nil
}

func failure(err error) Outcome {
	var appErr *util.AppError
	if errors.As(err, &appErr) {
		return Outcome{Err: appErr}
	}

	msg := util.DefaultErrMessage
	if err != nil && len(err.Error()) != 0 {
		msg = err.Error()
	}

	return Outcome{Err: util.NewAppError(util.ErrUnexpected, msg, err)}
}

type AuthConfig struct {
	GoogleClientSecret string
	DefaultStateURL    string
}

type AuthService struct {
	cfg       AuthConfig
	google    *GoogleClient
	directory types.UserDirectory
}

func NewAuthService(cfg AuthConfig, google *GoogleClient, directory types.UserDirectory) *AuthService {
	if len(cfg.DefaultStateURL) == 0 {
		cfg.DefaultStateURL = setting.DefaultStateURL
	}

	return &AuthService{
		cfg:       cfg,
		google:    google,
		directory: directory,
	}
}

// HandleCallback runs the sign-in flow for one authorization code. Each step
// depends on the one before it, and the first failure ends the flow.
func (s *AuthService) HandleCallback(ctx context.Context, authCode string) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = Outcome{Err: util.NewAppError(
				util.ErrUnexpected,
				util.PanicMessage(r),
				"AuthService, HandleCallback() panic: ",
				r,
			)}
		}
	}()

	if len(authCode) == 0 {
		return failure(util.NewAppError(
			util.ErrMissingInput,
			"Authorization code missing from Google redirect.",
		))
	}
	if len(s.cfg.GoogleClientSecret) == 0 {
		return failure(util.NewAppError(
			util.ErrConfig,
			"Server configuration error: Google Client Secret is missing.",
		))
	}

	token, err := s.google.Exchange(ctx, authCode)
	if err != nil {
		return failure(err)
	}

	profile, err := s.google.GetGoogleUserInfo(ctx, token)
	if err != nil {
		return failure(err)
	}

	user, err := s.findOrCreateUser(ctx, profile)
	if err != nil {
		return failure(err)
	}

	sessionToken, err := s.directory.GenerateSessionToken(ctx, user.ID)
	if err != nil {
		return failure(err)
	}
	if len(sessionToken) == 0 {
		return failure(util.NewAppError(
			util.ErrSession,
			"Failed to create a user session token.",
		))
	}

	return Outcome{SessionToken: sessionToken}
}

// findOrCreateUser reuses the first user the backend returns for the email,
// untouched, and only creates one when there is no match.
func (s *AuthService) findOrCreateUser(ctx context.Context, profile *types.GoogleUserResponse) (*types.User, error) {
	existing, err := s.directory.FindUsersByEmail(ctx, profile.Email)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return &existing[0], nil
	}

	fullName := profile.Name
	if len(fullName) == 0 {
		fullName, _, _ = strings.Cut(profile.Email, "@")
	}

	user, err := s.directory.CreateUser(ctx, types.CreateUserParams{
		Email:                  profile.Email,
		FullName:               fullName,
		SubscriptionStatus:     setting.DefaultSubscriptionStatus,
		QuestionnaireCompleted: false,
		OnboardingCompleted:    false,
		PlatformConnected:      false,
	})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user backend returned no user")
	}

	return user, nil
}

// CallbackRedirect runs the flow and returns where the browser goes next:
// state with fanlift_session on success, state with auth_error otherwise.
func (s *AuthService) CallbackRedirect(ctx context.Context, authCode string, state string) string {
	if len(state) == 0 {
		state = s.cfg.DefaultStateURL
	}
	if _, err := util.ParseStateURL(state); err != nil {
		return s.errorRedirect(s.cfg.DefaultStateURL, Outcome{Err: util.NewAppError(
			util.ErrMissingInput,
			"Invalid state URL.",
			"state: ",
			state,
		)})
	}

	out := s.HandleCallback(ctx, authCode)
	if out.Failed() {
		return s.errorRedirect(state, out)
	}

	location, err := util.SetQueryParam(state, setting.SessionParam, out.SessionToken)
	if err != nil {
		return s.errorRedirect(s.cfg.DefaultStateURL, failure(err))
	}

	slog.Info("[FanliftAuth] sign-in succeeded", "state", state)

	return location
}

func (s *AuthService) errorRedirect(state string, out Outcome) string {
	location, err := util.SetQueryParam(state, setting.ErrorParam, out.Err.Msg)
	if err != nil {
		// Only reachable with a broken default state URL.
		location = setting.DefaultStateURL + "?" + setting.ErrorParam + "=" + url.QueryEscape(out.Err.Msg)
	}

	slog.Error("[FanliftAuth] sign-in failed",
		"kind", out.Err.Kind,
		"errMsg", out.Err.Msg,
		"err", out.Err.Err,
		"redirect", location,
	)

	return location
}
