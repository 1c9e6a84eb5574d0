package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	cognito "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"authforms/internal/constants"
	"authforms/internal/forms"
)

// Error indicators reported in forms.SignInResult.
const (
	ErrorCredentialsSignin = "CredentialsSignin"
	ErrorUserNotConfirmed  = "UserNotConfirmed"
)

// InitiateAuthAPI is the part of the Cognito client used for sign-in.
type InitiateAuthAPI interface {
	InitiateAuth(ctx context.Context, params *cognito.InitiateAuthInput, optFns ...func(*cognito.Options)) (*cognito.InitiateAuthOutput, error)
}

// CognitoSessions establishes sessions against a Cognito user pool app client
// using the USER_PASSWORD_AUTH flow.
type CognitoSessions struct {
	client   InitiateAuthAPI
	clientId string
}

func NewCognitoSessions(client InitiateAuthAPI, clientId string) *CognitoSessions {
	return &CognitoSessions{client: client, clientId: clientId}
}

// SignIn never redirects, so opts.Redirect has no effect.
func (s *CognitoSessions) SignIn(ctx context.Context, provider string, creds forms.Credentials, _ forms.SignInOptions) (forms.SignInResult, error) {
	if provider != constants.CredentialsProvider {
		return forms.SignInResult{}, fmt.Errorf("auth: unsupported provider %q", provider)
	}

	out, err := s.client.InitiateAuth(ctx, &cognito.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(s.clientId),
		AuthParameters: map[string]string{
			"USERNAME": creds.Email,
			"PASSWORD": creds.Password,
		},
	})
	if err != nil {
		var notAuthorized *types.NotAuthorizedException
		var userNotFound *types.UserNotFoundException
		var notConfirmed *types.UserNotConfirmedException

		switch {
		case errors.As(err, &notAuthorized), errors.As(err, &userNotFound):
			return forms.SignInResult{Error: ErrorCredentialsSignin}, nil
		case errors.As(err, &notConfirmed):
			return forms.SignInResult{Error: ErrorUserNotConfirmed}, nil
		}

		return forms.SignInResult{}, fmt.Errorf("auth: initiate auth: %w", err)
	}

	if out.AuthenticationResult == nil {
		// a challenge such as NEW_PASSWORD_REQUIRED has to be answered first
		fiberlog.Warn("cognito returned challenge: ", out.ChallengeName)
		return forms.SignInResult{Error: string(out.ChallengeName)}, nil
	}

	return forms.SignInResult{}, nil
}
