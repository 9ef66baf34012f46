package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// parseFlags parses the configuration flags from args.
//
// Flags:
//
//	--env                 deployment target (development, production)
//	-c/--config           json file path with configs
//	--api-server-url      backend API base URL
//	--auth0-url           Auth0 domain prefix
//	--auth0-audience      Auth0 API audience
//	--auth0-client-id     Auth0 application client id
//	--auth0-callback-url  URL Auth0 redirects back to
func parseFlags(args []string) (*source, error) {
	src := &source{}

	fs := pflag.NewFlagSet("coffee-env", pflag.ContinueOnError)
	fs.StringVar(&src.Target, "env", "", "Deployment target (development, production)")
	fs.StringVarP(&src.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&src.Environment.APIServerURL, "api-server-url", "", "Backend API base URL")
	fs.StringVar(&src.Environment.Auth0.URL, "auth0-url", "", "Auth0 domain prefix")
	fs.StringVar(&src.Environment.Auth0.Audience, "auth0-audience", "", "Auth0 API audience")
	fs.StringVar(&src.Environment.Auth0.ClientID, "auth0-client-id", "", "Auth0 application client id")
	fs.StringVar(&src.Environment.Auth0.CallbackURL, "auth0-callback-url", "", "URL Auth0 redirects back to")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return src, nil
}
